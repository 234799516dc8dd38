package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/scanly/internal/client/config"
	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/client/tokens"
	"github.com/dmitrijs2005/scanly/internal/logging"
)

// ------------ input stubs ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func stubInputs(t *testing.T, loginID string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return loginID, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubSecret(t *testing.T, secret []byte) {
	t.Helper()
	orig := getSecret
	getSecret = func(io.Writer, string) ([]byte, error) { return append([]byte(nil), secret...), nil }
	t.Cleanup(func() { getSecret = orig })
}

// ------------ app builder ------------

type testApp struct {
	*App
	out    *bytes.Buffer
	store  *tokens.MemoryStore
	auth   *fakeAuth
	member *fakeMember
	cards  *fakeCards
	books  *fakeBooks
	groups *fakeGroups
	notes  *fakeNotifications
	push   *fakePush
}

func newTestApp(t *testing.T, reader *bufio.Reader) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.S3BaseURL = "https://s3.example"

	ta := &testApp{
		out:    &bytes.Buffer{},
		store:  tokens.NewMemoryStore(),
		auth:   &fakeAuth{},
		member: &fakeMember{available: true},
		cards:  &fakeCards{},
		books:  &fakeBooks{},
		groups: &fakeGroups{},
		notes:  &fakeNotifications{},
		push:   &fakePush{},
	}
	if reader == nil {
		reader = readerFromLines()
	}
	ta.App = &App{
		config:              cfg,
		log:                 logging.Nop(),
		tokens:              ta.store,
		authService:         ta.auth,
		memberService:       ta.member,
		cardService:         ta.cards,
		cardBookService:     ta.books,
		groupService:        ta.groups,
		notificationService: ta.notes,
		pushService:         ta.push,
		reader:              reader,
		out:                 ta.out,
	}
	return ta
}

func (ta *testApp) login(t *testing.T, loginID string) {
	t.Helper()
	_ = ta.store.SetTokens(context.Background(), "A1", "R1")
	ta.setSession(loginID, 0)
}

// ------------ service fakes ------------

type fakeAuth struct {
	loginID   string
	loginPass []byte
	loginErr  error

	logoutCalled bool
	logoutErr    error

	claims     tokens.Claims
	sessionErr error
	current    string
}

func (f *fakeAuth) Login(_ context.Context, loginID string, password []byte) error {
	f.loginID, f.loginPass = loginID, append([]byte(nil), password...)
	return f.loginErr
}
func (f *fakeAuth) Logout(context.Context) error { f.logoutCalled = true; return f.logoutErr }
func (f *fakeAuth) CurrentLoginID(context.Context) (string, error) {
	return f.current, nil
}
func (f *fakeAuth) Session(context.Context) (tokens.Claims, error) { return f.claims, f.sessionErr }

type fakeMember struct {
	available bool
	checked   string

	signUpID    string
	signUpPass  []byte
	signUpEmail string
	signUpErr   error
}

func (f *fakeMember) SignUp(_ context.Context, loginID string, password []byte, email string) (models.SignUpResponse, error) {
	f.signUpID, f.signUpPass, f.signUpEmail = loginID, append([]byte(nil), password...), email
	if f.signUpErr != nil {
		return models.SignUpResponse{}, f.signUpErr
	}
	return models.SignUpResponse{ID: "m-1", LoginID: loginID}, nil
}
func (f *fakeMember) CheckLoginID(_ context.Context, loginID string) (bool, error) {
	f.checked = loginID
	return f.available, nil
}

type fakeCards struct {
	me       models.Card
	byLogin  map[string]models.Card
	err      error
	lastReq  models.CardRequest
	deleted  bool
	lookedUp string
}

func (f *fakeCards) Register(_ context.Context, req models.CardRequest) (models.RegisterCardResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return models.RegisterCardResponse{}, f.err
	}
	return models.RegisterCardResponse{ID: "c-new"}, nil
}
func (f *fakeCards) Me(context.Context) (models.Card, error) { return f.me, f.err }
func (f *fakeCards) ByLoginID(_ context.Context, loginID string) (models.Card, error) {
	f.lookedUp = loginID
	return f.byLogin[loginID], f.err
}
func (f *fakeCards) Update(_ context.Context, req models.CardRequest) (models.Card, error) {
	f.lastReq = req
	return f.me, f.err
}
func (f *fakeCards) DeleteMe(context.Context) error { f.deleted = true; return f.err }

type fakeBooks struct {
	page  models.CardBookPage
	query models.CardBookQuery
	calls []string
}

func (f *fakeBooks) List(_ context.Context, q models.CardBookQuery) (models.CardBookPage, error) {
	f.query = q
	return f.page, nil
}
func (f *fakeBooks) Get(_ context.Context, id string) (models.CardBook, error) {
	return models.CardBook{ID: id}, nil
}
func (f *fakeBooks) Save(_ context.Context, cardID, groupID string) (models.CardBook, error) {
	f.calls = append(f.calls, "save "+cardID+" "+groupID)
	return models.CardBook{ID: "cb-1", CardID: cardID}, nil
}
func (f *fakeBooks) Exchange(_ context.Context, cardID string) (models.CardExchange, error) {
	f.calls = append(f.calls, "exchange "+cardID)
	return models.CardExchange{ID: "ex-1"}, nil
}
func (f *fakeBooks) UpdateGroup(_ context.Context, id, groupID string) (models.CardBook, error) {
	f.calls = append(f.calls, "group "+id+" "+groupID)
	return models.CardBook{ID: id}, nil
}
func (f *fakeBooks) UpdateMemo(_ context.Context, id, memo string) (models.CardBook, error) {
	f.calls = append(f.calls, "memo "+id+" "+memo)
	return models.CardBook{ID: id, Memo: &memo}, nil
}
func (f *fakeBooks) UpdateFavorite(_ context.Context, id string, favorite bool) (models.CardBook, error) {
	if favorite {
		f.calls = append(f.calls, "fav "+id+" on")
	} else {
		f.calls = append(f.calls, "fav "+id+" off")
	}
	return models.CardBook{ID: id, IsFavorite: favorite}, nil
}
func (f *fakeBooks) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return nil
}

type fakeGroups struct {
	list  models.GroupList
	calls []string
}

func (f *fakeGroups) List(context.Context) (models.GroupList, error) { return f.list, nil }
func (f *fakeGroups) Create(_ context.Context, name string) (models.Group, error) {
	f.calls = append(f.calls, "create "+name)
	return models.Group{ID: "g-new", Name: name}, nil
}
func (f *fakeGroups) Rename(_ context.Context, id, name string) (models.Group, error) {
	f.calls = append(f.calls, "rename "+id+" "+name)
	return models.Group{ID: id, Name: name}, nil
}
func (f *fakeGroups) Reorder(_ context.Context, order []models.GroupOrder) ([]models.Group, error) {
	return nil, nil
}
func (f *fakeGroups) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return nil
}

type fakeNotifications struct {
	list   []models.Notification
	unread int
	err    error
	read   string
}

func (f *fakeNotifications) List(context.Context) ([]models.Notification, error) {
	return f.list, f.err
}
func (f *fakeNotifications) UnreadCount(context.Context) (int, error) { return f.unread, f.err }
func (f *fakeNotifications) MarkRead(_ context.Context, id string) (int, error) {
	f.read = id
	f.unread--
	return f.unread, f.err
}

type fakePush struct {
	token    string
	platform models.Platform
	ok       bool
	err      error
	resets   int
}

func (f *fakePush) Register(_ context.Context, token string, platform models.Platform) (bool, error) {
	f.token, f.platform = token, platform
	return f.ok, f.err
}
func (f *fakePush) Reset() { f.resets++ }
