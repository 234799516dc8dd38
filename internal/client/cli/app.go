package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/config"
	"github.com/dmitrijs2005/scanly/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/scanly/internal/client/services"
	"github.com/dmitrijs2005/scanly/internal/filex"
	"github.com/dmitrijs2005/scanly/internal/logging"
)

// DatabaseFile is the name of the local database inside the data directory.
const DatabaseFile = "scanly.db"

const pollTimeout = 5 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	tokens client.TokenStore

	authService         services.AuthService
	memberService       services.MemberService
	cardService         services.CardService
	cardBookService     services.CardBookService
	groupService        services.GroupService
	notificationService services.NotificationService
	pushService         services.PushService

	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	loginID string
	unread  int
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDataDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, DatabaseFile))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{config: c, log: log, db: db, reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	store, err := openTokenStore(ctx, db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	api := client.New(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithRefreshTimeout(c.RefreshTimeout),
		client.WithLogger(log),
		client.WithOnAuthFailure(a.onAuthFailure),
	)
	a.wire(api, store, metadata.NewSQLiteRepository(db))

	if a.isLoggedIn() {
		if id, err := a.authService.CurrentLoginID(ctx); err == nil {
			a.setSession(id, 0)
		}
	}

	return a, nil
}

func (a *App) wire(api client.Requester, store client.TokenStore, repo metadata.Repository) {
	a.tokens = store
	a.authService = services.NewAuthService(api, store, repo)
	a.memberService = services.NewMemberService(api)
	a.cardService = services.NewCardService(api)
	a.cardBookService = services.NewCardBookService(api)
	a.groupService = services.NewGroupService(api)
	a.notificationService = services.NewNotificationService(api)
	a.pushService = services.NewPushService(api, store)
}

// Run starts the notification watcher and the REPL, and releases local
// resources when the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to Scanly CLI (type 'help' for commands)")

	go a.StartNotificationWatcher(ctx, a.config.NotificationPollInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if c, ok := a.tokens.(interface{ Close() }); ok {
		c.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	access, err := a.tokens.AccessToken(context.Background())
	return err == nil && access != ""
}

func (a *App) setSession(loginID string, unread int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loginID = loginID
	a.unread = unread
}

func (a *App) setUnread(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unread = n
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.loginID
	if a.unread > 0 {
		s = strings.TrimSpace(fmt.Sprintf("%s %d unread", s, a.unread))
	}
	if s != "" {
		s = fmt.Sprintf(" (%s)", s)
	}
	return s
}

// onAuthFailure runs when the API client gives up on the session. The tokens
// are already cleared at this point.
func (a *App) onAuthFailure(ctx context.Context) {
	a.pushService.Reset()
	a.setSession("", 0)
	a.log.Warn(ctx, "session ended, login required")
	fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
}

// StartNotificationWatcher polls the unread notification count every
// interval while a session exists. It returns when ctx is done.
func (a *App) StartNotificationWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.pollUnread(ctx)

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) pollUnread(ctx context.Context) {
	if !a.isLoggedIn() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, pollTimeout)
	defer cancel()

	n, err := a.notificationService.UnreadCount(ctx)
	if err != nil {
		a.log.Debug(ctx, "unread count poll failed", "error", err)
		return
	}
	a.setUnread(n)
}
