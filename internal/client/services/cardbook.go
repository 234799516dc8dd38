package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
)

const cardBooksPath = "/api/cardbooks/v1"

type CardBookService interface {
	List(ctx context.Context, q models.CardBookQuery) (models.CardBookPage, error)
	Get(ctx context.Context, id string) (models.CardBook, error)
	Save(ctx context.Context, cardID, groupID string) (models.CardBook, error)
	Exchange(ctx context.Context, cardID string) (models.CardExchange, error)
	UpdateGroup(ctx context.Context, id, groupID string) (models.CardBook, error)
	UpdateMemo(ctx context.Context, id, memo string) (models.CardBook, error)
	UpdateFavorite(ctx context.Context, id string, favorite bool) (models.CardBook, error)
	Delete(ctx context.Context, id string) error
}

type cardBookService struct {
	api client.Requester
}

func NewCardBookService(api client.Requester) CardBookService {
	return &cardBookService{api: api}
}

// CardBookListPath builds the listing endpoint with only the filters that are set.
func CardBookListPath(q models.CardBookQuery) string {
	v := url.Values{}
	if q.GroupID != "" {
		v.Set("groupId", q.GroupID)
	}
	if q.PageSet || q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}

	if len(v) == 0 {
		return cardBooksPath
	}
	return cardBooksPath + "?" + v.Encode()
}

func (s *cardBookService) List(ctx context.Context, q models.CardBookQuery) (models.CardBookPage, error) {
	page, err := client.Get[models.CardBookPage](ctx, s.api, CardBookListPath(q), nil)
	if err != nil {
		return models.CardBookPage{}, fmt.Errorf("list card book error: %w", err)
	}
	return page, nil
}

func (s *cardBookService) Get(ctx context.Context, id string) (models.CardBook, error) {
	cb, err := client.Get[models.CardBook](ctx, s.api, entryPath(id, ""), nil)
	if err != nil {
		return models.CardBook{}, fmt.Errorf("get card book entry error: %w", err)
	}
	return cb, nil
}

func (s *cardBookService) Save(ctx context.Context, cardID, groupID string) (models.CardBook, error) {
	req := models.SaveCardBookRequest{CardID: cardID, GroupID: groupID}
	cb, err := client.Post[models.CardBook](ctx, s.api, cardBooksPath, req, nil)
	if err != nil {
		return models.CardBook{}, fmt.Errorf("save card error: %w", err)
	}
	return cb, nil
}

func (s *cardBookService) Exchange(ctx context.Context, cardID string) (models.CardExchange, error) {
	req := models.CardExchangeRequest{CardID: cardID}
	ex, err := client.Post[models.CardExchange](ctx, s.api, cardBooksPath+"/exchange", req, nil)
	if err != nil {
		return models.CardExchange{}, fmt.Errorf("exchange card error: %w", err)
	}
	return ex, nil
}

func (s *cardBookService) UpdateGroup(ctx context.Context, id, groupID string) (models.CardBook, error) {
	return s.update(ctx, id, "group", models.UpdateCardBookGroupRequest{GroupID: groupID})
}

func (s *cardBookService) UpdateMemo(ctx context.Context, id, memo string) (models.CardBook, error) {
	return s.update(ctx, id, "memo", models.UpdateCardBookMemoRequest{Memo: memo})
}

func (s *cardBookService) UpdateFavorite(ctx context.Context, id string, favorite bool) (models.CardBook, error) {
	return s.update(ctx, id, "favorite", models.UpdateCardBookFavoriteRequest{Favorite: favorite})
}

func (s *cardBookService) update(ctx context.Context, id, what string, body any) (models.CardBook, error) {
	cb, err := client.Post[models.CardBook](ctx, s.api, entryPath(id, what), body, nil)
	if err != nil {
		return models.CardBook{}, fmt.Errorf("update card book %s error: %w", what, err)
	}
	return cb, nil
}

func (s *cardBookService) Delete(ctx context.Context, id string) error {
	if err := s.api.Do(ctx, http.MethodPost, entryPath(id, "delete"), nil, nil, nil); err != nil {
		return fmt.Errorf("delete card book entry error: %w", err)
	}
	return nil
}

func entryPath(id, action string) string {
	p := cardBooksPath + "/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}
