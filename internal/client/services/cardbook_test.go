package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardBookListPath(t *testing.T) {
	tests := []struct {
		q    models.CardBookQuery
		want string
	}{
		{models.CardBookQuery{}, "/api/cardbooks/v1"},
		{models.CardBookQuery{PageSet: true}, "/api/cardbooks/v1?page=0"},
		{models.CardBookQuery{GroupID: "g-1", Page: 2, Size: 20}, "/api/cardbooks/v1?groupId=g-1&page=2&size=20"},
		{models.CardBookQuery{Size: 5}, "/api/cardbooks/v1?size=5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CardBookListPath(tt.q))
	}
}

func TestCardBookService_List(t *testing.T) {
	api := newFakeAPI().on(http.MethodGet, "/api/cardbooks/v1?groupId=g-1", models.CardBookPage{
		Content:       []models.CardBook{{ID: "cb-1", CardID: "c-1", IsFavorite: true}},
		TotalElements: 1,
		First:         true,
		Last:          true,
	})

	page, err := NewCardBookService(api).List(context.Background(), models.CardBookQuery{GroupID: "g-1"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.True(t, page.Content[0].IsFavorite)
}

func TestCardBookService_Mutations(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI().
		on(http.MethodPost, "/api/cardbooks/v1", models.CardBook{ID: "cb-1"}).
		on(http.MethodPost, "/api/cardbooks/v1/exchange", models.CardExchange{ID: "ex-1"}).
		on(http.MethodGet, "/api/cardbooks/v1/cb-1", models.CardBook{ID: "cb-1"})
	svc := NewCardBookService(api)

	cb, err := svc.Save(ctx, "c-1", "")
	require.NoError(t, err)
	assert.Equal(t, "cb-1", cb.ID)
	assert.Equal(t, models.SaveCardBookRequest{CardID: "c-1"}, api.last().Body)

	ex, err := svc.Exchange(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "ex-1", ex.ID)

	_, err = svc.Get(ctx, "cb-1")
	require.NoError(t, err)

	_, err = svc.UpdateGroup(ctx, "cb-1", "g-2")
	require.NoError(t, err)
	assert.Equal(t, recordedCall{http.MethodPost, "/api/cardbooks/v1/cb-1/group", models.UpdateCardBookGroupRequest{GroupID: "g-2"}}, api.last())

	_, err = svc.UpdateMemo(ctx, "cb-1", "met at conf")
	require.NoError(t, err)
	assert.Equal(t, recordedCall{http.MethodPost, "/api/cardbooks/v1/cb-1/memo", models.UpdateCardBookMemoRequest{Memo: "met at conf"}}, api.last())

	_, err = svc.UpdateFavorite(ctx, "cb-1", true)
	require.NoError(t, err)
	assert.Equal(t, recordedCall{http.MethodPost, "/api/cardbooks/v1/cb-1/favorite", models.UpdateCardBookFavoriteRequest{Favorite: true}}, api.last())

	require.NoError(t, svc.Delete(ctx, "cb/1"))
	assert.Equal(t, "/api/cardbooks/v1/cb%2F1/delete", api.last().Endpoint)
}
