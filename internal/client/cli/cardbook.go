package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scanly/internal/client/models"
)

const cardBookPageSize = 20

func (a *App) Cards(ctx context.Context, groupID string) error {
	page, err := a.cardBookService.List(ctx, models.CardBookQuery{
		GroupID: groupID,
		PageSet: true,
		Size:    cardBookPageSize,
	})
	if err != nil {
		return err
	}

	if page.Empty || len(page.Content) == 0 {
		fmt.Fprintln(a.out, "Your card book is empty")
		return nil
	}
	for _, cb := range page.Content {
		printCardBook(a.out, cb)
	}
	fmt.Fprintf(a.out, "%d of %d cards\n", len(page.Content), page.TotalElements)
	return nil
}

func (a *App) Save(ctx context.Context, cardID, groupID string) error {
	cb, err := a.cardBookService.Save(ctx, cardID, groupID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved as %s\n", cb.ID)
	return nil
}

func (a *App) Exchange(ctx context.Context, cardID string) error {
	ex, err := a.cardBookService.Exchange(ctx, cardID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cards exchanged (%s)\n", ex.ID)
	return nil
}

func (a *App) Memo(ctx context.Context, id, text string) error {
	if _, err := a.cardBookService.UpdateMemo(ctx, id, text); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Memo updated")
	return nil
}

func (a *App) Favorite(ctx context.Context, id string, on bool) error {
	cb, err := a.cardBookService.UpdateFavorite(ctx, id, on)
	if err != nil {
		return err
	}
	printCardBook(a.out, cb)
	return nil
}
