package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/services"
)

func (a *App) Notifications(ctx context.Context) error {
	list, err := a.notificationService.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return nil
	}

	unread := 0
	for _, n := range list {
		mark := " "
		if !n.IsRead {
			mark = "*"
			unread++
		}
		fmt.Fprintf(a.out, "%s %s  %s  %s: %s\n", mark, n.ID, n.CreatedAt.Local().Format(time.DateTime), n.Title, n.Body)

		if d := services.ParseNotificationData(n.Type, n.Data); d != nil {
			fmt.Fprintf(a.out, "    open with: card %s\n", d.SenderLoginID)
		}
	}
	a.setUnread(unread)
	return nil
}

func (a *App) Read(ctx context.Context, id string) error {
	left, err := a.notificationService.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	a.setUnread(left)
	return nil
}

// Push registers a device push token for this session.
func (a *App) Push(ctx context.Context, token string) error {
	ok, err := a.pushService.Register(ctx, token, a.config.Platform)
	if err != nil {
		return err
	}
	if !ok {
		return services.ErrNotLoggedIn
	}
	fmt.Fprintln(a.out, "Push token registered")
	return nil
}
