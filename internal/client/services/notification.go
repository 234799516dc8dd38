package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/tidwall/gjson"
)

const notificationsPath = "/api/notifications/v1"

type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	// MarkRead returns the unread count left after the update.
	MarkRead(ctx context.Context, id string) (int, error)
}

type notificationService struct {
	api client.Requester
}

func NewNotificationService(api client.Requester) NotificationService {
	return &notificationService{api: api}
}

func (n *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	list, err := client.Get[[]models.Notification](ctx, n.api, notificationsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list notifications error: %w", err)
	}
	return list, nil
}

func (n *notificationService) UnreadCount(ctx context.Context) (int, error) {
	count, err := client.Get[int](ctx, n.api, notificationsPath+"/unread-count", nil)
	if err != nil {
		return 0, fmt.Errorf("unread count error: %w", err)
	}
	return count, nil
}

func (n *notificationService) MarkRead(ctx context.Context, id string) (int, error) {
	count, err := client.Post[int](ctx, n.api, notificationsPath+"/"+url.PathEscape(id)+"/read", nil, nil)
	if err != nil {
		return 0, fmt.Errorf("mark notification read error: %w", err)
	}
	return count, nil
}

// ParseNotificationData decodes the JSON string carried in a notification's
// data field. It returns nil for unknown types, missing or malformed data,
// and payloads without a sender.
func ParseNotificationData(typ models.NotificationType, data *string) *models.CardExchangeData {
	if data == nil || *data == "" || !gjson.Valid(*data) {
		return nil
	}

	switch typ {
	case models.NotificationCardExchange:
		root := gjson.Parse(*data)
		if !root.IsObject() {
			return nil
		}
		sender := root.Get("senderLoginId")
		if sender.Type != gjson.String || sender.Str == "" {
			return nil
		}
		return &models.CardExchangeData{SenderLoginID: sender.Str}
	default:
		return nil
	}
}
