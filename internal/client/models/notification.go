package models

import "time"

type NotificationType string

const NotificationCardExchange NotificationType = "CARD_EXCHANGE"

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Data      *string          `json:"data"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// CardExchangeData is the payload carried by CARD_EXCHANGE notifications.
type CardExchangeData struct {
	SenderLoginID string `json:"senderLoginId"`
}
