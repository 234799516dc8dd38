package models

import "time"

// CardBook is a card saved into the member's card book.
type CardBook struct {
	ID              string    `json:"id"`
	CardID          string    `json:"cardId"`
	ProfileSnapshot *string   `json:"profileSnapshot"`
	GroupID         *string   `json:"groupId"`
	Memo            *string   `json:"memo"`
	IsFavorite      bool      `json:"isFavorite"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CardBookPage is a server-side page of card book entries.
type CardBookPage struct {
	Content       []CardBook `json:"content"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
	First         bool       `json:"first"`
	Last          bool       `json:"last"`
	Empty         bool       `json:"empty"`
}

type CardExchange struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	ReceiverID  string    `json:"receiverId"`
	ExchangedAt time.Time `json:"exchangedAt"`
}

type SaveCardBookRequest struct {
	CardID  string `json:"cardId"`
	GroupID string `json:"groupId,omitempty"`
}

type CardExchangeRequest struct {
	CardID string `json:"cardId"`
}

type UpdateCardBookGroupRequest struct {
	GroupID string `json:"groupId"`
}

type UpdateCardBookMemoRequest struct {
	Memo string `json:"memo"`
}

type UpdateCardBookFavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// CardBookQuery filters the card book listing. Zero values are omitted,
// except Page which is sent whenever PageSet is true.
type CardBookQuery struct {
	GroupID string
	Page    int
	PageSet bool
	Size    int
}
