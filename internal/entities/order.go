package entities

import (
	"errors"
	"time"
)

type Status string

// Статусы хранятся в базе как есть, на русском — так их видит и админка, и клиент.
const (
	StatusNew        Status = "новый"
	StatusInProgress Status = "в работе"
	StatusCompleted  Status = "выполнен"
	StatusCancelled  Status = "отменен"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          string
	OrderNumber string
	Status      Status

	// Заполняется только при отмене, при любом другом статусе сбрасывается
	AdminComment string

	Name             string
	CharactersCount  int
	References       string
	Idea             string
	AdditionalWishes string
	Deadline         string
	DesiredPrice     string
	ContactInfo      string

	TelegramUserID   int64 // 0 — чат не привязан
	TelegramUsername string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Linked сообщает, есть ли у заказа привязанный telegram-чат.
func (o Order) Linked() bool {
	return o.TelegramUserID != 0
}

// OrderInput — данные формы заказа до присвоения номера и статуса.
type OrderInput struct {
	Name             string
	CharactersCount  int
	References       string
	Idea             string
	AdditionalWishes string
	Deadline         string
	DesiredPrice     string
	ContactInfo      string
	TelegramUserID   int64
	TelegramUsername string
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNumberTaken = errors.New("order number already taken")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrCommentRequired  = errors.New("cancellation requires a comment")
)
