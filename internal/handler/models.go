package handler

import (
	"time"

	"github.com/weinert-art/commission-service/internal/entities"
)

// Order — заказ в том виде, в котором его отдаёт API
type Order struct {
	ID               string    `json:"id"`
	OrderNumber      string    `json:"orderNumber"`
	Status           string    `json:"status"`
	AdminComment     string    `json:"adminComment,omitempty"`
	Name             string    `json:"name"`
	CharactersCount  int       `json:"charactersCount"`
	References       string    `json:"references"`
	Idea             string    `json:"idea"`
	AdditionalWishes string    `json:"additionalWishes,omitempty"`
	Deadline         string    `json:"deadline"`
	DesiredPrice     string    `json:"desiredPrice"`
	ContactInfo      string    `json:"contactInfo,omitempty"`
	TelegramUserID   int64     `json:"telegramUserId,omitempty"`
	TelegramUsername string    `json:"telegramUsername,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateOrderRequest — форма заказа. Статус клиент не передаёт:
// новый заказ всегда создаётся в статусе "новый".
type CreateOrderRequest struct {
	Name             string `json:"name" validate:"required"`
	CharactersCount  int    `json:"charactersCount" validate:"required,gt=0"`
	References       string `json:"references" validate:"required"`
	Idea             string `json:"idea" validate:"required"`
	AdditionalWishes string `json:"additionalWishes"`
	Deadline         string `json:"deadline" validate:"required"`
	DesiredPrice     string `json:"desiredPrice" validate:"required"`
	ContactInfo      string `json:"contactInfo"`
	TelegramUserID   int64  `json:"telegramUserId"`
	TelegramUsername string `json:"telegramUsername"`
}

type UpdateStatusRequest struct {
	ID           string `json:"id" validate:"required,uuid"`
	Status       string `json:"status" validate:"required"`
	AdminComment string `json:"adminComment"`
}

type DeleteOrderRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type DeleteOrderResponse struct {
	Message     string `json:"message"`
	OrderNumber string `json:"orderNumber"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		Status:           string(o.Status),
		AdminComment:     o.AdminComment,
		Name:             o.Name,
		CharactersCount:  o.CharactersCount,
		References:       o.References,
		Idea:             o.Idea,
		AdditionalWishes: o.AdditionalWishes,
		Deadline:         o.Deadline,
		DesiredPrice:     o.DesiredPrice,
		ContactInfo:      o.ContactInfo,
		TelegramUserID:   o.TelegramUserID,
		TelegramUsername: o.TelegramUsername,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func CreateRequestToInput(r CreateOrderRequest) entities.OrderInput {
	return entities.OrderInput{
		Name:             r.Name,
		CharactersCount:  r.CharactersCount,
		References:       r.References,
		Idea:             r.Idea,
		AdditionalWishes: r.AdditionalWishes,
		Deadline:         r.Deadline,
		DesiredPrice:     r.DesiredPrice,
		ContactInfo:      r.ContactInfo,
		TelegramUserID:   r.TelegramUserID,
		TelegramUsername: r.TelegramUsername,
	}
}
