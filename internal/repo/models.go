package repo

import (
	"database/sql"
	"time"

	"github.com/weinert-art/commission-service/internal/entities"
)

type Order struct {
	ID               string         `db:"id"`
	OrderNumber      string         `db:"order_number"`
	Status           string         `db:"status"`
	AdminComment     sql.NullString `db:"admin_comment"`
	Name             string         `db:"name"`
	CharactersCount  int            `db:"characters_count"`
	References       string         `db:"references"`
	Idea             string         `db:"idea"`
	AdditionalWishes sql.NullString `db:"additional_wishes"`
	Deadline         string         `db:"deadline"`
	DesiredPrice     string         `db:"desired_price"`
	ContactInfo      sql.NullString `db:"contact_info"`
	TelegramUserID   sql.NullInt64  `db:"telegram_user_id"`
	TelegramUsername sql.NullString `db:"telegram_username"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		Status:           entities.Status(o.Status),
		AdminComment:     nullStringToString(o.AdminComment),
		Name:             o.Name,
		CharactersCount:  o.CharactersCount,
		References:       o.References,
		Idea:             o.Idea,
		AdditionalWishes: nullStringToString(o.AdditionalWishes),
		Deadline:         o.Deadline,
		DesiredPrice:     o.DesiredPrice,
		ContactInfo:      nullStringToString(o.ContactInfo),
		TelegramUserID:   nullInt64ToInt64(o.TelegramUserID),
		TelegramUsername: nullStringToString(o.TelegramUsername),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt64ToInt64(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
