package entities

import "time"

// TelegramUser — аккаунт, когда-либо писавший боту.
// Обновляется при каждом апдейте, ключ — telegram id.
type TelegramUser struct {
	ID         string
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
