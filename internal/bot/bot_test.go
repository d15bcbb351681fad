package bot_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/weinert-art/commission-service/internal/bot"
	mocks "github.com/weinert-art/commission-service/internal/bot/mocks"
	"github.com/weinert-art/commission-service/internal/config"
	"github.com/weinert-art/commission-service/internal/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const adminID int64 = 42

func newBot(t *testing.T) (*mocks.MockMessenger, *mocks.MockOrderLinker, *bot.Bot) {
	t.Helper()

	messenger := mocks.NewMockMessenger(t)
	svc := mocks.NewMockOrderLinker(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	b := bot.New(logger, nil, messenger, svc, config.Telegram{
		AdminIDs:  []int64{adminID},
		WebAppURL: "https://example.com",
	})
	return messenger, svc, b
}

func textUpdate(chatID, userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			From: &tgbotapi.User{ID: userID, UserName: "ann_draws", FirstName: "Ann"},
			Text: text,
		},
	}
}

func TestBot_Link(t *testing.T) {
	user := entities.TelegramUser{TelegramID: 500, Username: "ann_draws", FirstName: "Ann"}

	t.Run("links order and sends summary", func(t *testing.T) {
		messenger, svc, b := newBot(t)

		linked := entities.Order{OrderNumber: "AB12CD34", TelegramUserID: 500}

		svc.EXPECT().RegisterChat(mock.Anything, user).Return(nil).Once()
		svc.EXPECT().LinkOrder(mock.Anything, "AB12CD34", user).Return(linked, nil).Once()
		messenger.EXPECT().
			SendOrEdit(int64(100), mock.MatchedBy(func(text string) bool {
				return strings.Contains(text, "AB12CD34") && strings.Contains(text, "привязан")
			}), mock.Anything).
			Return(nil).Once()
		messenger.EXPECT().OrderCreated(mock.Anything, int64(100), linked).Once()

		b.HandleUpdate(context.Background(), textUpdate(100, 500, "/link AB12CD34"))
	})

	t.Run("uppercases the number", func(t *testing.T) {
		messenger, svc, b := newBot(t)

		svc.EXPECT().RegisterChat(mock.Anything, user).Return(nil).Once()
		svc.EXPECT().LinkOrder(mock.Anything, "AB12CD34", user).Return(entities.Order{OrderNumber: "AB12CD34"}, nil).Once()
		messenger.EXPECT().SendOrEdit(int64(100), mock.Anything, mock.Anything).Return(nil).Once()
		messenger.EXPECT().OrderCreated(mock.Anything, int64(100), mock.Anything).Once()

		b.HandleUpdate(context.Background(), textUpdate(100, 500, "/link ab12cd34"))
	})

	t.Run("unknown order number", func(t *testing.T) {
		messenger, svc, b := newBot(t)

		svc.EXPECT().RegisterChat(mock.Anything, user).Return(nil).Once()
		svc.EXPECT().
			LinkOrder(mock.Anything, "XX00XX00", user).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()
		messenger.EXPECT().
			SendOrEdit(int64(100), mock.MatchedBy(func(text string) bool {
				return strings.Contains(text, "не найден")
			}), mock.Anything).
			Return(nil).Once()

		b.HandleUpdate(context.Background(), textUpdate(100, 500, "/link XX00XX00"))
	})

	t.Run("missing argument", func(t *testing.T) {
		messenger, svc, b := newBot(t)

		svc.EXPECT().RegisterChat(mock.Anything, user).Return(nil).Once()
		messenger.EXPECT().
			SendOrEdit(int64(100), mock.MatchedBy(func(text string) bool {
				return strings.Contains(text, "/link")
			}), mock.Anything).
			Return(nil).Once()

		b.HandleUpdate(context.Background(), textUpdate(100, 500, "/link"))
	})
}

func TestBot_Admin(t *testing.T) {
	t.Run("unauthorized user", func(t *testing.T) {
		messenger, svc, b := newBot(t)

		svc.EXPECT().RegisterChat(mock.Anything, mock.Anything).Return(nil).Once()
		messenger.EXPECT().
			SendOrEdit(int64(100), mock.MatchedBy(func(text string) bool {
				return strings.Contains(text, "нет прав")
			}), mock.Anything).
			Return(nil).Once()

		b.HandleUpdate(context.Background(), textUpdate(100, 500, "/admin"))
	})

	t.Run("admin gets panel keyboard", func(t *testing.T) {
		messenger, svc, b := newBot(t)

		svc.EXPECT().RegisterChat(mock.Anything, mock.Anything).Return(nil).Once()
		messenger.EXPECT().
			SendOrEdit(int64(100), mock.MatchedBy(func(text string) bool {
				return strings.Contains(text, "админ-панель")
			}), mock.MatchedBy(func(markup *tgbotapi.InlineKeyboardMarkup) bool {
				return markup != nil
			})).
			Return(nil).Once()

		b.HandleUpdate(context.Background(), textUpdate(100, adminID, "/admin"))
	})
}

func TestBot_CommonCommands(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		fragment string
	}{
		{name: "start", text: "/start", fragment: "Приветствую"},
		{name: "start with bot mention", text: "/start@weinert_bot", fragment: "Приветствую"},
		{name: "help", text: "/help", fragment: "Доступные команды"},
		{name: "status", text: "/status", fragment: "Статусы заказов"},
		{name: "free text gets hint", text: "привет", fragment: "/start"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			messenger, svc, b := newBot(t)

			svc.EXPECT().RegisterChat(mock.Anything, mock.Anything).Return(nil).Once()
			messenger.EXPECT().
				SendOrEdit(int64(100), mock.MatchedBy(func(text string) bool {
					return strings.Contains(text, tc.fragment)
				}), mock.Anything).
				Return(nil).Once()

			b.HandleUpdate(context.Background(), textUpdate(100, 500, tc.text))
		})
	}
}

func TestBot_CallbackRegistersChat(t *testing.T) {
	messenger, svc, b := newBot(t)

	svc.EXPECT().
		RegisterChat(mock.Anything, entities.TelegramUser{TelegramID: 500, Username: "ann_draws"}).
		Return(nil).Once()
	messenger.EXPECT().SendOrEdit(int64(100), mock.Anything, mock.Anything).Return(nil).Once()

	b.HandleUpdate(context.Background(), tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			From:    &tgbotapi.User{ID: 500, UserName: "ann_draws"},
			Data:    "status",
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 100}},
		},
	})
}

func TestBot_RegisterChatFailureDoesNotBlock(t *testing.T) {
	messenger, svc, b := newBot(t)

	svc.EXPECT().RegisterChat(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	messenger.EXPECT().SendOrEdit(int64(100), mock.Anything, mock.Anything).Return(nil).Once()

	b.HandleUpdate(context.Background(), textUpdate(100, 500, "/status"))
}
