package notifier_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/weinert-art/commission-service/internal/config"
	"github.com/weinert-art/commission-service/internal/entities"
	"github.com/weinert-art/commission-service/internal/notifier"
	"github.com/weinert-art/commission-service/pkg/cache"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu       sync.Mutex
	sends    []tgbotapi.MessageConfig
	edits    []tgbotapi.EditMessageTextConfig
	failEdit bool
	failSend bool
	nextID   int
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch cfg := c.(type) {
	case tgbotapi.EditMessageTextConfig:
		f.edits = append(f.edits, cfg)
		if f.failEdit {
			return tgbotapi.Message{}, errors.New("Bad Request: message to edit not found")
		}
		return tgbotapi.Message{MessageID: cfg.MessageID}, nil
	case tgbotapi.MessageConfig:
		f.sends = append(f.sends, cfg)
		if f.failSend {
			return tgbotapi.Message{}, errors.New("Forbidden: bot was blocked by the user")
		}
		f.nextID++
		return tgbotapi.Message{MessageID: f.nextID}, nil
	default:
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}
}

func newNotifier(t *testing.T, api *fakeAPI, adminIDs ...int64) *notifier.Notifier {
	t.Helper()
	if len(adminIDs) == 0 {
		adminIDs = []int64{1}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cursors := cache.NewCursors(100, time.Minute)
	return notifier.New(logger, api, cursors, config.Telegram{
		AdminIDs:  adminIDs,
		WebAppURL: "https://example.com",
	})
}

func TestSendOrEdit_EditsSecondMessage(t *testing.T) {
	api := &fakeAPI{}
	n := newNotifier(t, api)

	require.NoError(t, n.SendOrEdit(100, "first", nil))
	require.NoError(t, n.SendOrEdit(100, "second", nil))

	require.Len(t, api.sends, 1)
	require.Len(t, api.edits, 1)
	assert.Equal(t, "second", api.edits[0].Text)
	assert.Equal(t, 1, api.edits[0].MessageID)
}

func TestSendOrEdit_FallbackWhenEditFails(t *testing.T) {
	api := &fakeAPI{}
	n := newNotifier(t, api)

	require.NoError(t, n.SendOrEdit(100, "first", nil))

	api.failEdit = true
	require.NoError(t, n.SendOrEdit(100, "second", nil))

	// редактирование упало, поэтому уехало новое сообщение
	require.Len(t, api.edits, 1)
	require.Len(t, api.sends, 2)
	assert.Equal(t, "second", api.sends[1].Text)

	// курсор указывает уже на новое сообщение
	api.failEdit = false
	require.NoError(t, n.SendOrEdit(100, "third", nil))
	require.Len(t, api.edits, 2)
	assert.Equal(t, 2, api.edits[1].MessageID)
}

func TestSendOrEdit_SendFailure(t *testing.T) {
	api := &fakeAPI{failSend: true}
	n := newNotifier(t, api)

	err := n.SendOrEdit(100, "first", nil)
	assert.Error(t, err)
}

func TestAdminsNewOrder(t *testing.T) {
	api := &fakeAPI{}
	n := newNotifier(t, api, 1, 2, 3)

	n.AdminsNewOrder(context.Background(), entities.Order{
		OrderNumber:     "AB12CD34",
		Name:            "Ann",
		Idea:            strings.Repeat("и", 150),
		DesiredPrice:    "5000",
		Deadline:        "1 неделя",
		TelegramUserID:  500,
		CharactersCount: 1,
	})

	require.Len(t, api.sends, 3)

	chats := make(map[int64]bool)
	for _, msg := range api.sends {
		chats[msg.ChatID] = true
		assert.Contains(t, msg.Text, "AB12CD34")
		assert.Contains(t, msg.Text, "(ID: 500)")
		// идея обрезана до 100 рун с многоточием
		assert.Contains(t, msg.Text, strings.Repeat("и", 100)+"...")
		assert.NotContains(t, msg.Text, strings.Repeat("и", 101))
		assert.NotNil(t, msg.ReplyMarkup)
	}
	assert.Len(t, chats, 3)
}

func TestAdminsNewOrder_UsernamePreferred(t *testing.T) {
	api := &fakeAPI{}
	n := newNotifier(t, api)

	n.AdminsNewOrder(context.Background(), entities.Order{
		OrderNumber:      "AB12CD34",
		Name:             "Ann",
		Idea:             "портрет",
		TelegramUserID:   500,
		TelegramUsername: "ann_draws",
	})

	require.Len(t, api.sends, 1)
	assert.Contains(t, api.sends[0].Text, "(@ann_draws)")
	assert.NotContains(t, api.sends[0].Text, "ID: 500")
}

func TestOrderCancelled(t *testing.T) {
	api := &fakeAPI{}
	n := newNotifier(t, api)

	n.OrderCancelled(context.Background(), 100, "AB12CD34", "нет свободных слотов")

	require.Len(t, api.sends, 1)
	assert.Contains(t, api.sends[0].Text, "AB12CD34 отменен")
	assert.Contains(t, api.sends[0].Text, "Комментарий администратора:\nнет свободных слотов")
}

func TestOrderCancelled_NoComment(t *testing.T) {
	api := &fakeAPI{}
	n := newNotifier(t, api)

	n.OrderCancelled(context.Background(), 100, "AB12CD34", "")

	require.Len(t, api.sends, 1)
	assert.NotContains(t, api.sends[0].Text, "Комментарий")
}

func TestNotify_TransportErrorSwallowed(t *testing.T) {
	api := &fakeAPI{failSend: true}
	n := newNotifier(t, api)

	// ни один из методов не должен паниковать или возвращать ошибку наружу
	n.OrderCreated(context.Background(), 100, entities.Order{OrderNumber: "AB12CD34"})
	n.OrderInProgress(context.Background(), 100, "AB12CD34")
	n.OrderCompleted(context.Background(), 100, "AB12CD34")
	n.AdminsNewOrder(context.Background(), entities.Order{OrderNumber: "AB12CD34"})
}
