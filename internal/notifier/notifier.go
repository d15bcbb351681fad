package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weinert-art/commission-service/internal/config"
	"github.com/weinert-art/commission-service/internal/entities"
	"github.com/weinert-art/commission-service/pkg/cache"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
)

// TelegramAPI — та часть бота, что нужна для доставки. *tgbotapi.BotAPI её реализует.
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier рассылает уведомления о жизненном цикле заказа клиенту
// и администраторам. Доставка best-effort: ошибки транспорта логируются
// и никогда не доходят до вызывающей бизнес-операции.
type Notifier struct {
	logger    *slog.Logger
	api       TelegramAPI
	cursors   *cache.Cursors
	adminIDs  []int64
	webAppURL string
}

func New(logger *slog.Logger, api TelegramAPI, cursors *cache.Cursors, cfg config.Telegram) *Notifier {
	return &Notifier{
		logger:    logger.With(slog.String("component", "notifier")),
		api:       api,
		cursors:   cursors,
		adminIDs:  cfg.AdminIDs,
		webAppURL: cfg.WebAppURL,
	}
}

func (n *Notifier) OrderCreated(ctx context.Context, chatID int64, order entities.Order) {
	if err := n.SendOrEdit(chatID, orderCreatedMessage(order), nil); err != nil {
		n.logger.ErrorContext(ctx, "failed to send order created notification",
			slog.Int64("chat_id", chatID), slog.String("order_number", order.OrderNumber), slog.Any("error", err))
	}
}

func (n *Notifier) OrderCancelled(ctx context.Context, chatID int64, orderNumber, comment string) {
	if err := n.SendOrEdit(chatID, orderCancelledMessage(orderNumber, comment), nil); err != nil {
		n.logger.ErrorContext(ctx, "failed to send order cancelled notification",
			slog.Int64("chat_id", chatID), slog.String("order_number", orderNumber), slog.Any("error", err))
	}
}

func (n *Notifier) OrderInProgress(ctx context.Context, chatID int64, orderNumber string) {
	if err := n.SendOrEdit(chatID, orderInProgressMessage(orderNumber), nil); err != nil {
		n.logger.ErrorContext(ctx, "failed to send order in progress notification",
			slog.Int64("chat_id", chatID), slog.String("order_number", orderNumber), slog.Any("error", err))
	}
}

func (n *Notifier) OrderCompleted(ctx context.Context, chatID int64, orderNumber string) {
	if err := n.SendOrEdit(chatID, orderCompletedMessage(orderNumber), nil); err != nil {
		n.logger.ErrorContext(ctx, "failed to send order completed notification",
			slog.Int64("chat_id", chatID), slog.String("order_number", orderNumber), slog.Any("error", err))
	}
}

// AdminsNewOrder разошлёт сводку нового заказа всем администраторам.
// Неудача по одному адресату не мешает остальным.
func (n *Notifier) AdminsNewOrder(ctx context.Context, order entities.Order) {
	text := adminNewOrderMessage(order)
	markup := n.adminKeyboard()

	g := new(errgroup.Group)
	for _, adminID := range n.adminIDs {
		adminID := adminID
		g.Go(func() error {
			if err := n.SendOrEdit(adminID, text, &markup); err != nil {
				return fmt.Errorf("admin %d: %w", adminID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		n.logger.ErrorContext(ctx, "failed to notify admins about new order",
			slog.String("order_number", order.OrderNumber), slog.Any("error", err))
	}
}

// SendOrEdit редактирует последнее отправленное в чат сообщение, чтобы не
// засорять историю. Если редактировать нечего или не вышло (сообщение
// удалили, оно слишком старое) — отправляет новое и запоминает его id.
func (n *Notifier) SendOrEdit(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	if messageID, ok := n.cursors.Get(chatID); ok {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
		edit.ReplyMarkup = markup
		if _, err := n.api.Send(edit); err == nil {
			deliveries.WithLabelValues("edit").Inc()
			return nil
		}
		n.logger.Debug("failed to edit message, sending new one",
			slog.Int64("chat_id", chatID), slog.Int("message_id", messageID))
		n.cursors.Drop(chatID)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	sent, err := n.api.Send(msg)
	if err != nil {
		deliveryErrors.Inc()
		return fmt.Errorf("failed to send message: %w", err)
	}

	n.cursors.Set(chatID, sent.MessageID)
	deliveries.WithLabelValues("send").Inc()
	return nil
}

func (n *Notifier) adminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔧 Открыть в админке", n.webAppURL+"/admin"),
		),
	)
}
