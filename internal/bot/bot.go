package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/weinert-art/commission-service/internal/config"
	"github.com/weinert-art/commission-service/internal/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type OrderLinker interface {
	LinkOrder(ctx context.Context, orderNumber string, user entities.TelegramUser) (entities.Order, error)
	RegisterChat(ctx context.Context, user entities.TelegramUser) error
}

// Messenger — исходящая доставка с редактированием последнего сообщения.
type Messenger interface {
	SendOrEdit(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error
	OrderCreated(ctx context.Context, chatID int64, order entities.Order)
}

// Bot слушает апдейты через long polling и обрабатывает команды чата.
type Bot struct {
	logger      *slog.Logger
	api         *tgbotapi.BotAPI
	messenger   Messenger
	svc         OrderLinker
	adminIDs    map[int64]struct{}
	webAppURL   string
	pollTimeout time.Duration
}

func New(logger *slog.Logger, api *tgbotapi.BotAPI, messenger Messenger, svc OrderLinker, cfg config.Telegram) *Bot {
	adminIDs := make(map[int64]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		adminIDs[id] = struct{}{}
	}

	return &Bot{
		logger:      logger.With(slog.String("handler", "bot")),
		api:         api,
		messenger:   messenger,
		svc:         svc,
		adminIDs:    adminIDs,
		webAppURL:   cfg.WebAppURL,
		pollTimeout: cfg.PollTimeout,
	}
}

func (b *Bot) Consume(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.pollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("telegram bot started", slog.String("mode", "long polling"))

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

func (b *Bot) Close() error {
	b.api.StopReceivingUpdates()
	return nil
}

// HandleUpdate обрабатывает один апдейт. Вынесено отдельно от цикла
// Consume, чтобы тот же код работал и за вебхуком.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	b.registerChat(ctx, msg.From)

	chatID := msg.Chat.ID
	command, args := parseCommand(msg.Text)

	var err error
	switch command {
	case "/start":
		markup := b.startKeyboard()
		err = b.messenger.SendOrEdit(chatID, welcomeMessage, &markup)
	case "/help":
		markup := b.orderKeyboard()
		err = b.messenger.SendOrEdit(chatID, helpMessage, &markup)
	case "/info":
		err = b.messenger.SendOrEdit(chatID, infoMessage, nil)
	case "/pricing":
		err = b.messenger.SendOrEdit(chatID, pricingMessage, nil)
	case "/status":
		err = b.messenger.SendOrEdit(chatID, statusMessage, nil)
	case "/link":
		err = b.handleLink(ctx, msg, args)
	case "/admin":
		err = b.handleAdmin(msg)
	default:
		err = b.messenger.SendOrEdit(chatID, defaultMessage, nil)
	}

	if err != nil {
		b.logger.ErrorContext(ctx, "failed to handle message",
			slog.Int64("chat_id", chatID), slog.String("command", command), slog.Any("error", err))
	}
}

// handleLink привязывает чат к заказу по номеру и шлёт подтверждение
// вместе со сводкой заказа.
func (b *Bot) handleLink(ctx context.Context, msg *tgbotapi.Message, args string) error {
	chatID := msg.Chat.ID

	number := strings.ToUpper(strings.TrimSpace(args))
	if number == "" {
		return b.messenger.SendOrEdit(chatID, linkUsageMessage, nil)
	}

	order, err := b.svc.LinkOrder(ctx, number, userFromMessage(msg))
	if errors.Is(err, entities.ErrOrderNotFound) {
		return b.messenger.SendOrEdit(chatID, linkNotFoundMessage, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to link order: %w", err)
	}

	confirmation := fmt.Sprintf("🔗 Заказ %s привязан к этому чату. Сюда будут приходить уведомления.", order.OrderNumber)
	if err := b.messenger.SendOrEdit(chatID, confirmation, nil); err != nil {
		return err
	}

	b.messenger.OrderCreated(ctx, chatID, order)
	return nil
}

func (b *Bot) handleAdmin(msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	if msg.From == nil || !b.isAdmin(msg.From.ID) {
		return b.messenger.SendOrEdit(chatID, unauthorizedMessage, nil)
	}

	markup := b.adminKeyboard()
	return b.messenger.SendOrEdit(chatID, adminWelcomeMessage, &markup)
}

// handleCallback поддерживает кнопки, дублирующие команды
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.registerChat(ctx, cb.From)

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	var err error
	switch cb.Data {
	case "help":
		markup := b.orderKeyboard()
		err = b.messenger.SendOrEdit(chatID, helpMessage, &markup)
	case "status":
		err = b.messenger.SendOrEdit(chatID, statusMessage, nil)
	default:
		err = b.messenger.SendOrEdit(chatID, defaultMessage, nil)
	}

	if err != nil {
		b.logger.ErrorContext(ctx, "failed to handle callback",
			slog.Int64("chat_id", chatID), slog.String("data", cb.Data), slog.Any("error", err))
	}
}

// registerChat обновляет запись о пользователе при каждом контакте с ботом.
// Ошибка здесь не мешает обработать сам апдейт.
func (b *Bot) registerChat(ctx context.Context, from *tgbotapi.User) {
	if from == nil {
		return
	}
	user := entities.TelegramUser{
		TelegramID: from.ID,
		Username:   from.UserName,
		FirstName:  from.FirstName,
		LastName:   from.LastName,
	}
	if err := b.svc.RegisterChat(ctx, user); err != nil {
		b.logger.ErrorContext(ctx, "failed to register chat",
			slog.Int64("telegram_id", from.ID), slog.Any("error", err))
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	_, ok := b.adminIDs[userID]
	return ok
}

func (b *Bot) startKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🎨 Открыть портфолио", b.webAppURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📝 Заказать арт", b.webAppURL+"/order"),
		),
	)
}

func (b *Bot) orderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📝 Заказать", b.webAppURL+"/order"),
		),
	)
}

func (b *Bot) adminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔧 Перейти в админку", b.webAppURL+"/admin"),
		),
	)
}

func userFromMessage(msg *tgbotapi.Message) entities.TelegramUser {
	if msg.From == nil {
		return entities.TelegramUser{TelegramID: msg.Chat.ID}
	}
	return entities.TelegramUser{
		TelegramID: msg.From.ID,
		Username:   msg.From.UserName,
		FirstName:  msg.From.FirstName,
		LastName:   msg.From.LastName,
	}
}

// parseCommand выделяет команду и аргументы из текста сообщения.
// Суффикс @botname после команды отбрасывается.
func parseCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	command, args, _ := strings.Cut(text, " ")
	if at := strings.Index(command, "@"); at != -1 {
		command = command[:at]
	}
	return command, strings.TrimSpace(args)
}
