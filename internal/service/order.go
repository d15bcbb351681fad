package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/weinert-art/commission-service/internal/entities"
	"github.com/weinert-art/commission-service/internal/ordernum"
	"github.com/weinert-art/commission-service/pkg/trm"
	"github.com/weinert-art/commission-service/pkg/utils"
)

type OrderRepo interface {
	Create(ctx context.Context, number string, in entities.OrderInput) (entities.Order, error)
	GetByNumber(ctx context.Context, number string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.Status, comment string) (entities.Order, error)
	LinkTelegram(ctx context.Context, number string, telegramID int64, username string) (entities.Order, error)
	Delete(ctx context.Context, id string) (string, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpsertTelegramUser(ctx context.Context, u entities.TelegramUser) error
}

// Notifier — уведомления best-effort: методы ничего не возвращают,
// ошибки доставки не должны влиять на исход бизнес-операции.
type Notifier interface {
	OrderCreated(ctx context.Context, chatID int64, order entities.Order)
	OrderCancelled(ctx context.Context, chatID int64, orderNumber, comment string)
	AdminsNewOrder(ctx context.Context, order entities.Order)
}

// Сколько раз перегенерировать номер заказа при конфликте уникальности
const numberAttempts = 5

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	notifier  Notifier
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, notifier Notifier) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		notifier:  notifier,
	}
}

// CreateOrder сохраняет заказ с новым сгенерированным номером и статусом
// "новый", затем уведомляет клиента (если чат привязан) и администраторов.
// Номер перегенерируется только при конфликте уникальности, любая другая
// ошибка записи возвращается с первой попытки. Сначала персистентность,
// потом уведомления: упавшая доставка не откатывает уже сохранённый заказ.
func (s *orderService) CreateOrder(ctx context.Context, in entities.OrderInput) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.Create(ctx, ordernum.Generate(), in)
		return err
	}

	cfg := utils.RetryConfig{
		InitialDelay: time.Millisecond,
		MaxAttempts:  numberAttempts,
		Multiplier:   2,
	}
	if err := utils.RetryOn(cfg, fn, entities.ErrOrderNumberTaken); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug("order created", "order_number", order.OrderNumber)

	if order.Linked() {
		s.notifier.OrderCreated(ctx, order.TelegramUserID, order)
	}
	s.notifier.AdminsNewOrder(ctx, order)

	return order, nil
}

// ChangeStatus валидирует и применяет смену статуса. Отмена без комментария
// отклоняется до какой-либо записи. Уведомление уходит только при отмене и
// только клиенту с привязанным чатом — статусы "в работе" и "выполнен"
// сейчас не нотифицируются, это продуктовое решение, а не упущение.
func (s *orderService) ChangeStatus(ctx context.Context, id string, status entities.Status, comment string) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}
	if status == entities.StatusCancelled && strings.TrimSpace(comment) == "" {
		return entities.Order{}, entities.ErrCommentRequired
	}

	order, err := s.repo.UpdateStatus(ctx, id, status, comment)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order status changed", "order_number", order.OrderNumber, "status", string(status))

	if status == entities.StatusCancelled && order.Linked() {
		s.notifier.OrderCancelled(ctx, order.TelegramUserID, order.OrderNumber, comment)
	}

	return order, nil
}

// LinkOrder привязывает telegram-аккаунт к заказу по его номеру.
// Запись о пользователе и привязка выполняются в одной транзакции.
func (s *orderService) LinkOrder(ctx context.Context, orderNumber string, user entities.TelegramUser) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpsertTelegramUser(ctx, user); err != nil {
			return err
		}
		var err error
		order, err = s.repo.LinkTelegram(ctx, orderNumber, user.TelegramID, user.Username)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order linked to telegram chat",
		"order_number", order.OrderNumber, "telegram_id", user.TelegramID)
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) (string, error) {
	number, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.logger.Info("order deleted", "order_number", number)
	return number, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetByNumber(ctx, number)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.List(ctx)
}

// RegisterChat сохраняет или обновляет данные пользователя, написавшего боту.
func (s *orderService) RegisterChat(ctx context.Context, user entities.TelegramUser) error {
	return s.repo.UpsertTelegramUser(ctx, user)
}
