package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/weinert-art/commission-service/internal/entities"
	"github.com/weinert-art/commission-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// references — зарезервированное слово в постгресе, колонку приходится квотить
var orderColumns = []string{
	"id", "order_number", "status", "admin_comment",
	"name", "characters_count", `"references"`, "idea",
	"additional_wishes", "deadline", "desired_price", "contact_info",
	"telegram_user_id", "telegram_username", "created_at", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create сохраняет заказ со статусом "новый" независимо от входных данных.
// Дубликат номера заказа возвращается как entities.ErrOrderNumberTaken.
func (r *postgresRepo) Create(ctx context.Context, number string, in entities.OrderInput) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "order_number", "status",
			"name", "characters_count", `"references"`, "idea",
			"additional_wishes", "deadline", "desired_price", "contact_info",
			"telegram_user_id", "telegram_username",
		).
		Values(
			uuid.NewString(), number, string(entities.StatusNew),
			in.Name, in.CharactersCount, in.References, in.Idea,
			nullString(in.AdditionalWishes), in.Deadline, in.DesiredPrice, nullString(in.ContactInfo),
			nullInt64(in.TelegramUserID), nullString(in.TelegramUsername),
		).
		Suffix("RETURNING " + returning()).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if isUniqueViolation(err) {
		return entities.Order{}, entities.ErrOrderNumberTaken
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) GetByNumber(ctx context.Context, number string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_number": number}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

// UpdateStatus атомарно меняет статус. Комментарий админа пишется только
// при отмене, при любом другом статусе колонка зануляется.
func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status entities.Status, comment string) (entities.Order, error) {
	adminComment := sql.NullString{}
	if status == entities.StatusCancelled {
		adminComment = nullString(comment)
	}

	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("admin_comment", adminComment).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning()).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) LinkTelegram(ctx context.Context, number string, telegramID int64, username string) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("telegram_user_id", telegramID).
		Set("telegram_username", nullString(username)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_number": number}).
		Suffix("RETURNING " + returning()).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to link telegram user: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (string, error) {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING order_number").
		MustSql()

	var number string
	err := r.getContext(ctx, &number, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to delete order: %w", err)
	}
	return number, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at ASC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result, nil
}

// UpsertTelegramUser обновляет запись о пользователе при каждом апдейте бота.
func (r *postgresRepo) UpsertTelegramUser(ctx context.Context, u entities.TelegramUser) error {
	query, args := r.qb.Insert("telegram_users").
		Columns("id", "telegram_id", "username", "first_name", "last_name").
		Values(uuid.NewString(), u.TelegramID, nullString(u.Username), nullString(u.FirstName), nullString(u.LastName)).
		Suffix(`ON CONFLICT (telegram_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = now()`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert telegram user: %w", err)
	}
	return nil
}

func returning() string {
	return strings.Join(orderColumns, ", ")
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
