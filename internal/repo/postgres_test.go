package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/weinert-art/commission-service/internal/entities"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rowColumns = []string{
	"id", "order_number", "status", "admin_comment",
	"name", "characters_count", "references", "idea",
	"additional_wishes", "deadline", "desired_price", "contact_info",
	"telegram_user_id", "telegram_username", "created_at", "updated_at",
}

func newTestRepo(t *testing.T) (*postgresRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresRepo(sqlx.NewDb(db, "sqlmock")), mock
}

func orderRow(status string, adminComment any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(rowColumns).AddRow(
		"id-1", "AB12CD34", status, adminComment,
		"Ann", 1, "refs", "портрет",
		nil, "1 неделя", "5000", nil,
		nil, nil, now, now,
	)
}

func TestPostgresRepo_UpdateStatus(t *testing.T) {
	t.Run("non-cancellation clears stored admin comment", func(t *testing.T) {
		r, mock := newTestRepo(t)

		// комментарий в колонку уходит как NULL, даже если его передали
		mock.ExpectQuery("UPDATE orders SET").
			WithArgs("в работе", nil, "id-1").
			WillReturnRows(orderRow("в работе", nil))

		order, err := r.UpdateStatus(context.Background(), "id-1", entities.StatusInProgress, "stale comment")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusInProgress, order.Status)
		assert.Empty(t, order.AdminComment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancellation stores the comment", func(t *testing.T) {
		r, mock := newTestRepo(t)

		mock.ExpectQuery("UPDATE orders SET").
			WithArgs("отменен", "нет свободных слотов", "id-1").
			WillReturnRows(orderRow("отменен", "нет свободных слотов"))

		order, err := r.UpdateStatus(context.Background(), "id-1", entities.StatusCancelled, "нет свободных слотов")
		require.NoError(t, err)
		assert.Equal(t, "нет свободных слотов", order.AdminComment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		r, mock := newTestRepo(t)

		mock.ExpectQuery("UPDATE orders SET").
			WillReturnError(sql.ErrNoRows)

		_, err := r.UpdateStatus(context.Background(), "missing", entities.StatusInProgress, "")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestPostgresRepo_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, mock := newTestRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id =").
			WithArgs("id-1").
			WillReturnRows(orderRow("новый", nil))

		order, err := r.GetByID(context.Background(), "id-1")
		require.NoError(t, err)
		assert.Equal(t, "AB12CD34", order.OrderNumber)
		assert.Equal(t, entities.StatusNew, order.Status)
	})

	t.Run("not found", func(t *testing.T) {
		r, mock := newTestRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id =").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := r.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestPostgresRepo_Create_DuplicateNumber(t *testing.T) {
	r, mock := newTestRepo(t)

	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := r.Create(context.Background(), "AB12CD34", entities.OrderInput{
		Name:            "Ann",
		CharactersCount: 1,
		References:      "refs",
		Idea:            "портрет",
		Deadline:        "1 неделя",
		DesiredPrice:    "5000",
	})
	assert.ErrorIs(t, err, entities.ErrOrderNumberTaken)
}
