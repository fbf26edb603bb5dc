package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_ListActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	first, second := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE is_active = \$1 ORDER BY sort_order ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "is_active", "sort_order"}).
			AddRow(first.String(), "Dresses", "dresses", true, 0).
			AddRow(second.String(), "Shoes", "shoes", true, 1))

	categories, err := repo.ListActive(context.Background(), 12)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, first, categories[0].ID)
	assert.Equal(t, "shoes", categories[1].Slug)
}

func TestCategoryRepository_FindBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE slug = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindBySlug(context.Background(), "hats")

	assert.True(t, errors.Is(err, repository.ErrCategoryNotFound))
}

func TestUserRepository_DebitBalance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("covered", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "users" SET "balance"=balance - \$1.* WHERE id = \$\d+ AND balance >= \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewUserRepository(db).DebitBalance(ctx, userID, decimal.NewFromInt(10))

		require.NoError(t, err)
	})

	t.Run("not covered", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "users" SET "balance"=balance - \$1.* WHERE id = \$\d+ AND balance >= \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewUserRepository(db).DebitBalance(ctx, userID, decimal.NewFromInt(10))

		assert.True(t, errors.Is(err, repository.ErrInsufficientBalance))
	})

	t.Run("without a database", func(t *testing.T) {
		err := NewTransactionManager(nil).Execute(ctx, func(repository.RepositoryFactory) error {
			t.Fatal("fn must not run")

			return nil
		})

		assert.ErrorIs(t, err, domainerrors.ErrDatabaseNotConfigured)
	})
}

func TestUserRepository_CreditBalance_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "users" SET "balance"=balance \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewUserRepository(db).CreditBalance(context.Background(), uuid.New(), decimal.NewFromInt(5))

	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_ExistingIDs(t *testing.T) {
	db, mock := newMockDB(t)
	known, unknown := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE id IN \(\$1,\$2\)`).
		WithArgs(known, unknown).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(known.String()))

	found, err := NewUserRepository(db).ExistingIDs(context.Background(), []uuid.UUID{known, unknown})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{known}, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_BatchCreate_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO "notifications"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := NewNotificationRepository(db).BatchCreate(context.Background(), []*entity.Notification{
		{ID: uuid.New(), UserID: uuid.New(), Title: "t", Message: "m", Type: entity.NotificationTypeInfo},
	})

	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestProductRepository_DecrementStock_Conditional(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "products" SET "stock"=stock - \$1.* WHERE id = \$\d+ AND stock >= \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewProductRepository(db).DecrementStock(context.Background(), uuid.New(), 3)

	assert.True(t, errors.Is(err, repository.ErrInsufficientStock))
}

func TestWalletRepository_ReviewDeposit_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	update := repository.ReviewUpdate{
		Status:     entity.ReviewStatusApproved,
		ReviewerID: uuid.New(),
		ReviewedAt: time.Now(),
	}

	t.Run("pending row flips", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "deposit_requests" SET .* WHERE id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewWalletRepository(db).ReviewDeposit(ctx, uuid.New(), update))
	})

	t.Run("already reviewed row untouched", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "deposit_requests" SET .* WHERE id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewWalletRepository(db).ReviewDeposit(ctx, uuid.New(), update)

		assert.True(t, errors.Is(err, repository.ErrAlreadyReviewed))
	})
}

func TestOrderRepository_TransitionStatus_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "orders" SET .*"status"=\$\d+.* WHERE id = \$\d+ AND status IN \(\$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewOrderRepository(db).TransitionStatus(context.Background(), uuid.New(),
		[]entity.OrderStatus{entity.OrderStatusPaid}, entity.OrderStatusShipped, time.Now())

	assert.True(t, errors.Is(err, repository.ErrOrderStatusConflict))
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET "balance"=balance \+ \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			return f.NewUserRepository().CreditBalance(ctx, uuid.New(), decimal.NewFromInt(1))
		})

		require.NoError(t, err)
	})

	t.Run("rolls back and returns the business error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET "balance"=balance - \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			return f.NewUserRepository().DebitBalance(ctx, uuid.New(), decimal.NewFromInt(1))
		})

		assert.True(t, errors.Is(err, repository.ErrInsufficientBalance))
	})

	t.Run("without a database", func(t *testing.T) {
		err := NewTransactionManager(nil).Execute(ctx, func(repository.RepositoryFactory) error {
			t.Fatal("fn must not run")

			return nil
		})

		assert.ErrorIs(t, err, domainerrors.ErrDatabaseNotConfigured)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, escapeLike(`50% off_now\`))
}
