package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func paymentRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "client_id", "facility_id", "amount_cents", "method", "paid_at", "created_at"}).
		AddRow(1, 5, 1, 150000, "upi", now, now)
}

func TestCreatePayment(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(5, 1, int64(150000), MethodUPI, now).
		WillReturnRows(paymentRow(now))

	created, err := repo.Create(context.Background(), &Payment{
		ClientID:    5,
		FacilityID:  1,
		AmountCents: 150000,
		Method:      MethodUPI,
		PaidAt:      now,
	})

	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.Equal(t, MethodUPI, created.Method)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithClientUpdateTransaction(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	expiresAt := now.AddDate(0, 1, 0)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(5, 1, int64(150000), MethodCash, now).
		WillReturnRows(paymentRow(now))
	mock.ExpectExec("UPDATE clients").
		WithArgs(5, "active", expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateWithClientUpdate(context.Background(), &Payment{
		ClientID:    5,
		FacilityID:  1,
		AmountCents: 150000,
		Method:      MethodCash,
		PaidAt:      now,
	}, "active", expiresAt)

	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithClientUpdateRollsBack(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	expiresAt := now.AddDate(0, 1, 0)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(5, 1, int64(150000), MethodCash, now).
		WillReturnRows(paymentRow(now))
	mock.ExpectExec("UPDATE clients").
		WithArgs(5, "active", expiresAt).
		WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	_, err := repo.CreateWithClientUpdate(context.Background(), &Payment{
		ClientID:    5,
		FacilityID:  1,
		AmountCents: 150000,
		Method:      MethodCash,
		PaidAt:      now,
	}, "active", expiresAt)

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllByFacility(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE facility_id").
		WithArgs(1).
		WillReturnRows(paymentRow(now))

	payments, err := repo.GetAllByFacility(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, payments, 1)
}
