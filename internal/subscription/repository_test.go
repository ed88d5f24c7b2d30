package subscription

import (
	"context"
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

func planColumns() []string {
	return []string{"id", "name", "price_cents", "duration_months", "max_members", "max_staff", "created_at"}
}

func TestCreateAndGetPlan(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	maxMembers := 100

	mock.ExpectQuery("INSERT INTO subscription_plans").
		WithArgs("Standard", int64(150000), 1, &maxMembers, nil).
		WillReturnRows(sqlmock.NewRows(planColumns()).AddRow(1, "Standard", 150000, 1, 100, nil, now))

	created, err := repo.CreatePlan(context.Background(), "Standard", 150000, 1, &maxMembers, nil)
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.NotNil(t, created.MaxMembers)
	require.Equal(t, 100, *created.MaxMembers)
	require.Nil(t, created.MaxStaff)

	mock.ExpectQuery("SELECT (.+) FROM subscription_plans WHERE id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(planColumns()).AddRow(1, "Standard", 150000, 1, 100, nil, now))

	got, err := repo.GetPlanByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Standard", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllPlansOrderedByPrice(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM subscription_plans ORDER BY price_cents").
		WillReturnRows(sqlmock.NewRows(planColumns()).
			AddRow(2, "Basic", 50000, 1, 50, 2, now).
			AddRow(1, "Standard", 150000, 1, 100, 5, now))

	plans, err := repo.GetAllPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "Basic", plans[0].Name)
}

func TestPlanInUse(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := repo.PlanInUse(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, inUse)
}

func TestDeletePlanExec(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("DELETE FROM subscription_plans").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeletePlan(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
