package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitadmin/internal/auth"
	"fitadmin/internal/facility"
)

const testSecret = "test-secret-key-12345"

// Mock repositories
type MockUserRepo struct{ mock.Mock }
type MockFacilityService struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, facilityID *int, name, email, passwordHash string, role auth.Role) (*User, error) {
	args := m.Called(ctx, facilityID, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) GetStaffByFacility(ctx context.Context, facilityID int) ([]User, error) {
	args := m.Called(ctx, facilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFacilityService) CreateFacility(ctx context.Context, req facility.CreateFacilityRequest) (*facility.Facility, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityService) ListFacilities(ctx context.Context) ([]facility.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]facility.Facility), args.Error(1)
}

func (m *MockFacilityService) GetFacility(ctx context.Context, id int) (*facility.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityService) AssignPlan(ctx context.Context, facilityID, planID int) (*facility.Facility, error) {
	args := m.Called(ctx, facilityID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityService) Override(ctx context.Context, facilityID int, req facility.OverrideRequest) (*facility.Facility, error) {
	args := m.Called(ctx, facilityID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityService) CheckMemberQuota(ctx context.Context, facilityID int) error {
	return m.Called(ctx, facilityID).Error(0)
}

func (m *MockFacilityService) CheckStaffQuota(ctx context.Context, facilityID int) error {
	return m.Called(ctx, facilityID).Error(0)
}

func (m *MockFacilityService) CreateType(ctx context.Context, req facility.CreateFacilityTypeRequest) (*facility.FacilityType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.FacilityType), args.Error(1)
}

func (m *MockFacilityService) GetType(ctx context.Context, id int) (*facility.FacilityType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.FacilityType), args.Error(1)
}

func (m *MockFacilityService) ListTypes(ctx context.Context) ([]facility.FacilityType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]facility.FacilityType), args.Error(1)
}

func intPtr(v int) *int { return &v }

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)

	facilityID := 1
	admin := &User{
		ID:           7,
		FacilityID:   &facilityID,
		Email:        "admin@ironworks.test",
		PasswordHash: hashed,
		Role:         auth.RoleAdmin,
	}

	t.Run("Successful login returns tokens with facility scope", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, new(MockFacilityService), testSecret)

		repo.On("FindByEmail", mock.Anything, "admin@ironworks.test").Return(admin, nil)

		u, access, refresh, err := svc.Login(context.Background(), LoginRequest{
			Email:    "admin@ironworks.test",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, 7, u.ID)
		require.NotEmpty(t, access)
		require.NotEmpty(t, refresh)

		claims, err := auth.ValidateToken(access, testSecret)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
		require.NotNil(t, claims.FacilityID)
		assert.Equal(t, 1, *claims.FacilityID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, new(MockFacilityService), testSecret)

		repo.On("FindByEmail", mock.Anything, "admin@ironworks.test").Return(admin, nil)

		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "admin@ironworks.test",
			Password: "wrong",
		})

		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("Unknown email yields the same error as wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, new(MockFacilityService), testSecret)

		repo.On("FindByEmail", mock.Anything, "ghost@test.com").Return(nil, errors.New("sql: no rows in result set"))

		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "ghost@test.com",
			Password: "password123",
		})

		assert.Equal(t, ErrInvalidCredentials, err)
	})
}

func TestRefreshToken(t *testing.T) {
	facilityID := 1
	u := &User{ID: 7, FacilityID: &facilityID, Email: "admin@ironworks.test", Role: auth.RoleAdmin}

	t.Run("Valid refresh token issues a new access token", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, new(MockFacilityService), testSecret)

		refresh, err := auth.GenerateRefreshToken(u.ID, u.Email, u.Role, u.FacilityID, testSecret)
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, 7).Return(u, nil)

		access, got, err := svc.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		assert.Equal(t, 7, got.ID)

		claims, err := auth.ValidateToken(access, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("Access token cannot be used as refresh token", func(t *testing.T) {
		svc := NewService(new(MockUserRepo), new(MockFacilityService), testSecret)

		access, err := auth.GenerateAccessToken(u.ID, u.Email, u.Role, u.FacilityID, testSecret)
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(context.Background(), access)
		assert.Equal(t, auth.ErrInvalidTokenType, err)
	})
}

func TestCreateStaff(t *testing.T) {
	req := CreateStaffRequest{
		Name:     "Trainer Tom",
		Email:    "tom@ironworks.test",
		Password: "password123",
	}

	t.Run("Staff quota rejection blocks creation", func(t *testing.T) {
		repo := new(MockUserRepo)
		facilitySvc := new(MockFacilityService)
		svc := NewService(repo, facilitySvc, testSecret)

		facilitySvc.On("CheckStaffQuota", mock.Anything, 1).
			Return(&facility.QuotaError{Kind: "staff", Limit: 1})

		_, err := svc.CreateStaff(context.Background(), 1, req)

		var qe *facility.QuotaError
		require.ErrorAs(t, err, &qe)
		assert.Equal(t, "staff", qe.Kind)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		facilitySvc := new(MockFacilityService)
		svc := NewService(repo, facilitySvc, testSecret)

		facilitySvc.On("CheckStaffQuota", mock.Anything, 1).Return(nil)
		repo.On("EmailExists", mock.Anything, "tom@ironworks.test").Return(true, nil)

		_, err := svc.CreateStaff(context.Background(), 1, req)
		assert.Equal(t, ErrEmailExists, err)
	})

	t.Run("New staff gets trainer role", func(t *testing.T) {
		repo := new(MockUserRepo)
		facilitySvc := new(MockFacilityService)
		svc := NewService(repo, facilitySvc, testSecret)

		facilitySvc.On("CheckStaffQuota", mock.Anything, 1).Return(nil)
		repo.On("EmailExists", mock.Anything, "tom@ironworks.test").Return(false, nil)
		repo.On("Create", mock.Anything, intPtr(1), "Trainer Tom", "tom@ironworks.test", mock.AnythingOfType("string"), auth.RoleTrainer).
			Return(&User{ID: 9, FacilityID: intPtr(1), Name: "Trainer Tom", Role: auth.RoleTrainer}, nil)

		got, err := svc.CreateStaff(context.Background(), 1, req)

		require.NoError(t, err)
		assert.Equal(t, auth.RoleTrainer, got.Role)
		repo.AssertExpectations(t)
	})
}

func TestDeleteStaff(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *MockUserRepo)
		wantErr   error
	}{
		{
			name: "Own trainer deleted",
			setupMock: func(repo *MockUserRepo) {
				repo.On("FindByID", mock.Anything, 9).Return(&User{ID: 9, FacilityID: intPtr(1), Role: auth.RoleTrainer}, nil)
				repo.On("Delete", mock.Anything, 9).Return(nil)
			},
		},
		{
			name: "Trainer of another facility is not found",
			setupMock: func(repo *MockUserRepo) {
				repo.On("FindByID", mock.Anything, 9).Return(&User{ID: 9, FacilityID: intPtr(2), Role: auth.RoleTrainer}, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "Admin account cannot be deleted through staff API",
			setupMock: func(repo *MockUserRepo) {
				repo.On("FindByID", mock.Anything, 9).Return(&User{ID: 9, FacilityID: intPtr(1), Role: auth.RoleAdmin}, nil)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepo)
			tt.setupMock(repo)
			svc := NewService(repo, new(MockFacilityService), testSecret)

			err := svc.DeleteStaff(context.Background(), 1, 9)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				repo.AssertNotCalled(t, "Delete", mock.Anything, 9)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
