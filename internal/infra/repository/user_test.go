//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"parking-app/internal/domain/user"
	"parking-app/internal/infra"
	"parking-app/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserWriteQueries) CreateUserIfAbsent(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserWriteQueries) FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Users), args.Error(1)
}

func (m *MockUserWriteQueries) FindUserByUsername(ctx context.Context, db query.DBTX, username string) (query.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(query.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserProfile(ctx context.Context, db query.DBTX, arg query.UpdateUserProfileParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	username, err := user.NewUsername("alice")
	require.NoError(t, err)
	profile, err := user.NewProfile("alice@example.com", "9876543210", "KA01AB1234", "1 Main St", "560001")
	require.NoError(t, err)
	return user.NewUser(username, "hash", user.RoleUser, profile)
}

func TestUserRepository_Create(t *testing.T) {
	newID := uuid.New()

	tests := []struct {
		name     string
		mockID   uuid.UUID
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", mockID: newID},
		{
			name:     "duplicate username",
			mockID:   uuid.Nil,
			mockErr:  &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "database error",
			mockID:   uuid.Nil,
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(mockDB)
			mockQueries := new(MockUserWriteQueries)
			u := newTestUser(t)

			mockQueries.On("CreateUser", mock.Anything, db, query.CreateUserParams{
				Username:     "alice",
				PasswordHash: "hash",
				Email:        "alice@example.com",
				Mobile:       "9876543210",
				VehicleRegNo: "KA01AB1234",
				Address:      "1 Main St",
				Pincode:      "560001",
				Role:         "user",
			}).Return(tt.mockID, tt.mockErr)

			repo := NewUserRepository(mockQueries)
			id, err := repo.Create(context.Background(), db, u)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, newID, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("maps row to domain user", func(t *testing.T) {
		db := new(mockDB)
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("FindUserByUsername", mock.Anything, db, "alice").Return(query.Users{
			ID:           id,
			Username:     "alice",
			PasswordHash: "hash",
			Email:        "alice@example.com",
			Role:         "admin",
			CreatedAt:    createdAt,
		}, nil)

		got, err := NewUserRepository(mockQueries).FindByUsername(context.Background(), db, "alice")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, "alice", got.Username().Value())
		assert.True(t, got.IsAdmin())
		assert.Equal(t, "alice@example.com", got.Profile().Email())
		assert.Equal(t, createdAt, got.CreatedAt())
	})

	t.Run("missing user is NOT_FOUND", func(t *testing.T) {
		db := new(mockDB)
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("FindUserByUsername", mock.Anything, db, "ghost").Return(query.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries).FindByUsername(context.Background(), db, "ghost")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt role is DB_FAILURE", func(t *testing.T) {
		db := new(mockDB)
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("FindUserByUsername", mock.Anything, db, "alice").Return(query.Users{
			ID: id, Username: "alice", Role: "root",
		}, nil)

		_, err := NewUserRepository(mockQueries).FindByUsername(context.Background(), db, "alice")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "no row", affected: 0, wantKind: infra.KindNotFound},
		{
			name:     "username taken",
			mockErr:  &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantKind: infra.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(mockDB)
			mockQueries := new(MockUserWriteQueries)
			u := newTestUser(t)
			mockQueries.On("UpdateUserProfile", mock.Anything, db, mock.AnythingOfType("query.UpdateUserProfileParams")).
				Return(tt.affected, tt.mockErr)

			err := NewUserRepository(mockQueries).Update(context.Background(), db, u)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
