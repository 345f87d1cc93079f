package repository

import (
	"context"

	"parking-app/internal/domain/user"
	"parking-app/internal/infra"
	"parking-app/internal/infra/query"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (uuid.UUID, error)
	CreateUserIfAbsent(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (bool, error)
	FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error)
	FindUserByUsername(ctx context.Context, db query.DBTX, username string) (query.Users, error)
	UpdateUserProfile(ctx context.Context, db query.DBTX, arg query.UpdateUserProfileParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx query.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, toCreateUserParams(u))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) CreateIfAbsent(ctx context.Context, tx query.DBTX, u *user.User) (bool, error) {
	created, err := r.queries.CreateUserIfAbsent(ctx, tx, toCreateUserParams(u))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create user", err)
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toDomainUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, tx query.DBTX, username string) (*user.User, error) {
	row, err := r.queries.FindUserByUsername(ctx, tx, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return toDomainUser(row)
}

func (r *UserRepository) Update(ctx context.Context, tx query.DBTX, u *user.User) error {
	p := u.Profile()
	affected, err := r.queries.UpdateUserProfile(ctx, tx, query.UpdateUserProfileParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		Email:        p.Email(),
		Mobile:       p.Mobile(),
		VehicleRegNo: p.VehicleRegNo(),
		Address:      p.Address(),
		Pincode:      p.Pincode(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func toCreateUserParams(u *user.User) query.CreateUserParams {
	p := u.Profile()
	return query.CreateUserParams{
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
		Email:        p.Email(),
		Mobile:       p.Mobile(),
		VehicleRegNo: p.VehicleRegNo(),
		Address:      p.Address(),
		Pincode:      p.Pincode(),
		Role:         u.Role().String(),
	}
}

func toDomainUser(row query.Users) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, infra.WrapRepoErr("stored username is invalid", err, infra.KindDBFailure)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err, infra.KindDBFailure)
	}

	profile := user.ReconstructProfile(row.Email, row.Mobile, row.VehicleRegNo, row.Address, row.Pincode)
	return user.ReconstructUser(row.ID, username, row.PasswordHash, role, profile, row.CreatedAt), nil
}
