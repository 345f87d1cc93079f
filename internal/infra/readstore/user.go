package readstore

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error)
	ListNonAdminUsers(ctx context.Context, db query.DBTX) ([]query.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row)
}

func (r *UserReadStore) ListNonAdmin(ctx context.Context, db query.DBTX) ([]*queries.UserView, error) {
	rows, err := r.queries.ListNonAdminUsers(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		v, err := toUserView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// toUserView copies by field name; PasswordHash has no counterpart.
func toUserView(row query.Users) (*queries.UserView, error) {
	var v queries.UserView
	if err := copier.Copy(&v, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map user row", err, infra.KindDBFailure)
	}
	return &v, nil
}
