package queries

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

//go:generate mockgen -source=user.go -destination=../../mock/queriesmock/user.go -package=queriesmock

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	ListUsers(ctx context.Context) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*UserView, error)
	ListNonAdmin(ctx context.Context, db query.DBTX) ([]*UserView, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	var view *UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var findErr error
		view, findErr = q.readStore.FindByID(ctx, db, userID)
		return findErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ListUsers returns every non-admin account.
func (q *userQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	var views []*UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var listErr error
		views, listErr = q.readStore.ListNonAdmin(ctx, db)
		return listErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
