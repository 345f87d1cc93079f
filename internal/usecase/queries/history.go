package queries

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=history.go -destination=../../mock/queriesmock/history.go -package=queriesmock

type HistoryQueries interface {
	// ListByUser returns billing rows, most recently released first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BillingView, error)
}

type HistoryReadStore interface {
	ListByUser(ctx context.Context, db query.DBTX, userID uuid.UUID, limit int) ([]*BillingView, error)
}

type historyQueriesImpl struct {
	uow          shared.UnitOfWork
	users        UserReadStore
	historyStore HistoryReadStore
}

func NewHistoryQueries(uow shared.UnitOfWork, users UserReadStore, historyStore HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{
		uow:          uow,
		users:        users,
		historyStore: historyStore,
	}
}

func (q *historyQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BillingView, error) {
	var views []*BillingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		if _, err := q.users.FindByID(ctx, db, userID); err != nil {
			return err
		}
		var listErr error
		views, listErr = q.historyStore.ListByUser(ctx, db, userID, 0)
		return listErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
