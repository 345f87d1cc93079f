package queries

import (
	"context"

	"parking-app/internal/infra/query"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/shared"
)

//go:generate mockgen -source=lot.go -destination=../../mock/queriesmock/lot.go -package=queriesmock

type LotQueries interface {
	ListLots(ctx context.Context) ([]*LotView, error)
}

type LotReadStore interface {
	ListWithAvailability(ctx context.Context, db query.DBTX) ([]*LotView, error)
}

type lotQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore LotReadStore
}

func NewLotQueries(uow shared.UnitOfWork, readStore LotReadStore) LotQueries {
	return &lotQueriesImpl{uow: uow, readStore: readStore}
}

func (q *lotQueriesImpl) ListLots(ctx context.Context) ([]*LotView, error) {
	var views []*LotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var listErr error
		views, listErr = q.readStore.ListWithAvailability(ctx, db)
		return listErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
