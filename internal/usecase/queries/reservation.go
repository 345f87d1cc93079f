package queries

import (
	"context"

	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

//go:generate mockgen -source=reservation.go -destination=../../mock/queriesmock/reservation.go -package=queriesmock

type ReservationQueries interface {
	// ListByUser returns the user's reservations, open and closed, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*ReservationView, error)
}

type ReservationReadStore interface {
	ListByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]*ReservationView, error)
	FindByID(ctx context.Context, db query.DBTX, id, userID uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore ReservationReadStore
}

func NewReservationQueries(uow shared.UnitOfWork, readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, readStore: readStore}
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	var views []*ReservationView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var listErr error
		views, listErr = q.readStore.ListByUser(ctx, db, userID)
		return listErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

// GetByID only finds reservations owned by userID.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var findErr error
		view, findErr = q.readStore.FindByID(ctx, db, id, userID)
		return findErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
