package repository

import (
	"context"

	"parking-app/internal/domain/reservation"
	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/shared"
)

type LedgerWriteQueries interface {
	CreateBookingAudit(ctx context.Context, db query.DBTX, arg query.CreateBookingAuditParams) error
	CreateBillingEntry(ctx context.Context, db query.DBTX, arg query.CreateBillingEntryParams) error
}

// LedgerRepository appends to the booking audit and billing history tables.
// Both are append-only and outlive the lots they reference.
type LedgerRepository struct {
	queries LedgerWriteQueries
}

func NewLedgerRepository(queries LedgerWriteQueries) *LedgerRepository {
	return &LedgerRepository{queries: queries}
}

func (r *LedgerRepository) AppendBooking(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error {
	err := r.queries.CreateBookingAudit(ctx, tx, query.CreateBookingAuditParams{
		UserID:   res.UserID(),
		LotID:    res.LotID(),
		SpotID:   res.SpotID(),
		BookedOn: res.StartTime(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append booking audit", err)
	}
	return nil
}

func (r *LedgerRepository) AppendBilling(ctx context.Context, tx query.DBTX, entry shared.BillingEntry) error {
	res := entry.Reservation
	err := r.queries.CreateBillingEntry(ctx, tx, query.CreateBillingEntryParams{
		UserID:          res.UserID(),
		LotID:           res.LotID(),
		LotName:         entry.LotName,
		SpotID:          res.SpotID(),
		BookedTime:      entry.Bill.Start,
		ReleasedTime:    entry.Bill.End,
		DurationHours:   entry.Bill.DurationHours,
		AmountPaidCents: entry.Bill.Amount.Cents(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append billing entry", err)
	}
	return nil
}
