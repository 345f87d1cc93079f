package shared

import (
	"context"

	"parking-app/internal/domain/lot"
	"parking-app/internal/domain/reservation"
	"parking-app/internal/domain/user"
	"parking-app/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations, committed only when fn returns nil
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Lots() LotRepository
	Spots() SpotRepository
	Reservations() ReservationRepository
	Ledger() LedgerRepository
	DB() query.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, tx query.DBTX, u *user.User) (uuid.UUID, error)
	// CreateIfAbsent is a no-op returning false when the username exists.
	CreateIfAbsent(ctx context.Context, tx query.DBTX, u *user.User) (bool, error)
	FindByID(ctx context.Context, tx query.DBTX, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, tx query.DBTX, username string) (*user.User, error)
	Update(ctx context.Context, tx query.DBTX, u *user.User) error
}

type LotRepository interface {
	Create(ctx context.Context, tx query.DBTX, l *lot.Lot) (uuid.UUID, error)
	// FindForShare holds a share lock so the lot cannot be deleted mid-booking.
	FindForShare(ctx context.Context, tx query.DBTX, id uuid.UUID) (*LotSnapshot, error)
	LockForUpdate(ctx context.Context, tx query.DBTX, id uuid.UUID) (*LotSnapshot, error)
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
}

type SpotRepository interface {
	CreateForLot(ctx context.Context, tx query.DBTX, lotID uuid.UUID, count int) (int64, error)
	PickAvailable(ctx context.Context, tx query.DBTX, lotID uuid.UUID) (*SpotSnapshot, error)
	Occupy(ctx context.Context, tx query.DBTX, spotID uuid.UUID) error
	Free(ctx context.Context, tx query.DBTX, spotID uuid.UUID) error
	CountOccupied(ctx context.Context, tx query.DBTX, lotID uuid.UUID) (int64, error)
	DeleteByLot(ctx context.Context, tx query.DBTX, lotID uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	LockOpen(ctx context.Context, tx query.DBTX, id, userID uuid.UUID) (*OpenReservation, error)
	Close(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error
}

type LedgerRepository interface {
	AppendBooking(ctx context.Context, tx query.DBTX, res *reservation.Reservation) error
	AppendBilling(ctx context.Context, tx query.DBTX, entry BillingEntry) error
}
