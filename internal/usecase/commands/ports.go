package commands

import (
	"context"

	"parking-app/internal/domain/reservation"
	"parking-app/internal/domain/user"

	"github.com/google/uuid"
)

// EventPublisher delivers reservation events after commit. Failures are
// logged by the caller and never undo the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, ev reservation.Event) error
}

// StatsInvalidator drops cached dashboard stats. uuid.Nil only clears the
// admin view.
type StatsInvalidator interface {
	InvalidateStats(ctx context.Context, userID uuid.UUID)
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}
