//go:build unit

package uow

import (
	"testing"
	"time"

	"parking-app/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, true},
		{"wrapped deadlock", errs.Wrap(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}, "commit"), true},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, false},
		{"plain error", assert.AnError, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry_ZeroRetries(t *testing.T) {
	err := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	assert.False(t, shouldRetry(err, 0, 0))
	assert.True(t, shouldRetry(err, 0, 1))
	assert.False(t, shouldRetry(err, 1, 1))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		got := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+1)
	}
}
