//go:build integration

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixture accounts never log in; any bcrypt hash will do.
const fixturePasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateUser(t *testing.T, pool *pgxpool.Pool, username, role string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, password_hash, email, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		username, fixturePasswordHash, username+"@example.com", role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, pool.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}
