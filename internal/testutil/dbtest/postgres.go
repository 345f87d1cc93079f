//go:build integration

// Package dbtest starts one PostgreSQL container per test binary and hands
// each caller a fresh, migrated database inside it.
package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"parking-app/internal/infra/db"
	"parking-app/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	pgPort       = nat.Port("5432/tcp")
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

var migrationFiles = []string{
	"migrations/001_initial_schema.sql",
}

// NewPool returns a pool on a freshly created and migrated database. The
// database is dropped when the test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	host, port := startContainer(t)
	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port.Port())
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	cfg := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
	pool, _, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")

	t.Cleanup(func() {
		pool.Close()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for test database cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()
		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	require.NoError(t, applyMigrations(ctx, pool), "migration failed")
	return pool
}

func startContainer(t *testing.T) (string, nat.Port) {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{
					"/var/lib/postgresql/data": "rw,size=256m",
				},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
						testUser, testPassword, host, port.Port())
				}).WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "failed to start PostgreSQL container")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return host, port
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, file := range migrationFiles {
		content, err := readFromRepoRoot(file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// readFromRepoRoot walks up from the package directory `go test` runs in.
func readFromRepoRoot(file string) ([]byte, error) {
	path := file
	for range 6 {
		content, err := os.ReadFile(path)
		if err == nil {
			return content, nil
		}
		path = filepath.Join("..", path)
	}
	return nil, fmt.Errorf("migration file %s not found", file)
}
