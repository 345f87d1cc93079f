package query

import (
	"context"

	"github.com/google/uuid"
)

const userColumns = `id, username, password_hash, email, mobile, vehicle_reg_no, address, pincode, role, created_at, updated_at`

type CreateUserParams struct {
	Username     string
	PasswordHash string
	Email        string
	Mobile       string
	VehicleRegNo string
	Address      string
	Pincode      string
	Role         string
}

const createUser = `
INSERT INTO users (username, password_hash, email, mobile, vehicle_reg_no, address, pincode, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createUser,
		arg.Username,
		arg.PasswordHash,
		arg.Email,
		arg.Mobile,
		arg.VehicleRegNo,
		arg.Address,
		arg.Pincode,
		arg.Role,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const createUserIfAbsent = `
INSERT INTO users (username, password_hash, email, mobile, vehicle_reg_no, address, pincode, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (username) DO NOTHING`

// CreateUserIfAbsent reports whether a row was inserted.
func (q *Queries) CreateUserIfAbsent(ctx context.Context, db DBTX, arg CreateUserParams) (bool, error) {
	tag, err := db.Exec(ctx, createUserIfAbsent,
		arg.Username,
		arg.PasswordHash,
		arg.Email,
		arg.Mobile,
		arg.VehicleRegNo,
		arg.Address,
		arg.Pincode,
		arg.Role,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

func (q *Queries) FindUserByUsername(ctx context.Context, db DBTX, username string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByUsername, username))
}

const listNonAdminUsers = `SELECT ` + userColumns + ` FROM users WHERE role <> 'admin' ORDER BY created_at, username`

func (q *Queries) ListNonAdminUsers(ctx context.Context, db DBTX) ([]Users, error) {
	rows, err := db.Query(ctx, listNonAdminUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Users
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countNonAdminUsers = `SELECT count(*) FROM users WHERE role <> 'admin'`

func (q *Queries) CountNonAdminUsers(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countNonAdminUsers).Scan(&n)
	return n, err
}

type UpdateUserProfileParams struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Mobile       string
	VehicleRegNo string
	Address      string
	Pincode      string
}

const updateUserProfile = `
UPDATE users
SET username = $2, email = $3, mobile = $4, vehicle_reg_no = $5, address = $6, pincode = $7, updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserProfile,
		arg.ID,
		arg.Username,
		arg.Email,
		arg.Mobile,
		arg.VehicleRegNo,
		arg.Address,
		arg.Pincode,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.PasswordHash,
		&i.Email,
		&i.Mobile,
		&i.VehicleRegNo,
		&i.Address,
		&i.Pincode,
		&i.Role,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
