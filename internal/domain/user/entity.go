package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account; the role is fixed when the account is created.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
	profile      Profile
	createdAt    time.Time
}

func NewUser(username Username, passwordHash string, role Role, profile Profile) *User {
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		profile:      profile,
	}
}

func ReconstructUser(id uuid.UUID, username Username, passwordHash string, role Role, profile Profile, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		profile:      profile,
		createdAt:    createdAt,
	}
}

// Rename and UpdateProfile leave the role and password untouched.
func (u *User) Rename(username Username) { u.username = username }

func (u *User) UpdateProfile(p Profile) { u.profile = p }

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Profile() Profile     { return u.profile }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }
