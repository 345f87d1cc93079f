package password

import (
	"parking-app/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
)

// Cost is the bcrypt work factor for new hashes. Tests lower it.
var Cost = bcrypt.DefaultCost

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Verify returns ErrMismatch for a wrong password; any other error means the
// stored hash is unusable.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "verify password")
	}
}
