package commands

import "parking-app/internal/pkg/errs"

var (
	// Allocation and billing
	ErrLotNotFound         = errs.New("lot not found")
	ErrNoAvailableSpot     = errs.New("no available spot in lot")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationConflict = errs.New("reservation conflict")

	// Lot administration
	ErrInvalidLot  = errs.New("invalid lot")
	ErrLotOccupied = errs.New("lot has occupied spots")

	// Accounts
	ErrInvalidRegistration = errs.New("invalid registration")
	ErrInvalidProfile      = errs.New("invalid profile")
	ErrUsernameTaken       = errs.New("username already exists")
	ErrInvalidCredentials  = errs.New("invalid credentials")
	ErrUserNotFound        = errs.New("user not found")
	ErrTokenGeneration     = errs.New("token generation failed")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
