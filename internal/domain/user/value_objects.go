package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUsername     = errors.New("username must be 3-50 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidRole         = errors.New("invalid role")
	ErrPasswordTooWeak     = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrInvalidMobile       = errors.New("mobile must be 10 to 15 digits")
	ErrInvalidVehicleRegNo = errors.New("invalid vehicle registration number")
	ErrInvalidPincode      = errors.New("pincode must be 6 digits")
)

var (
	usernameRegex   = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,50}$`)
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobileRegex     = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	vehicleRegRegex = regexp.MustCompile(`^[A-Z]{2}[ -]?[0-9]{1,2}[ -]?[A-Z]{0,3}[ -]?[0-9]{1,4}$`)
	pincodeRegex    = regexp.MustCompile(`^[0-9]{6}$`)
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > 72 {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

// NewConfirmedPassword checks the confirmation before the strength rule.
func NewConfirmedPassword(s, confirmation string) (Password, error) {
	if s != confirmation {
		return Password{}, ErrPasswordMismatch
	}
	return NewPassword(s)
}

func (p Password) Value() string {
	return p.value
}

// Profile holds the contact and vehicle details. Everything except the
// email may be blank.
type Profile struct {
	email        string
	mobile       string
	vehicleRegNo string
	address      string
	pincode      string
}

func NewProfile(email, mobile, vehicleRegNo, address, pincode string) (Profile, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Profile{}, err
	}

	mobile = strings.TrimSpace(mobile)
	if mobile != "" && !mobileRegex.MatchString(mobile) {
		return Profile{}, ErrInvalidMobile
	}

	vehicleRegNo = strings.ToUpper(strings.TrimSpace(vehicleRegNo))
	if vehicleRegNo != "" && !IsVehicleRegNo(vehicleRegNo) {
		return Profile{}, ErrInvalidVehicleRegNo
	}

	pincode = strings.TrimSpace(pincode)
	if pincode != "" && !IsPincode(pincode) {
		return Profile{}, ErrInvalidPincode
	}

	return Profile{
		email:        e.Value(),
		mobile:       mobile,
		vehicleRegNo: vehicleRegNo,
		address:      strings.TrimSpace(address),
		pincode:      pincode,
	}, nil
}

// ReconstructProfile skips validation for rows already stored.
func ReconstructProfile(email, mobile, vehicleRegNo, address, pincode string) Profile {
	return Profile{
		email:        email,
		mobile:       mobile,
		vehicleRegNo: vehicleRegNo,
		address:      address,
		pincode:      pincode,
	}
}

func (p Profile) Email() string        { return p.email }
func (p Profile) Mobile() string       { return p.mobile }
func (p Profile) VehicleRegNo() string { return p.vehicleRegNo }
func (p Profile) Address() string      { return p.address }
func (p Profile) Pincode() string      { return p.pincode }

func IsVehicleRegNo(s string) bool {
	return vehicleRegRegex.MatchString(strings.ToUpper(s))
}

func IsPincode(s string) bool {
	return pincodeRegex.MatchString(s)
}

// Registration is a validated sign-up form, ready for hashing and storage.
type Registration struct {
	Username Username
	Password Password
	Profile  Profile
}

func NewRegistration(username, password, confirmation string, profile Profile) (Registration, error) {
	name, err := NewUsername(username)
	if err != nil {
		return Registration{}, err
	}
	pw, err := NewConfirmedPassword(password, confirmation)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Username: name, Password: pw, Profile: profile}, nil
}
