package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountStatus is the closed set of states an account can be in. It drives
// access control decisions, so unknown input must fail instead of defaulting.
type AccountStatus string

const (
	StatusActive      AccountStatus = "active"
	StatusInactive    AccountStatus = "inactive"
	StatusSuspended   AccountStatus = "suspended"
	StatusDeactivated AccountStatus = "deactivated"
)

// ParseAccountStatus converts a raw string into an AccountStatus, rejecting
// anything outside the closed set.
func ParseAccountStatus(s string) (AccountStatus, error) {
	status := AccountStatus(strings.ToLower(s))
	switch status {
	case StatusActive, StatusInactive, StatusSuspended, StatusDeactivated:
		return status, nil
	}
	return "", fmt.Errorf("unknown account status %q", s)
}

func (s *AccountStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseAccountStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Gender is a closed enumeration. Unlike AccountStatus it has an explicit
// default: an absent value becomes GenderUnspecified.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOthers      Gender = "others"
	GenderUnspecified Gender = "unspecified"
)

// ParseGender converts a raw string into a Gender. The empty string maps to
// the unspecified default; any other unknown value is an error.
func ParseGender(s string) (Gender, error) {
	if s == "" {
		return GenderUnspecified, nil
	}
	gender := Gender(strings.ToLower(s))
	switch gender {
	case GenderMale, GenderFemale, GenderOthers, GenderUnspecified:
		return gender, nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseGender(raw)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// User is the stored representation of an account. The identity is generated
// server-side at creation; the password hash and the one-time-passcode
// reference never leave the process.
type User struct {
	ID              uuid.UUID     `json:"id"`
	Firstname       string        `json:"firstname"`
	Lastname        string        `json:"lastname"`
	Middlename      string        `json:"middlename"`
	Fullname        string        `json:"fullname"`
	Username        string        `json:"username"`
	Email           string        `json:"email"`
	AccountStatus   AccountStatus `json:"accountStatus,omitempty"`
	DateOfBirth     *time.Time    `json:"dateOfBirth,omitempty"`
	Gender          Gender        `json:"gender"`
	Avatar          string        `json:"avatar,omitempty"`
	PhoneNumber     string        `json:"phoneNumber,omitempty"`
	PasswordHash    string        `json:"-"`
	CreatedAt       *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time    `json:"updatedAt,omitempty"`
	OTPID           *uuid.UUID    `json:"-"`
	LastAvailableAt *time.Time    `json:"lastAvailableAt,omitempty"`
}

// UserAttributes is the caller-supplied payload for creating a user. Optional
// fields are pointers so absence is distinguishable from an empty value; the
// cleartext password exists only until it is hashed.
type UserAttributes struct {
	Firstname   *string    `json:"firstname"   validate:"required,min=1"`
	Lastname    *string    `json:"lastname"    validate:"required,min=1"`
	Middlename  *string    `json:"middlename"  validate:"required,min=1"`
	Fullname    *string    `json:"fullname"    validate:"required,min=1"`
	Username    *string    `json:"username"    validate:"required,min=1"`
	Email       *string    `json:"email"       validate:"required,email"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Gender      *Gender    `json:"gender"`
	Avatar      *string    `json:"avatar"      validate:"omitempty,url"`
	PhoneNumber *string    `json:"phoneNumber" validate:"omitempty,e164"`
	Password    *string    `json:"password"    validate:"required,min=8"`
}

// AuthCredentials is the combined login/signup request shape. Fullname is
// optional so the same payload serves both flows.
type AuthCredentials struct {
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Fullname *string `json:"fullname"`
}

// ResetPassword carries a replacement password and its confirmation. Both are
// cleartext at this boundary and discarded after use.
type ResetPassword struct {
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// HashPassword produces a salted bcrypt hash of the trimmed cleartext.
//
// An empty secret is a contract violation: the validation layer guarantees
// presence before any caller can reach this, so it panics rather than
// returning a recoverable error. Overlong secrets (bcrypt caps input at 72
// bytes) are caller-fixable and come back as an error.
func HashPassword(cleartext string) (string, error) {
	trimmed := strings.TrimSpace(cleartext)
	if trimmed == "" {
		panic("domain: HashPassword called with an empty secret; validation must run first")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(trimmed), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether candidate matches the stored hash. Any
// internal failure, including a corrupt hash, counts as a mismatch rather
// than an error the caller has to branch on.
func (u *User) VerifyPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(candidate)) == nil
}
