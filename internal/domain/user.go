package domain

import (
	"errors"
	"time"
)

// Common validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. The ID is generated by the store on
// insert; a zero ID marks a user that has not been persisted yet.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext, held only between decode and hashing
	HashedPassword string    `json:"-"` // Never exposed in JSON
	Gender         string    `json:"gender"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given registration fields.
// The caller is responsible for hashing the password before storing the user.
// Returns an error if validation fails.
func NewUser(username, name, password, gender, location string) (*User, error) {
	user := &User{
		Username:  username,
		Name:      name,
		Password:  password,
		Gender:    gender,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Password != "" {
		// bcrypt silently truncates input beyond 72 bytes; reject instead.
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else {
		// Users loaded from the store carry no plaintext password, so a
		// hashed one must be present.
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}
