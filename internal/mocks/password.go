package mocks

import (
	"errors"

	"github.com/tasktrack/api/internal/service/auth"
)

// MockPasswordHasher is a stub for auth.PasswordHasher that "hashes" by
// prefixing, keeping handler tests independent of bcrypt's cost.
type MockPasswordHasher struct {
	// Err, when set, is returned from Hash.
	Err error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.Hash
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier is a stub for auth.PasswordVerifier paired with
// MockPasswordHasher, or forced to a fixed outcome via ShouldSucceed.
type MockPasswordVerifier struct {
	// ForceResult, when true, makes Compare ignore its inputs and use
	// ShouldSucceed.
	ForceResult   bool
	ShouldSucceed bool
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.Compare
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ForceResult {
		if m.ShouldSucceed {
			return nil
		}
		return errors.New("password mismatch")
	}
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}
