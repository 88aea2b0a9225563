package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "bob",
			password: "pw1",
		},
		{
			name:     "empty username",
			username: "",
			password: "pw1",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "empty password",
			username: "bob",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
		{
			name:     "password beyond bcrypt limit",
			username: "bob",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username, "Bob", tt.password, "male", "Oslo")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	// A user loaded from the store has no plaintext password.
	stored := &User{
		ID:             1,
		Username:       "bob",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, stored.Validate())

	stored.HashedPassword = ""
	assert.ErrorIs(t, stored.Validate(), ErrEmptyPassword)
}
