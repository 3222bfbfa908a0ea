package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserData(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     UserDataError
	}{
		{"valid input", "alice", "secret123", UserDataOK},
		{"empty name", "", "secret123", UsernameEmpty},
		{"whitespace name", "   ", "secret123", UsernameEmpty},
		{"short name", "al", "secret123", UsernameTooShort},
		{"name with space", "al ice", "secret123", UsernameInvalidChars},
		{"short password", "alice", "12345", PasswordTooShort},
		{"empty password hits length rule", "alice", "", PasswordTooShort},
		{"password with space", "alice", "secret 123", PasswordInvalidChars},
		{"first rule wins", "", "", UsernameEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateUserData(tt.username, tt.password))
		})
	}
}

func TestUserDataError_Codes(t *testing.T) {
	// Numeric codes are the wire contract with legacy clients.
	assert.Equal(t, 0, int(UserDataOK))
	assert.Equal(t, 1, int(UsernameEmpty))
	assert.Equal(t, 2, int(UsernameTooShort))
	assert.Equal(t, 3, int(UsernameInvalidChars))
	assert.Equal(t, 4, int(PasswordEmpty))
	assert.Equal(t, 5, int(PasswordTooShort))
	assert.Equal(t, 6, int(PasswordInvalidChars))
}

func TestUserDataError_String(t *testing.T) {
	assert.Equal(t, "NO_ERROR", UserDataOK.String())
	assert.Equal(t, "PASSWORD_TOO_SHORT", PasswordTooShort.String())
	assert.Equal(t, "UNKNOWN", UserDataError(42).String())
}
