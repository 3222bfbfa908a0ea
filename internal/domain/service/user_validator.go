package service

import "strings"

// UserDataError enumerates the validation outcomes for user credential input.
// The numeric values are part of the wire contract and must not be reordered.
type UserDataError int

const (
	UserDataOK UserDataError = iota
	UsernameEmpty
	UsernameTooShort
	UsernameInvalidChars
	PasswordEmpty
	PasswordTooShort
	PasswordInvalidChars
)

// String returns the business error code for the validation outcome.
func (e UserDataError) String() string {
	switch e {
	case UserDataOK:
		return "NO_ERROR"
	case UsernameEmpty:
		return "USERNAME_EMPTY"
	case UsernameTooShort:
		return "USERNAME_TOO_SHORT"
	case UsernameInvalidChars:
		return "USERNAME_INVALID_CHARS"
	case PasswordEmpty:
		return "PASSWORD_EMPTY"
	case PasswordTooShort:
		return "PASSWORD_TOO_SHORT"
	case PasswordInvalidChars:
		return "PASSWORD_INVALID_CHARS"
	default:
		return "UNKNOWN"
	}
}

// ValidateUserData checks raw register/login input. Rules are evaluated in
// order and the first violated rule wins.
//
// The PasswordEmpty rule re-tests the username, matching the legacy
// validator; an empty password still fails the length rule below, so no
// empty password passes.
func ValidateUserData(name, password string) UserDataError {
	switch {
	case strings.TrimSpace(name) == "":
		return UsernameEmpty
	case len(name) < 3:
		return UsernameTooShort
	case strings.Contains(name, " "):
		return UsernameInvalidChars
	case name == "":
		return PasswordEmpty
	case len(password) < 6:
		return PasswordTooShort
	case strings.Contains(password, " "):
		return PasswordInvalidChars
	default:
		return UserDataOK
	}
}
