// Package tokenstore holds OAuth refresh tokens for the calendar sync
// collaborator in the OS keychain. Acquiring the token in the first place
// is an explicit Non-goal of this repository; this package
// only stores and retrieves whatever token the (unimplemented) OAuth flow
// hands it.
package tokenstore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "daywise"

var (
	// ErrNotFound is returned when no refresh token is stored for account.
	ErrNotFound = errors.New("calendar refresh token not found")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Get retrieves the stored OAuth refresh token for account (typically the
// calendar account's email address).
func Get(account string) (string, error) {
	token, err := keyring.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// Set stores token as the refresh token for account, overwriting any
// existing value.
func Set(account, token string) error {
	if token == "" {
		return errors.New("refresh token cannot be empty")
	}
	if err := keyring.Set(service, account, token); err != nil {
		return fmt.Errorf("storing calendar refresh token: %w", err)
	}
	return nil
}

// Delete removes the stored refresh token for account, e.g. when the user
// disconnects the calendar.
func Delete(account string) error {
	if err := keyring.Delete(service, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting calendar refresh token: %w", err)
	}
	return nil
}

// Available is a best-effort check of whether the OS keyring backend can
// be reached at all, used by the CLI to decide whether to offer the
// calendar-connect flow.
func Available() bool {
	_, err := keyring.Get(service, "__daywise_availability_probe__")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
