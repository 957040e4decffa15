// Package keyring provides access to the system keychain for storing portfolio preferences.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "hanaburkart-portfolio"

// ErrNotFound is returned when no entry exists for a key.
var ErrNotFound = keyring.ErrNotFound

// Get retrieves a value from the system keychain.
func Get(key string) (string, error) {
	value, err := keyring.Get(serviceName, key)
	if err != nil {
		return "", fmt.Errorf("failed to get %s from keychain: %w", key, err)
	}

	return value, nil
}

// Set stores a value in the system keychain.
func Set(key, value string) error {
	if err := keyring.Set(serviceName, key, value); err != nil {
		return fmt.Errorf("failed to set %s in keychain: %w", key, err)
	}

	return nil
}

// Delete removes a value from the system keychain. Deleting an absent key is not an error.
func Delete(key string) error {
	err := keyring.Delete(serviceName, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete %s from keychain: %w", key, err)
	}

	return nil
}
