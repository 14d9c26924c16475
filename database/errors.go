package database

import (
	"errors"
	"fmt"
)

// ErrStorage is the single failure kind reported by this package.
// Every engine error is wrapped with it; the cause stays in the chain.
var ErrStorage = errors.New("storage operation failed")

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
