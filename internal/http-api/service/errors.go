package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("already exists")
	ErrInUse              = errors.New("still referenced")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrRentalUnavailable  = errors.New("member cannot rent more books")
	ErrBookUnavailable    = errors.New("book is not available")
	ErrAlreadyReturned    = errors.New("rental already returned")
	ErrAlreadyResolved    = errors.New("request already resolved")
)

// translate maps storage errors onto the service sentinels, naming what was looked up.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", what, ErrInUse)
	default:
		return err
	}
}
