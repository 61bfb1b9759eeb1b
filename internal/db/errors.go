package db

import (
	"errors"
	"fmt"
)

// ErrReferenceTaken signals a collision on the unique reference index. The
// order service reacts by drawing a fresh reference and retrying.
var ErrReferenceTaken = errors.New("order reference already taken")

type AccountExistsError struct {
	Email string
}

func (e *AccountExistsError) Error() string {
	return fmt.Sprintf("Account %s exists", e.Email)
}

type AccountNotFoundError struct {
	Email string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("Account %s not found", e.Email)
}

type OrderNotFoundError struct {
	ID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %s not found", e.ID)
}
