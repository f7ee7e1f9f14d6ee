package errors

import (
	"fmt"
)

var (
	ErrNotFound      = fmt.Errorf("not found")
	ErrDuplicateName = fmt.Errorf("duplicate name")
	ErrInvalidInput  = fmt.Errorf("invalid input")
	// ErrInsufficientStock is returned when a withdrawal would drive stock below zero.
	ErrInsufficientStock = fmt.Errorf("insufficient stock")
)
