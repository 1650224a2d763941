package change

import "errors"

var (
	// ErrInvalidTarget is returned when the requested amount is negative.
	ErrInvalidTarget = errors.New("target amount must be a non-negative integer")
	// ErrInvalidDenominations is returned when the denomination set is empty or contains non-positive values.
	ErrInvalidDenominations = errors.New("denominations must be a non-empty set of positive integers")
	// ErrNoExactChange is returned when no combination of denominations sums exactly to the target.
	ErrNoExactChange = errors.New("cannot make exact change for the target with the provided denominations")
)
