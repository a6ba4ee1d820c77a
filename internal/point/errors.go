package point

import "errors"

// All three are caller errors: the request was rejected before any store
// mutation, so there is nothing to roll back.
var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBalanceLimitExceeded = errors.New("balance limit exceeded")
)
