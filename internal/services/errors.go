package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP statuses; anything else is treated as an internal error.
var (
	ErrNotFound          = errors.New("record not found")
	ErrNotAuthorized     = errors.New("staff is not authorized for this action")
	ErrInvalidState      = errors.New("order is not in a state that allows this action")
	ErrInvalidTarget     = errors.New("target staff cannot receive this order")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrAlreadyResolved   = errors.New("payment request already resolved")
	ErrUnknownBucket     = errors.New("unknown wallet bucket")
	ErrDuplicate         = errors.New("record already exists")
)
