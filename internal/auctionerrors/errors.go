package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrNotFound    = errors.New("entity not found")
	ErrNoBids      = errors.New("no bids found for product")
	ErrPersistence = errors.New("persistence failure")
)

// Admission errors. Each one maps to a single rejection reason so callers
// and tests can assert on why, not just whether, an operation was refused.
var (
	ErrNullInput          = errors.New("null input")
	ErrValidation         = errors.New("invalid input")
	ErrDuplicate          = errors.New("entity already exists")
	ErrLimitExceeded      = errors.New("limit exceeded")
	ErrSimilarDescription = errors.New("description too similar to an existing product")
	ErrOutsideTimeWindow  = errors.New("outside the auction time window")
	ErrSelfBid            = errors.New("seller cannot bid on own auction")
	ErrCurrencyMismatch   = errors.New("bid currency does not match auction currency")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrRoleMismatch       = errors.New("rating outside the seller-winner pair")
)
