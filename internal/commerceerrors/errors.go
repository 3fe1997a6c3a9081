package commerceerrors

import "errors"

// Store-level errors
var (
	ErrNotFound   = errors.New("record not found")
	ErrStaleState = errors.New("state changed concurrently")
)

// Business rule errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrPreconditionFailed = errors.New("operation precondition failed")
	ErrAuctionInProgress  = errors.New("another auction is in progress")
	ErrAlreadySettled     = errors.New("auction already settled")
	ErrAlreadyAccepted    = errors.New("offer already accepted")
)
