package auctionerrors

import "errors"

// Registration and lookup errors
var (
	ErrItemNotFound = errors.New("item not registered in auction")
	ErrUserNotFound = errors.New("user not registered in auction")
	ErrNameTaken    = errors.New("name already in use")
)

// Bidding and settlement errors
var (
	ErrItemUnavailable   = errors.New("item unavailable")
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoBids            = errors.New("no bids placed on item")
)
