package pettycash

import "errors"

// ErrMissingIdentity is returned when the acting company or user is not known.
var ErrMissingIdentity = errors.New("missing company or user identity")

// ErrInvalidAmount is returned when an expense amount is zero or negative.
var ErrInvalidAmount = errors.New("expense amount must be a positive number")

// ErrMissingItem is returned when an expense has no item description.
var ErrMissingItem = errors.New("expense item is required")

// ErrMissingRequestedBy is returned when an expense has no requester.
var ErrMissingRequestedBy = errors.New("expense requester is required")
