package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a record is not found or owned by
	// someone else
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when an amount string cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidContractType is returned when a contract type is not
	// graphic or merch
	ErrInvalidContractType = errors.New("invalid contract type")

	// ErrPaymentEntryNotFound is returned when a receipt references a
	// payment entry the invoice does not carry
	ErrPaymentEntryNotFound = errors.New("payment entry not found")

	// ErrUnauthorized is returned when user is not authenticated
	ErrUnauthorized = errors.New("unauthorized")
)
