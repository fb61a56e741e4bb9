package paynow

import "errors"

var (
	// -- Construction --
	ErrEmptyIntegrationID  = errors.New("integration id cannot be empty")
	ErrEmptyIntegrationKey = errors.New("integration key cannot be empty")

	// -- Validation & Input --
	ErrEmptyItemName    = errors.New("line item name cannot be empty")
	ErrNegativeAmount   = errors.New("line item amount cannot be negative")
	ErrInvalidQuantity  = errors.New("line item quantity must be positive")
	ErrNotItemized      = errors.New("cannot add items to a direct payment")
	ErrAuthEmailInvalid = errors.New("auth email is required for mobile transactions")

	// -- Submission preconditions --
	ErrInvalidReference = errors.New("merchant reference cannot be empty")
	ErrEmptyCart        = errors.New("payment total must be greater than zero")

	// -- Gateway & transport outcomes --
	ErrConnection   = errors.New("failed to reach gateway")
	ErrHashMismatch = errors.New("response hash missing or invalid")
)
