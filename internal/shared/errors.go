// Package shared defines sentinel errors and small helpers used across
// MatchVault components. Callers should use errors.Is to match these values.
package shared

import "errors"

var (

	// lookup errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// authorization errors
	ErrorNotAuthorized = errors.New("not authorized")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorInvalidToken  = errors.New("invalid token")

	// state-machine errors
	ErrorInvalidState    = errors.New("invalid state for transition")
	ErrorAlreadyRevealed = errors.New("already revealed")
	ErrorPaused          = errors.New("service is paused")

	// deadline errors
	ErrorExpired  = errors.New("deadline passed")
	ErrorTooEarly = errors.New("deadline not reached")

	// fund errors
	ErrorInsufficientFee   = errors.New("insufficient fee")
	ErrorNothingToWithdraw = errors.New("nothing to withdraw")
	ErrorTransferFailed    = errors.New("transfer failed")

	// oracle errors
	ErrorProofInvalid = errors.New("invalid decryption proof")

	// validation errors
	ErrorInvalidPartner = errors.New("invalid partner")
	ErrorValidation     = errors.New("validation error")

	// generic
	ErrorInternal = errors.New("internal error")
)
