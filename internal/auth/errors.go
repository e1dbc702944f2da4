package auth

import "errors"

// ErrUnknownMFAMode is returned for an MFA mode with no verifier.
var ErrUnknownMFAMode = errors.New("unknown MFA mode")
