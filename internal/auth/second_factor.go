package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/go-authgate/riskgate/internal/config"
	"github.com/go-authgate/riskgate/internal/core"

	"github.com/pquerna/otp/totp"
)

var (
	_ core.SecondFactorVerifier = (*StaticCodeVerifier)(nil)
	_ core.SecondFactorVerifier = (*TOTPVerifier)(nil)
)

// StaticCodeVerifier accepts a code equal to the stored secret.
type StaticCodeVerifier struct{}

// Verify compares in constant time. An empty secret never matches.
func (StaticCodeVerifier) Verify(code, secret string) bool {
	if secret == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(secret)) == 1
}

func (StaticCodeVerifier) Name() string { return config.MFAModeStatic }

// TOTPVerifier treats the stored secret as a base32 RFC 6238 seed.
type TOTPVerifier struct{}

func (TOTPVerifier) Verify(code, secret string) bool {
	if secret == "" || code == "" {
		return false
	}
	return totp.Validate(code, secret)
}

func (TOTPVerifier) Name() string { return config.MFAModeTOTP }

// NewSecondFactorVerifier returns the verifier for an MFA mode.
func NewSecondFactorVerifier(mode string) (core.SecondFactorVerifier, error) {
	switch mode {
	case config.MFAModeStatic, "":
		return StaticCodeVerifier{}, nil
	case config.MFAModeTOTP:
		return TOTPVerifier{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMFAMode, mode)
	}
}
