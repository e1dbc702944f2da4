package auth

import (
	"testing"
	"time"

	"github.com/go-authgate/riskgate/internal/config"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCodeVerifier(t *testing.T) {
	v := StaticCodeVerifier{}

	tests := []struct {
		name   string
		code   string
		secret string
		want   bool
	}{
		{"matching code", "123456", "123456", true},
		{"wrong code", "000000", "123456", false},
		{"prefix only", "12345", "123456", false},
		{"empty code", "", "123456", false},
		{"empty secret", "", "", false},
		{"no secret configured", "123456", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Verify(tt.code, tt.secret))
		})
	}
	assert.Equal(t, "static", v.Name())
}

func TestTOTPVerifier(t *testing.T) {
	const secret = "JBSWY3DPEHPK3PXP"
	v := TOTPVerifier{}

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	assert.True(t, v.Verify(code, secret))
	assert.False(t, v.Verify("not-a-code", secret))
	assert.False(t, v.Verify(code, ""))
	assert.Equal(t, "totp", v.Name())
}

func TestNewSecondFactorVerifier(t *testing.T) {
	v, err := NewSecondFactorVerifier(config.MFAModeStatic)
	require.NoError(t, err)
	assert.IsType(t, StaticCodeVerifier{}, v)

	v, err = NewSecondFactorVerifier("")
	require.NoError(t, err)
	assert.IsType(t, StaticCodeVerifier{}, v)

	v, err = NewSecondFactorVerifier(config.MFAModeTOTP)
	require.NoError(t, err)
	assert.IsType(t, TOTPVerifier{}, v)

	_, err = NewSecondFactorVerifier("sms")
	assert.ErrorIs(t, err, ErrUnknownMFAMode)
}
