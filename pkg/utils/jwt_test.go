package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareTokenRoundTrip(t *testing.T) {
	token, err := CreateShareToken("abc123def456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateShareToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123def456", claims.PlanCode)
}

func TestValidateShareTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateShareToken("definitely.not.a-jwt")
	assert.ErrorIs(t, err, ErrShareTokenInvalid)
}

func TestValidateShareTokenRejectsTampering(t *testing.T) {
	token, err := CreateShareToken("abc123def456")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateShareToken(tampered)
	assert.ErrorIs(t, err, ErrShareTokenInvalid)
}
