package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestValidateRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
