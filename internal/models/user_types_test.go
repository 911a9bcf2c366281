package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSetAndMatches(t *testing.T) {
	var p Password
	require.NoError(t, p.Set("atlas-cedar-42"))
	require.NotEmpty(t, p.Hash)
	assert.NotEqual(t, "atlas-cedar-42", p.Hash)

	ok, err := p.Matches("atlas-cedar-42")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Matches("wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	var a, b Password
	require.NoError(t, a.Set("same-input"))
	require.NoError(t, b.Set("same-input"))
	assert.NotEqual(t, a.Hash, b.Hash)
}
