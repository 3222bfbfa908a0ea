package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomString_LengthAndAlphabet(t *testing.T) {
	s, err := RandomString(AlphanumericAlphabet, 32)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	for _, r := range s {
		assert.True(t, strings.ContainsRune(AlphanumericAlphabet, r))
	}
}

func TestRandomString_Empty(t *testing.T) {
	s, err := RandomString(AlphanumericAlphabet, 0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestRandomString_InvalidArgs(t *testing.T) {
	_, err := RandomString("", 10)
	assert.Error(t, err)

	_, err = RandomString(AlphanumericAlphabet, -1)
	assert.Error(t, err)
}

func TestRandomString_Varies(t *testing.T) {
	a, err := RandomString(AlphanumericAlphabet, 32)
	require.NoError(t, err)
	b, err := RandomString(AlphanumericAlphabet, 32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
