package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	for range 50 {
		code, err := newCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}
}

func TestRandomString(t *testing.T) {
	s, err := randomString("ab", 32)
	require.NoError(t, err)
	assert.Len(t, s, 32)
	assert.Empty(t, strings.Trim(s, "ab"))
}
