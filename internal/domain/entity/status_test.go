package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "OVER:http://example.com/", Over("http://example.com/").String())
	assert.Equal(t, "OVER:", Over("").String())
	assert.Equal(t, "DONE:", Done().String())
	assert.Equal(t, "INSERT:", Insert().String())
	assert.Equal(t, "DATA:some text", Data("some text").String())
	assert.Equal(t, "ERROR:", ErrorStatus().String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{Over("http://a/b"), Done(), Insert(), Data("DATA:nested"), ErrorStatus()} {
		parsed, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("DONE:extra")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("nope")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, Over("x").Terminal())
	assert.False(t, ErrorStatus().Terminal())
	assert.True(t, Done().Terminal())
	assert.True(t, Insert().Terminal())
	assert.True(t, Data("").Terminal())
}
