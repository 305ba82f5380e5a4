package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero max hints", func(o *Options) { o.MaxHints = 0 }},
		{"single key", func(o *Options) { o.Keys = "a" }},
		{"duplicate key", func(o *Options) { o.Keys = "asa" }},
		{"unknown visibility", func(o *Options) { o.Visibility = "xray" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrInvalidOptions)
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Y")
	assert.NoError(t, err)
	assert.Equal(t, ModeYankText, m)
	assert.Equal(t, "yank-text", m.String())

	for _, bad := range []string{"", "z", "oo"} {
		_, err := ParseMode(bad)
		assert.ErrorIs(t, err, ErrInvalidMode, bad)
	}
}

func TestMode_HandlesForms(t *testing.T) {
	for _, m := range []Mode{ModeOpen, ModeOpenNew, ModeEditable} {
		assert.True(t, m.HandlesForms(), m.String())
	}
	for _, m := range []Mode{ModeYankText, ModeYankURL, ModeImage, ModeSave} {
		assert.False(t, m.HandlesForms(), m.String())
	}
}
