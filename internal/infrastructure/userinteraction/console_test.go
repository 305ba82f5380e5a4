package userinteraction

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hintkit/internal/domain/entity"
)

func init() {
	color.NoColor = true
}

func TestConsole_ReadCommand(t *testing.T) {
	out := new(bytes.Buffer)
	c := NewConsoleWith(strings.NewReader("init o\n\n  fire  \nlast"), out)
	ctx := context.Background()

	for _, want := range []string{"init o", "fire", "last"} {
		got, err := c.ReadCommand(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := c.ReadCommand(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), prompt)
}

func TestConsole_ReadCommand_Cancelled(t *testing.T) {
	c := NewConsoleWith(strings.NewReader("init o\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReadCommand(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsole_ShowResult(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		isError bool
		want    string
	}{
		{"over", "OVER:http://x/", false, "OVER:http://x/\n"},
		{"done", "DONE:", false, "DONE:\n"},
		{"plain", "true", false, "true\n"},
		{"error", "boom", true, "✗ fire: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			NewConsoleWith(strings.NewReader(""), out).ShowResult(context.Background(), "fire", tt.result, tt.isError)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestConsole_ShowHints(t *testing.T) {
	out := new(bytes.Buffer)
	c := NewConsoleWith(strings.NewReader(""), out)

	c.ShowHints(context.Background(), []entity.HintView{
		{Code: "1", Tag: "a", Text: "One", URL: "http://x/1", Active: true, Focused: true},
		{Code: "", Tag: "a", Text: "Gone"},
	})

	assert.Contains(t, out.String(), "One")
	assert.Contains(t, out.String(), "http://x/1")
	assert.NotContains(t, out.String(), "Gone")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab...", truncate("abc", 2))
	assert.Equal(t, "☑...", truncate("☑☐", 1))
}
