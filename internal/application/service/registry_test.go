package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCommand struct{ name string }

func (c stubCommand) Name() string     { return c.name }
func (c stubCommand) Usage() string    { return c.name }
func (c stubCommand) Fallback() string { return "" }
func (c stubCommand) Execute(ctx context.Context, args []string) (string, error) {
	return c.name, nil
}

func TestCommandRegistry(t *testing.T) {
	r := NewCommandRegistry()
	r.Register(stubCommand{name: "fire"})
	r.Register(stubCommand{name: "clear"})
	r.Register(stubCommand{name: "fire"})

	cmd, ok := r.Get("fire")
	assert.True(t, ok)
	assert.Equal(t, "fire", cmd.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	all := r.All()
	if assert.Len(t, all, 2) {
		assert.Equal(t, "clear", all[0].Name())
		assert.Equal(t, "fire", all[1].Name())
	}
}
