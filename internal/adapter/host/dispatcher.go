// Package host is the command channel between a host and the hint engine.
// Every command answers a string: a status sentinel for hint commands and a
// plain value for one-shot page operations.
package host

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hintkit/internal/application/port/output"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrCommandPanicked = errors.New("command panicked")
	ErrUsage           = errors.New("usage")
)

type Dispatcher struct {
	registry output.CommandRegistry
	logger   output.LoggerPort
}

func NewDispatcher(registry output.CommandRegistry, logger output.LoggerPort) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch runs one command line. A failing command answers its fallback
// together with the error, so the host always gets a usable value.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (result string, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name, args := fields[0], fields[1:]

	cmd, ok := d.registry.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	log := d.logger.WithField("command", name)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Command panicked", "panic", r)
			result, err = cmd.Fallback(), fmt.Errorf("%w: %v", ErrCommandPanicked, r)
		}
	}()

	log.Debug("Executing command", "args", args)
	result, err = cmd.Execute(ctx, args)
	if err != nil {
		log.Error("Command failed", "error", err)
		return cmd.Fallback(), err
	}
	log.Debug("Command finished", "result", result)
	return result, nil
}

type HelpCommand struct {
	registry output.CommandRegistry
}

func NewHelpCommand(registry output.CommandRegistry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

func (c *HelpCommand) Name() string     { return "help" }
func (c *HelpCommand) Usage() string    { return "help" }
func (c *HelpCommand) Fallback() string { return "" }

func (c *HelpCommand) Execute(ctx context.Context, args []string) (string, error) {
	var b strings.Builder
	for i, cmd := range c.registry.All() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cmd.Usage())
	}
	return b.String(), nil
}

func usageError(c output.CommandPort) error {
	return fmt.Errorf("%w: %s", ErrUsage, c.Usage())
}
