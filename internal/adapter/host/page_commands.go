package host

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"hintkit/internal/application/port/input"
	"hintkit/internal/usecase/pageops"
)

const DefaultScrollStep = 40

type EditableCommand struct {
	ops input.PageOps
}

func NewEditableCommand(ops input.PageOps) *EditableCommand {
	return &EditableCommand{ops: ops}
}

func (c *EditableCommand) Name() string     { return "editable" }
func (c *EditableCommand) Usage() string    { return "editable" }
func (c *EditableCommand) Fallback() string { return "false" }

func (c *EditableCommand) Execute(ctx context.Context, args []string) (string, error) {
	ok, err := c.ops.EditableFocused(ctx)
	return strconv.FormatBool(ok), err
}

type EditableValueCommand struct {
	ops input.PageOps
}

func NewEditableValueCommand(ops input.PageOps) *EditableValueCommand {
	return &EditableValueCommand{ops: ops}
}

func (c *EditableValueCommand) Name() string     { return "editable-value" }
func (c *EditableValueCommand) Usage() string    { return "editable-value" }
func (c *EditableValueCommand) Fallback() string { return "" }

func (c *EditableValueCommand) Execute(ctx context.Context, args []string) (string, error) {
	return c.ops.EditableValue(ctx)
}

type FocusInputCommand struct {
	ops input.PageOps
}

func NewFocusInputCommand(ops input.PageOps) *FocusInputCommand {
	return &FocusInputCommand{ops: ops}
}

func (c *FocusInputCommand) Name() string     { return "focus-input" }
func (c *FocusInputCommand) Usage() string    { return "focus-input" }
func (c *FocusInputCommand) Fallback() string { return "false" }

func (c *FocusInputCommand) Execute(ctx context.Context, args []string) (string, error) {
	ok, err := c.ops.FocusFirstInput(ctx)
	return strconv.FormatBool(ok), err
}

type ScrollCommand struct {
	ops  input.PageOps
	step float64
}

func NewScrollCommand(ops input.PageOps, step float64) *ScrollCommand {
	if step <= 0 {
		step = DefaultScrollStep
	}
	return &ScrollCommand{ops: ops, step: step}
}

func (c *ScrollCommand) Name() string     { return "scroll" }
func (c *ScrollCommand) Usage() string    { return "scroll <j|k|h|l|^D|^U|^F|^B|g|G|0|$> [count]" }
func (c *ScrollCommand) Fallback() string { return "" }

func (c *ScrollCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", usageError(c)
	}
	key, ok := parseKey(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", pageops.ErrUnknownScrollKey, args[0])
	}
	count := 0
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return "", usageError(c)
		}
		count = n
	}
	return "", c.ops.Scroll(ctx, key, c.step, count)
}

// parseKey reads a single key, writing control keys as ^X.
func parseKey(s string) (rune, bool) {
	if len(s) == 2 && s[0] == '^' {
		ch := s[1]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < '@' || ch > '_' {
			return 0, false
		}
		return rune(ch & 0x1f), true
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

type ScrollPosCommand struct {
	ops input.PageOps
}

func NewScrollPosCommand(ops input.PageOps) *ScrollPosCommand {
	return &ScrollPosCommand{ops: ops}
}

func (c *ScrollPosCommand) Name() string     { return "scroll-pos" }
func (c *ScrollPosCommand) Usage() string    { return "scroll-pos" }
func (c *ScrollPosCommand) Fallback() string { return "0 0 0" }

// Execute answers "max percent top".
func (c *ScrollPosCommand) Execute(ctx context.Context, args []string) (string, error) {
	m, err := c.ops.ScrollPosition(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d %d", m.Max, m.Percent, m.Top), nil
}

type LockCommand struct {
	ops    input.PageOps
	unlock bool
}

func NewLockCommand(ops input.PageOps) *LockCommand {
	return &LockCommand{ops: ops}
}

func NewUnlockCommand(ops input.PageOps) *LockCommand {
	return &LockCommand{ops: ops, unlock: true}
}

func (c *LockCommand) Name() string {
	if c.unlock {
		return "unlock"
	}
	return "lock"
}

func (c *LockCommand) Usage() string    { return c.Name() + " <id>" }
func (c *LockCommand) Fallback() string { return "false" }

func (c *LockCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", usageError(c)
	}
	var (
		ok  bool
		err error
	)
	if c.unlock {
		ok, err = c.ops.UnlockInput(ctx, args[0])
	} else {
		ok, err = c.ops.LockInput(ctx, args[0])
	}
	return strconv.FormatBool(ok), err
}

type FillCommand struct {
	ops input.PageOps
}

func NewFillCommand(ops input.PageOps) *FillCommand {
	return &FillCommand{ops: ops}
}

func (c *FillCommand) Name() string     { return "fill" }
func (c *FillCommand) Usage() string    { return "fill <selector:value>..." }
func (c *FillCommand) Fallback() string { return "0" }

// Execute answers the number of changed elements. Pairs that failed are
// reported in the error while the count still covers the others.
func (c *FillCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError(c)
	}
	n, err := c.ops.FillForm(ctx, args)
	return strconv.Itoa(n), err
}

type IncrementCommand struct{}

func NewIncrementCommand() *IncrementCommand {
	return &IncrementCommand{}
}

func (c *IncrementCommand) Name() string     { return "incr" }
func (c *IncrementCommand) Usage() string    { return "incr <uri> [count]" }
func (c *IncrementCommand) Fallback() string { return "" }

func (c *IncrementCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", usageError(c)
	}
	count := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", usageError(c)
		}
		count = n
	}
	uri, ok := pageops.IncrementURI(args[0], count)
	if !ok {
		return "", fmt.Errorf("no number in %q", args[0])
	}
	return uri, nil
}
