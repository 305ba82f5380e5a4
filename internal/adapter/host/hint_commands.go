package host

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"hintkit/internal/application/port/input"
	"hintkit/internal/domain/entity"
)

var errorSentinel = entity.ErrorStatus().String()

type InitCommand struct {
	engine   input.HintEngine
	defaults entity.Options
}

func NewInitCommand(engine input.HintEngine, defaults entity.Options) *InitCommand {
	return &InitCommand{engine: engine, defaults: defaults}
}

func (c *InitCommand) Name() string     { return "init" }
func (c *InitCommand) Usage() string    { return "init <mode> [keys=… max=… keep=… follow=… fixed=… visibility=…]" }
func (c *InitCommand) Fallback() string { return errorSentinel }

func (c *InitCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError(c)
	}
	mode, err := entity.ParseMode(args[0])
	if err != nil {
		return "", err
	}
	opts, err := applyOptions(c.defaults, args[1:])
	if err != nil {
		return "", err
	}
	status, err := c.engine.Init(ctx, mode, opts)
	return status.String(), err
}

// applyOptions overrides opts with key=value arguments.
func applyOptions(opts entity.Options, args []string) (entity.Options, error) {
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return opts, fmt.Errorf("%w: option %q is not key=value", entity.ErrInvalidOptions, arg)
		}
		var err error
		switch key {
		case "keys":
			opts.Keys = val
		case "max":
			opts.MaxHints, err = strconv.Atoi(val)
		case "keep":
			opts.KeepOpen, err = strconv.ParseBool(val)
		case "follow":
			opts.FollowLast, err = strconv.ParseBool(val)
		case "fixed":
			opts.FixedWidth, err = strconv.ParseBool(val)
		case "visibility":
			opts.Visibility = entity.VisibilityPolicy(val)
		default:
			return opts, fmt.Errorf("%w: unknown option %q", entity.ErrInvalidOptions, key)
		}
		if err != nil {
			return opts, fmt.Errorf("%w: %s: %v", entity.ErrInvalidOptions, key, err)
		}
	}
	return opts, nil
}

type FilterCommand struct {
	engine input.HintEngine
}

func NewFilterCommand(engine input.HintEngine) *FilterCommand {
	return &FilterCommand{engine: engine}
}

func (c *FilterCommand) Name() string     { return "filter" }
func (c *FilterCommand) Usage() string    { return "filter [text]" }
func (c *FilterCommand) Fallback() string { return errorSentinel }

func (c *FilterCommand) Execute(ctx context.Context, args []string) (string, error) {
	status, err := c.engine.Filter(ctx, strings.Join(args, " "))
	return status.String(), err
}

type UpdateCommand struct {
	engine input.HintEngine
}

func NewUpdateCommand(engine input.HintEngine) *UpdateCommand {
	return &UpdateCommand{engine: engine}
}

func (c *UpdateCommand) Name() string     { return "update" }
func (c *UpdateCommand) Usage() string    { return "update <key>" }
func (c *UpdateCommand) Fallback() string { return errorSentinel }

func (c *UpdateCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 || utf8.RuneCountInString(args[0]) != 1 {
		return "", usageError(c)
	}
	key, _ := utf8.DecodeRuneInString(args[0])
	status, err := c.engine.Update(ctx, key)
	return status.String(), err
}

type BackspaceCommand struct {
	engine input.HintEngine
}

func NewBackspaceCommand(engine input.HintEngine) *BackspaceCommand {
	return &BackspaceCommand{engine: engine}
}

func (c *BackspaceCommand) Name() string     { return "bs" }
func (c *BackspaceCommand) Usage() string    { return "bs" }
func (c *BackspaceCommand) Fallback() string { return errorSentinel }

func (c *BackspaceCommand) Execute(ctx context.Context, args []string) (string, error) {
	status, err := c.engine.Backspace(ctx)
	return status.String(), err
}

type FocusCommand struct {
	engine input.HintEngine
}

func NewFocusCommand(engine input.HintEngine) *FocusCommand {
	return &FocusCommand{engine: engine}
}

func (c *FocusCommand) Name() string     { return "focus" }
func (c *FocusCommand) Usage() string    { return "focus [back]" }
func (c *FocusCommand) Fallback() string { return errorSentinel }

func (c *FocusCommand) Execute(ctx context.Context, args []string) (string, error) {
	back := len(args) > 0 && args[0] == "back"
	status, err := c.engine.Focus(ctx, back)
	return status.String(), err
}

type FireCommand struct {
	engine input.HintEngine
}

func NewFireCommand(engine input.HintEngine) *FireCommand {
	return &FireCommand{engine: engine}
}

func (c *FireCommand) Name() string     { return "fire" }
func (c *FireCommand) Usage() string    { return "fire [code]" }
func (c *FireCommand) Fallback() string { return errorSentinel }

func (c *FireCommand) Execute(ctx context.Context, args []string) (string, error) {
	var (
		status entity.Status
		err    error
	)
	if len(args) > 0 {
		status, err = c.engine.FireCode(ctx, args[0])
	} else {
		status, err = c.engine.Fire(ctx)
	}
	return status.String(), err
}

type ClearCommand struct {
	engine input.HintEngine
}

func NewClearCommand(engine input.HintEngine) *ClearCommand {
	return &ClearCommand{engine: engine}
}

func (c *ClearCommand) Name() string     { return "clear" }
func (c *ClearCommand) Usage() string    { return "clear" }
func (c *ClearCommand) Fallback() string { return "" }

func (c *ClearCommand) Execute(ctx context.Context, args []string) (string, error) {
	return "", c.engine.Clear(ctx)
}

// HintsCommand lists the active hints, one "code<TAB>tag<TAB>text<TAB>url"
// line each, the focused one marked with a leading '*'.
type HintsCommand struct {
	engine input.HintEngine
}

func NewHintsCommand(engine input.HintEngine) *HintsCommand {
	return &HintsCommand{engine: engine}
}

func (c *HintsCommand) Name() string     { return "hints" }
func (c *HintsCommand) Usage() string    { return "hints" }
func (c *HintsCommand) Fallback() string { return "" }

func (c *HintsCommand) Execute(ctx context.Context, args []string) (string, error) {
	var lines []string
	for _, h := range c.engine.Records() {
		if !h.Active {
			continue
		}
		code := h.Code
		if h.Focused {
			code = "*" + code
		}
		lines = append(lines, strings.Join([]string{code, h.Tag, h.Text, h.URL}, "\t"))
	}
	return strings.Join(lines, "\n"), nil
}
