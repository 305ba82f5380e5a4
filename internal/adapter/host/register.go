package host

import (
	"hintkit/internal/application/port/input"
	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

type Deps struct {
	Engine     input.HintEngine
	Ops        input.PageOps
	DOM        output.DOMPort
	Defaults   entity.Options
	ScrollStep float64
	Logger     output.LoggerPort
}

// RegisterCommands adds every host command to registry.
func RegisterCommands(registry output.CommandRegistry, d Deps) {
	registry.Register(NewInitCommand(d.Engine, d.Defaults))
	registry.Register(NewFilterCommand(d.Engine))
	registry.Register(NewUpdateCommand(d.Engine))
	registry.Register(NewBackspaceCommand(d.Engine))
	registry.Register(NewFocusCommand(d.Engine))
	registry.Register(NewFireCommand(d.Engine))
	registry.Register(NewClearCommand(d.Engine))
	registry.Register(NewHintsCommand(d.Engine))

	registry.Register(NewEditableCommand(d.Ops))
	registry.Register(NewEditableValueCommand(d.Ops))
	registry.Register(NewFocusInputCommand(d.Ops))
	registry.Register(NewScrollCommand(d.Ops, d.ScrollStep))
	registry.Register(NewScrollPosCommand(d.Ops))
	registry.Register(NewLockCommand(d.Ops))
	registry.Register(NewUnlockCommand(d.Ops))
	registry.Register(NewFillCommand(d.Ops))
	registry.Register(NewIncrementCommand())

	registry.Register(NewSnapshotCommand(d.DOM, d.Logger))
	registry.Register(NewHelpCommand(registry))
}
