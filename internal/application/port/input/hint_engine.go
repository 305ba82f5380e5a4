package input

import (
	"context"

	"hintkit/internal/domain/entity"
)

type HintEngine interface {
	Init(ctx context.Context, mode entity.Mode, opts entity.Options) (entity.Status, error)
	Filter(ctx context.Context, text string) (entity.Status, error)
	Update(ctx context.Context, key rune) (entity.Status, error)
	Backspace(ctx context.Context) (entity.Status, error)
	Focus(ctx context.Context, back bool) (entity.Status, error)
	Fire(ctx context.Context) (entity.Status, error)
	FireCode(ctx context.Context, code string) (entity.Status, error)
	Clear(ctx context.Context) error

	Records() []entity.HintView
	Active() bool
}
