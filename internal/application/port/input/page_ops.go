package input

import (
	"context"

	"hintkit/internal/domain/entity"
)

type PageOps interface {
	EditableFocused(ctx context.Context) (bool, error)
	EditableValue(ctx context.Context) (string, error)
	FocusFirstInput(ctx context.Context) (bool, error)
	ScrollPosition(ctx context.Context) (entity.ScrollMetrics, error)
	Scroll(ctx context.Context, key rune, step float64, count int) error
	LockInput(ctx context.Context, id string) (bool, error)
	UnlockInput(ctx context.Context, id string) (bool, error)
	FillForm(ctx context.Context, pairs []string) (int, error)
}
