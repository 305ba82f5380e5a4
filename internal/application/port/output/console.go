package output

import (
	"context"

	"hintkit/internal/domain/entity"
)

// ConsolePort is the terminal side of the host channel.
type ConsolePort interface {
	ReadCommand(ctx context.Context) (string, error)

	ShowResult(ctx context.Context, command, result string, isError bool)
	ShowHints(ctx context.Context, hints []entity.HintView)
	ShowInfo(ctx context.Context, message string)
}
