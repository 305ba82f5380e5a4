package output

import (
	"context"

	"hintkit/internal/domain/entity"
)

type BrowserPort interface {
	DOMPort

	Navigate(ctx context.Context, url string) error
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	CurrentURL() string
	Close()
}
