package host

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

var ErrNoSnapshot = errors.New("page cannot be captured")

type screenshotter interface {
	Screenshot(ctx context.Context) (*entity.Screenshot, error)
}

type markupSnapshotter interface {
	SnapshotHTML(ctx context.Context) (string, error)
}

// SnapshotCommand writes the current page to a file: a JPEG capture for live
// pages, cleaned markup for static ones.
type SnapshotCommand struct {
	dom    output.DOMPort
	logger output.LoggerPort
}

func NewSnapshotCommand(dom output.DOMPort, logger output.LoggerPort) *SnapshotCommand {
	return &SnapshotCommand{dom: dom, logger: logger}
}

func (c *SnapshotCommand) Name() string     { return "snapshot" }
func (c *SnapshotCommand) Usage() string    { return "snapshot <file>" }
func (c *SnapshotCommand) Fallback() string { return "" }

func (c *SnapshotCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", usageError(c)
	}
	path := args[0]

	var data []byte
	switch src := c.dom.(type) {
	case screenshotter:
		shot, err := src.Screenshot(ctx)
		if err != nil {
			return "", err
		}
		data = shot.Data
		c.logger.Debug("Captured screenshot", "width", shot.Width, "height", shot.Height)
	case markupSnapshotter:
		markup, err := src.SnapshotHTML(ctx)
		if err != nil {
			return "", err
		}
		data = []byte(markup)
	default:
		return "", ErrNoSnapshot
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return fmt.Sprintf("%s (%d bytes)", path, len(data)), nil
}
