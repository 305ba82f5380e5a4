package userinteraction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

var _ output.ConsolePort = (*Console)(nil)

const prompt = "hint> "

type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole() *Console {
	return NewConsoleWith(os.Stdin, color.Output)
}

func NewConsoleWith(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadCommand prompts for and returns the next non-empty line. io.EOF is
// returned once the input is exhausted.
func (c *Console) ReadCommand(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		color.New(color.FgCyan, color.Bold).Fprint(c.out, prompt)

		line, err := c.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil {
			if errors.Is(err, io.EOF) && line != "" {
				return line, nil
			}
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("failed to read command: %w", err)
		}
		if line != "" {
			return line, nil
		}
	}
}

// ShowResult prints a command result. Status sentinels are coloured by kind;
// anything else is printed as is.
func (c *Console) ShowResult(ctx context.Context, command, result string, isError bool) {
	if isError {
		color.New(color.FgRed).Fprint(c.out, "✗ ")
		color.New(color.Faint).Fprintf(c.out, "%s: %s\n", command, truncate(result, 300))
		return
	}

	status, err := entity.ParseStatus(result)
	if err != nil {
		fmt.Fprintln(c.out, result)
		return
	}
	tag, payload := splitStatus(status)
	statusColor(status.Kind).Fprint(c.out, tag)
	if payload != "" {
		color.New(color.Faint).Fprint(c.out, payload)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) ShowHints(ctx context.Context, hints []entity.HintView) {
	for _, h := range hints {
		if !h.Active {
			continue
		}
		code := color.New(color.FgYellow, color.Bold)
		if h.Focused {
			code = color.New(color.FgGreen, color.Bold)
		}
		code.Fprintf(c.out, "%6s ", h.Code)
		fmt.Fprintf(c.out, "%-8s %s", h.Tag, truncate(h.Text, 60))
		if h.URL != "" {
			color.New(color.Faint).Fprintf(c.out, " %s", h.URL)
		}
		fmt.Fprintln(c.out)
	}
}

func (c *Console) ShowInfo(ctx context.Context, message string) {
	color.New(color.FgBlue).Fprintln(c.out, message)
}

func splitStatus(s entity.Status) (string, string) {
	full := s.String()
	return strings.TrimSuffix(full, s.Payload), s.Payload
}

func statusColor(kind entity.StatusKind) *color.Color {
	switch kind {
	case entity.StatusOver:
		return color.New(color.FgCyan)
	case entity.StatusDone:
		return color.New(color.FgGreen, color.Bold)
	case entity.StatusInsert:
		return color.New(color.FgYellow, color.Bold)
	case entity.StatusData:
		return color.New(color.FgMagenta, color.Bold)
	}
	return color.New(color.FgRed, color.Bold)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
