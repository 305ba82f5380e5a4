package output

import "context"

// CommandPort is one host command. Fallback is the answer the host gets when
// the command fails.
type CommandPort interface {
	Name() string
	Usage() string
	Fallback() string
	Execute(ctx context.Context, args []string) (string, error)
}

type CommandRegistry interface {
	Register(cmd CommandPort)
	Get(name string) (CommandPort, bool)
	All() []CommandPort
}
