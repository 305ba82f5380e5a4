package service

import (
	"sort"

	"hintkit/internal/application/port/output"
)

var _ output.CommandRegistry = (*CommandRegistryImpl)(nil)

type CommandRegistryImpl struct {
	commands map[string]output.CommandPort
}

func NewCommandRegistry() *CommandRegistryImpl {
	return &CommandRegistryImpl{
		commands: make(map[string]output.CommandPort),
	}
}

func (r *CommandRegistryImpl) Register(cmd output.CommandPort) {
	r.commands[cmd.Name()] = cmd
}

func (r *CommandRegistryImpl) Get(name string) (output.CommandPort, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns the commands sorted by name.
func (r *CommandRegistryImpl) All() []output.CommandPort {
	result := make([]output.CommandPort, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}
