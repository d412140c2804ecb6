// Package commands parses and runs dev console lines. Each command parses its
// own flags with the standard flag package.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrEmpty is returned by Execute for a blank line.
var ErrEmpty = errors.New("missing command")

// Setup declares a command's flags on fs and returns the function to run
// after fs has parsed the arguments.
type Setup func(fs *flag.FlagSet) func() error

// Command is a named console command.
type Command struct {
	Name  string
	Usage string
	Setup Setup
}

// Registry holds commands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a command, replacing any previous one with the same name.
func (r *Registry) Register(name, usage string, setup Setup) {
	r.cmds[name] = &Command{Name: name, Usage: usage, Setup: setup}
}

// Names returns the registered command names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage returns the usage line for name, or "" if it is unknown.
func (r *Registry) Usage(name string) string {
	if c, ok := r.cmds[name]; ok {
		return c.Usage
	}
	return ""
}

// Parse splits a console line into arguments. A leading "/" is ignored.
func Parse(line string) []string {
	line = strings.TrimPrefix(strings.TrimSpace(line), "/")
	return strings.Fields(line)
}

// Execute runs the command in args[0] with args[1:] as its flags. Every run
// parses into a fresh FlagSet, so flags never carry over between lines.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrEmpty
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s (try help)", name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.Setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run()
}

// Run parses and executes one console line.
func (r *Registry) Run(line string) error {
	return r.Execute(Parse(line))
}
