package history

import "strings"

// ignoredBareCommands are housekeeping commands that carry no analytical
// signal when invoked without arguments.
var ignoredBareCommands = map[string]struct{}{
	"history": {},
	"clear":   {},
	"exit":    {},
	"logout":  {},
	"cd":      {},
	"ls":      {},
	"pwd":     {},
	"echo":    {},
}

// Ignored reports whether a command line should be dropped during
// collection: blank lines and bare housekeeping commands.
func Ignored(command string) bool {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return true
	}
	_, ok := ignoredBareCommands[trimmed]
	return ok
}
