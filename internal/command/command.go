package command

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
)

var ErrUsage = errors.New("invalid usage")

// Command is one parsed invocation: a verb, the GGUF file it acts on and
// the remaining positional arguments. File is empty only for help.
type Command struct {
	Verb string
	File string
	Args []string
}

const (
	VerbModify = "modify"
	VerbRemove = "remove"
	VerbExport = "export"
	VerbImport = "import"
	VerbSearch = "search"
	VerbGet    = "get"
	VerbList   = "list"
	VerbInfo   = "info"
	VerbApply  = "apply"
	VerbHelp   = "help"
)

// arity is the allowed number of arguments after the verb, file included.
var arity = map[string][2]int{
	VerbModify: {4, 4},
	VerbRemove: {2, 2},
	VerbExport: {1, 2},
	VerbImport: {1, 2},
	VerbSearch: {2, 2},
	VerbGet:    {2, 2},
	VerbList:   {1, 1},
	VerbInfo:   {1, 1},
	VerbApply:  {1, 2},
	VerbHelp:   {0, 0},
}

// Parse builds a Command from positional arguments, verb first.
func Parse(args []string) (*Command, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(ErrUsage, "no command given")
	}

	verb := args[0]
	rest := args[1:]

	bounds, ok := arity[verb]
	if !ok {
		return nil, errors.Wrapf(ErrUsage, "Unknown command: %s", verb)
	}
	if len(rest) < bounds[0] || len(rest) > bounds[1] {
		return nil, errors.Wrapf(ErrUsage, "Invalid number of arguments for %s command", verb)
	}

	cmd := &Command{Verb: verb}
	if len(rest) > 0 {
		cmd.File = rest[0]
		cmd.Args = rest[1:]
	}

	return cmd, nil
}

// ParseLine splits a shell line with shell quoting rules and parses it.
func ParseLine(line string) (*Command, error) {
	args, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		return nil, errors.Wrapf(ErrUsage, "parse error: %v", err)
	}
	return Parse(args)
}

// Arg returns the i-th argument after the file, or def when it was omitted.
func (c *Command) Arg(i int, def string) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return def
}
