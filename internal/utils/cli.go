package utils

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// CLIInputs holds the global flags shared by the ggufmeta binaries.
type CLIInputs struct {
	ConfigPath string
	LogLevel   string
	Output     string
	Format     string
	Atomic     bool
	Args       []string
}

// HandleCLIInputs parses the global flags from args (without the program
// name). Flags must come before the verb.
func HandleCLIInputs(name string, args []string, defaultConfigPath string, usage func(w io.Writer)) (*CLIInputs, error) {
	in := &CLIInputs{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVar(&in.ConfigPath, "config", defaultConfigPath, "Path of the JSON user configuration")
	fs.StringVar(&in.LogLevel, "log-level", "", "Log level (debug, info, warning, error); overrides the config")
	fs.StringVar(&in.Output, "output", "text", "Output of search/list/get: text, json or toon")
	fs.StringVar(&in.Format, "format", "", "Structured format of export/import files: json or msgpack (default: by extension)")
	fs.BoolVar(&in.Atomic, "atomic", false, "Save through a temp file and rename instead of overwriting in place")
	fs.Usage = func() {
		out := fs.Output()
		if usage != nil {
			usage(out)
		}
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	in.Args = fs.Args()
	return in, nil
}
