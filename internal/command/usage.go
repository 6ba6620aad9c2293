package command

import (
	"fmt"
	"io"
)

const usageText = `Usage:
  ggufmeta [flags] <command> [args]

Commands:
  modify <file> <key> <value> <type>  Modify or add metadata (type: string, int, float, bool)
  remove <file> <key>                 Remove metadata
  export <file> [export_path]         Export metadata to JSON or MessagePack
  import <file> [import_path]         Import metadata from JSON or MessagePack
  search <file> <search_key>          Search metadata by key
  get <file> <key>                    Show one metadata entry
  list <file>                         Show all metadata
  info <file>                         Show the file header
  apply <file> [config]               Apply the batch edits of a config file
  help                                Show this message`

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, usageText)
}
