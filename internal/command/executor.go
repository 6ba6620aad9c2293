package command

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/Noth1ngLol/Llol/core"
	"github.com/Noth1ngLol/Llol/internal"
	"github.com/Noth1ngLol/Llol/internal/logger"
	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/Noth1ngLol/Llol/internal/structured"
	"github.com/Noth1ngLol/Llol/internal/utils"
	"github.com/pkg/errors"
)

var ErrInvalidType = core.ErrInvalidType

// Output modes for commands that print records.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputToon = "toon"
)

// Executor runs parsed commands against GGUF files. Each command opens the
// file, performs one operation and drops the store.
type Executor struct {
	Config *internal.Config
	Out    io.Writer

	// Output is one of OutputText, OutputJSON or OutputToon.
	Output string
	// Format names the export/import format; empty falls back to the
	// config, then to the file extension.
	Format string
	Atomic bool
}

func (e *Executor) config() *internal.Config {
	if e.Config == nil {
		e.Config = internal.DefaultConfig()
	}
	return e.Config
}

func (e *Executor) storeOptions() ([]core.Option, error) {
	cfg := e.config()

	opts := []core.Option{core.WithAtomicSave(e.Atomic || cfg.AtomicSave)}

	name := e.Format
	if name == "" {
		name = cfg.ExportFormat
	}
	if name != "" {
		format, err := structured.ParseFormat(name)
		if err != nil {
			return nil, errors.Wrap(ErrUsage, err.Error())
		}
		opts = append(opts, core.WithStructuredFormat(format))
	}

	return opts, nil
}

func (e *Executor) open(path string) (*core.Store, error) {
	opts, err := e.storeOptions()
	if err != nil {
		return nil, err
	}

	s, err := core.Open(path, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "Error opening GGUF file")
	}
	return s, nil
}

// Execute runs cmd and writes its result to Out.
func (e *Executor) Execute(cmd *Command) error {
	log := logger.For("command").WithField("verb", cmd.Verb)
	log.Debugf("Executing on %q with %d argument(s)", cmd.File, len(cmd.Args))

	switch cmd.Verb {
	case VerbHelp:
		Usage(e.Out)
		return nil
	case VerbModify:
		return e.modify(cmd)
	case VerbRemove:
		return e.remove(cmd)
	case VerbExport:
		return e.export(cmd)
	case VerbImport:
		return e.importFrom(cmd)
	case VerbSearch:
		return e.search(cmd)
	case VerbGet:
		return e.get(cmd)
	case VerbList:
		return e.list(cmd)
	case VerbInfo:
		return e.info(cmd)
	case VerbApply:
		return e.apply(cmd)
	default:
		return errors.Wrapf(ErrUsage, "Unknown command: %s", cmd.Verb)
	}
}

func (e *Executor) modify(cmd *Command) error {
	key, raw, typ := cmd.Args[0], cmd.Args[1], cmd.Args[2]

	// The value is checked before the file is touched.
	value, valueType, err := core.ParseValue(raw, typ)
	if err != nil {
		return err
	}

	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}
	if err := s.Upsert(key, value, valueType); err != nil {
		return errors.WithMessage(err, "Error modifying metadata")
	}

	fmt.Fprintln(e.Out, "Metadata modified successfully")
	return nil
}

func (e *Executor) remove(cmd *Command) error {
	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}
	if err := s.Remove(cmd.Args[0]); err != nil {
		return errors.WithMessage(err, "Error removing metadata")
	}

	fmt.Fprintln(e.Out, "Metadata removed successfully")
	return nil
}

// structuredPath resolves an export/import path. A directory gets the
// default export file name appended.
func structuredPath(path string) string {
	if utils.IsDir(path) {
		return filepath.Join(path, core.DefaultExportFileName)
	}
	return path
}

func (e *Executor) export(cmd *Command) error {
	dest := structuredPath(cmd.Arg(0, e.config().DefaultExportPath))

	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}
	if err := s.Export(dest); err != nil {
		return errors.WithMessage(err, "Error exporting metadata")
	}

	fmt.Fprintf(e.Out, "Metadata exported successfully to %s\n", dest)
	return nil
}

func (e *Executor) importFrom(cmd *Command) error {
	src := structuredPath(cmd.Arg(0, e.config().DefaultImportPath))

	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}
	if err := s.Import(src); err != nil {
		return errors.WithMessage(err, "Error importing metadata")
	}

	fmt.Fprintf(e.Out, "Metadata imported successfully from %s\n", src)
	return nil
}

func (e *Executor) search(cmd *Command) error {
	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}

	matches := s.Search(cmd.Args[0])
	if e.output() == OutputText {
		if len(matches) == 0 {
			fmt.Fprintln(e.Out, "No matching metadata found")
			return nil
		}
		fmt.Fprintln(e.Out, "Matching metadata:")
	}
	return e.printRecords(matches)
}

func (e *Executor) get(cmd *Command) error {
	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}

	key := cmd.Args[0]
	rec, ok := s.Get(key)
	if !ok {
		return errors.Wrapf(core.ErrNotFound, "no metadata with key %q", key)
	}
	return e.printRecords([]record.Record{rec})
}

func (e *Executor) list(cmd *Command) error {
	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}

	if e.output() == OutputText {
		fmt.Fprintf(e.Out, "Metadata (%d records):\n", s.Len())
	}
	return e.printRecords(s.Records())
}

func (e *Executor) info(cmd *Command) error {
	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}

	h := s.Header()
	fmt.Fprintf(e.Out, "File: %s\n", s.Path())
	fmt.Fprintf(e.Out, "Version: %d\n", h.Version)
	fmt.Fprintf(e.Out, "Tensor count: %d\n", h.TensorCount)
	fmt.Fprintf(e.Out, "Metadata count: %d\n", h.MetadataCount)
	return nil
}

func (e *Executor) apply(cmd *Command) error {
	cfg := e.config()
	if path := cmd.Arg(0, ""); path != "" {
		var err error
		if cfg, err = internal.ReadConfig(path); err != nil {
			return err
		}
	}

	batch := BatchFromConfig(cfg)
	if batch.Empty() {
		fmt.Fprintln(e.Out, "No metadata edits configured")
		return nil
	}

	s, err := e.open(cmd.File)
	if err != nil {
		return err
	}
	if err := s.Apply(batch); err != nil {
		return errors.WithMessage(err, "Error applying metadata edits")
	}

	fmt.Fprintln(e.Out, "File processing completed successfully.")
	return nil
}

// BatchFromConfig collects the modify, add and remove lists of cfg.
func BatchFromConfig(cfg *internal.Config) core.Batch {
	items := func(in []internal.MetadataItem) []core.BatchItem {
		out := make([]core.BatchItem, 0, len(in))
		for _, it := range in {
			out = append(out, core.BatchItem{Key: it.Key, Value: it.Value, Type: it.Type})
		}
		return out
	}

	return core.Batch{
		Modify: items(cfg.MetadataToModify),
		Add:    items(cfg.MetadataToAdd),
		Remove: append([]string(nil), cfg.MetadataToRemove...),
	}
}

func (e *Executor) output() string {
	if e.Output == "" {
		return OutputText
	}
	return e.Output
}

func (e *Executor) printRecords(records []record.Record) error {
	switch e.output() {
	case OutputText:
		for _, rec := range records {
			fmt.Fprintf(e.Out, "Key: %s\n", rec.Key)
			fmt.Fprintf(e.Out, "Value: %v\n", rec.Value)
			fmt.Fprintf(e.Out, "Type: %s\n", rec.ValueType)
			fmt.Fprintln(e.Out, "---")
		}
		return nil
	case OutputJSON:
		data, err := structured.Marshal(records, structured.JSON)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.Out, string(data))
		return err
	case OutputToon:
		data, err := structured.Render(records)
		if err != nil {
			return err
		}
		_, err = e.Out.Write(data)
		return err
	default:
		return errors.Wrapf(ErrUsage, "unknown output %q", e.Output)
	}
}
