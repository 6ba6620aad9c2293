package internal

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Noth1ngLol/Llol/internal/logger"
	"github.com/Noth1ngLol/Llol/internal/utils"
	"github.com/pkg/errors"
)

// MetadataItem is one entry of a batch edit. Type is a command line type
// name (string, int, float, bool); Value is converted according to it.
type MetadataItem struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
	Type  string `json:"type"`
}

// Config is the user configuration, read from a JSON file in the home
// directory. Command line flags override it.
type Config struct {
	MetadataToModify  []MetadataItem `json:"metadata_to_modify"`
	MetadataToAdd     []MetadataItem `json:"metadata_to_add"`
	MetadataToRemove  []string       `json:"metadata_to_remove"`
	DefaultExportPath string         `json:"default_export_path"`
	DefaultImportPath string         `json:"default_import_path"`
	Debug             bool           `json:"debug"`
	LoggingLevel      string         `json:"logging_level"`
	ExportFormat      string         `json:"export_format"`
	AtomicSave        bool           `json:"atomic_save"`
}

const DEFAULT_CONFIG_NAME = ".gguf_modifier_config.json"
const DEFAULT_EXPORT_PATH = "./export"
const DEFAULT_IMPORT_PATH = "./import"
const DEFAULT_LOGGING_LEVEL = "INFO"

func DefaultConfig() *Config {
	return &Config{
		MetadataToModify:  []MetadataItem{},
		MetadataToAdd:     []MetadataItem{},
		MetadataToRemove:  []string{},
		DefaultExportPath: DEFAULT_EXPORT_PATH,
		DefaultImportPath: DEFAULT_IMPORT_PATH,
		LoggingLevel:      DEFAULT_LOGGING_LEVEL,
	}
}

// DefaultConfigPath is ~/.gguf_modifier_config.json, or the bare file name
// when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DEFAULT_CONFIG_NAME
	}
	return filepath.Join(home, DEFAULT_CONFIG_NAME)
}

// LoadConfig reads the configuration at path over the defaults. A missing
// file yields the defaults. A file that is not valid JSON is logged and
// also yields the defaults.
func LoadConfig(path string) *Config {
	cfg, err := ReadConfig(path)
	if err != nil {
		logger.For("config").WithError(err).Error("Invalid config file. Using default settings.")
		return DefaultConfig()
	}
	return cfg
}

// ReadConfig is LoadConfig without the fallback: errors are returned.
func ReadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if !utils.PathExists(path) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	// Numbers stay json.Number so large integers reach ParseValue intact.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	return cfg, nil
}

// Save writes the configuration to path as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EffectiveLogLevel is the configured level, forced to debug in debug mode.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LoggingLevel
}
