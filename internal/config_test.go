package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg := LoadConfig(filepath.Join(t.TempDir(), DEFAULT_CONFIG_NAME))
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid JSON yields defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DEFAULT_CONFIG_NAME)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := ReadConfig(path)
		require.Error(t, err)

		require.Equal(t, DefaultConfig(), LoadConfig(path))
	})

	t.Run("fields override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DEFAULT_CONFIG_NAME)
		data := `{
  "metadata_to_modify": [{"key": "general.name", "value": "tiny", "type": "string"}],
  "metadata_to_add": [{"key": "general.layers", "value": 22, "type": "int"}],
  "metadata_to_remove": ["general.url"],
  "default_export_path": "out.json",
  "logging_level": "DEBUG",
  "atomic_save": true
}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := ReadConfig(path)
		require.NoError(t, err)
		require.Equal(t, []MetadataItem{{Key: "general.name", Value: "tiny", Type: "string"}}, cfg.MetadataToModify)
		require.Equal(t, "general.layers", cfg.MetadataToAdd[0].Key)
		require.Equal(t, json.Number("22"), cfg.MetadataToAdd[0].Value)
		require.Equal(t, []string{"general.url"}, cfg.MetadataToRemove)
		require.Equal(t, "out.json", cfg.DefaultExportPath)
		require.Equal(t, DEFAULT_IMPORT_PATH, cfg.DefaultImportPath)
		require.Equal(t, "DEBUG", cfg.EffectiveLogLevel())
		require.True(t, cfg.AtomicSave)
	})
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), DEFAULT_CONFIG_NAME)

	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.MetadataToRemove = []string{"a", "b"}
	require.NoError(t, cfg.Save(path))

	loaded, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
	require.Equal(t, "debug", loaded.EffectiveLogLevel())
}

func TestDefaultConfigPath(t *testing.T) {
	require.Equal(t, DEFAULT_CONFIG_NAME, filepath.Base(DefaultConfigPath()))
}
