//go:build unit

package chainedhashmap

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads sizing from toml file", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "hashmap.toml")
		err := os.WriteFile(path, []byte("initial_size = 1000\nload_factor = 0.5\n"), 0644)
		assert.NoError(t, err, "writes config file")

		// Execute
		config, err := LoadConfig(path)

		// Check
		assert.NoError(t, err, "loads config")
		assert.Equal(t, uint64(1000), config.InitialSize, "initial size read")
		assert.Equal(t, float32(0.5), config.LoadFactor, "load factor read")
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "hashmap.toml")
		err := os.WriteFile(path, []byte("initial_size = 64\n"), 0644)
		assert.NoError(t, err, "writes config file")

		// Execute
		config, err := LoadConfig(path)

		// Check
		assert.NoError(t, err, "loads config")
		assert.Equal(t, uint64(64), config.InitialSize, "initial size read")
		assert.Equal(t, DefaultConfig().LoadFactor, config.LoadFactor, "default load factor")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		// Execute
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))

		// Check
		assert.Error(t, err, "fails on missing file")
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "hashmap.toml")
		err := os.WriteFile(path, []byte("initial_size = \"lots\"\n"), 0644)
		assert.NoError(t, err, "writes config file")

		// Execute
		_, err = LoadConfig(path)

		// Check
		assert.Error(t, err, "fails on wrong type")
	})
}
