package chainedhashmap

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/gostonefire/chainedhashmap/internal/conf"
	"go.uber.org/zap"
)

// Config - Is a struct to be passed in the call to New and contains configuration that affects sizing and logging.
//   - InitialSize is the number of entries the map should hold before it grows for the first time
//   - LoadFactor is the fraction of buckets allowed to be used before growth, in the range (0, 1]
//   - Logger receives debug output on initialise, resize, clear and free, nil gives a no-op logger
type Config struct {
	InitialSize uint64      `toml:"initial_size"`
	LoadFactor  float32     `toml:"load_factor"`
	Logger      *zap.Logger `toml:"-"`
}

// DefaultConfig - Returns a Config with default sizing and no logging
func DefaultConfig() Config {
	return Config{
		InitialSize: conf.DefaultInitialSize,
		LoadFactor:  conf.DefaultLoadFactor,
	}
}

// LoadConfig - Reads a Config from a TOML file, fields not present in the file are given default values.
//   - path is the name of the file to read
//
// It returns:
//   - config is the Config read
//   - err is a standard error, if the file could not be read or parsed
func LoadConfig(path string) (config Config, err error) {
	config = DefaultConfig()
	_, err = toml.DecodeFile(path, &config)
	if err != nil {
		err = fmt.Errorf("error while loading hash map config from %s: %w", path, err)
		return
	}

	return
}

// withDefaults - Returns a copy of c with zero fields replaced by defaults
func (c Config) withDefaults() Config {
	if c.InitialSize == 0 {
		c.InitialSize = conf.DefaultInitialSize
	}
	if c.LoadFactor == 0 {
		c.LoadFactor = conf.DefaultLoadFactor
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}
