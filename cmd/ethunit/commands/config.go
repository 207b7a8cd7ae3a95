package commands

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/calebcase/ethunit/unit"
)

const (
	envUnit     = "ETHUNIT_UNIT"
	envLogLevel = "ETHUNIT_LOG_LEVEL"
)

// Config is the environment derived configuration.
type Config struct {
	Unit     string
	LogLevel string
}

// LoadConfig reads path into the environment, without overriding variables
// that are already set, and returns the resulting configuration. A missing
// file is not an error.
func LoadConfig(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	if path != "" {
		err = godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	cfg.Unit = os.Getenv(envUnit)
	if cfg.Unit == "" {
		cfg.Unit = unit.Ether
	}

	cfg.LogLevel = os.Getenv(envLogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}

	return cfg, nil
}
