package stocktracker

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// envConfigDir overrides the configuration directory when set and non-empty.
const envConfigDir = "STOCKTRACKER_CONFIG_DIR"

const (
	userMapFilename  = "users.json"
	stockMapFilename = "stocks.json"
	stateFilename    = "state.json"
)

// environment is the env-tagged view of the process environment.
type environment struct {
	ConfigDir string `env:"STOCKTRACKER_CONFIG_DIR"`
}

// Config is the bound form of one CLI invocation: the parsed command, the
// verbatim trailing arguments, and the configuration directory holding the
// store files.
type Config struct {
	Command   Command
	Remainder []string
	Dir       string
}

// NewConfig binds raw process arguments into a Config. The first argument is
// the program name and is discarded. The configuration directory is resolved
// from the environment or from a home-relative default, and created if
// absent.
func NewConfig(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, errNoCommand()
	}
	command, err := ParseCommand(args[1])
	if err != nil {
		return nil, err
	}
	remainder := args[2:]
	if len(remainder) < command.NumArgs() {
		return nil, errArgumentsTooFew(command)
	}

	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errDirectoryCreate(dir, err)
		}
	}

	return &Config{Command: command, Remainder: remainder, Dir: dir}, nil
}

// configDir resolves the configuration directory without touching the disk.
func configDir() (string, error) {
	var e environment
	if err := env.Parse(&e); err == nil && e.ConfigDir != "" {
		return e.ConfigDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errHomeDirectoryNotFound(err)
	}
	return filepath.Join(home, ".stocktracker"), nil
}

// UserMapPath returns the location of the user map store.
func (c *Config) UserMapPath() string { return filepath.Join(c.Dir, userMapFilename) }

// StockMapPath returns the location of the stock map store.
func (c *Config) StockMapPath() string { return filepath.Join(c.Dir, stockMapFilename) }

// StatePath returns the location of the session state file.
func (c *Config) StatePath() string { return filepath.Join(c.Dir, stateFilename) }
