// config.go — optional rc-file configuration for the REPL.
//
// The binary looks for ~/.sliprc.yaml; a missing file yields the defaults.
// The binary has no command-line flags for these settings; the file is the
// only way to change them.
package slip

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL knobs a user may set in the rc file.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryPath string `yaml:"history_path"`
	PreludePath string `yaml:"prelude_path"`
}

// DefaultConfig returns the stock settings: the classic prompt and a
// per-user history database.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:      "user> ",
		HistoryPath: filepath.Join(home, ".slip_history.db"),
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error;
// a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "user> "
	}
	return cfg, nil
}

// DefaultConfigPath is where LoadConfig looks unless told otherwise.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sliprc.yaml")
}
