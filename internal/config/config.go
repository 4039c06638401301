package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DataRoot is the directory searched for the bundled dataset locations.
	DataRoot string `mapstructure:"data_root" yaml:"data_root"`
	// DataFile, when set, bypasses the candidate search.
	DataFile string `mapstructure:"data_file" yaml:"data_file"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// HTTP API
	ListenAddr      string `mapstructure:"listen_addr" yaml:"listen_addr"`
	ReadTimeoutSec  int    `mapstructure:"read_timeout_sec" yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `mapstructure:"write_timeout_sec" yaml:"write_timeout_sec"`

	ExportDir string `mapstructure:"export_dir" yaml:"export_dir"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".urbanpulse"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.urbanpulse/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. CLI flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("URBANPULSE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_root", ".")
	v.SetDefault("data_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("read_timeout_sec", 5)
	v.SetDefault("write_timeout_sec", 10)
	v.SetDefault("export_dir", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ExportDir == "" {
		c.ExportDir = filepath.Join(c.DataRoot, "exports")
	}
	return &c, nil
}

// Candidates returns the dataset paths to try, honoring DataFile.
func (c *Global) Candidates() []string {
	if c.DataFile != "" {
		return []string{c.DataFile}
	}
	return dataset.DefaultCandidates(c.DataRoot)
}
