package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the user-facing cvb configuration.
type Config struct {
	// Template is the selected resume template id. It is the only piece
	// of wizard state that survives between runs.
	Template  string `mapstructure:"template" yaml:"template,omitempty"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir,omitempty"`
	// Schema is an optional forms file replacing the bundled one.
	Schema string `mapstructure:"schema" yaml:"schema,omitempty"`
}

// Keys lists the settable keys in display order.
var Keys = []string{"template", "output_dir", "schema"}

var (
	configFile string
	v          *viper.Viper
)

func init() {
	Reload()
}

// Reload resolves the config path from CVB_CONFIG or the home directory
// and rereads the file. Call it again once .env has been loaded.
func Reload() {
	configFile = defaultPath()
	v = newViper()
}

func defaultPath() string {
	if p := os.Getenv("CVB_CONFIG"); p != "" {
		return p
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "cvb", "config.yaml")
	}
	return ".cvb-config.yaml"
}

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetConfigFile(configFile)
	nv.SetConfigType("yaml")

	nv.SetDefault("output_dir", ".")

	nv.SetEnvPrefix("CVB")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	// Missing file is fine; it is created on first Set.
	_ = nv.ReadInConfig()
	return nv
}

// Path returns the config file location.
func Path() string {
	return configFile
}

// Load returns the merged config: file, env and defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func validKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns one config value.
func Get(key string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return v.GetString(key), nil
}

// Set writes one config value to the file.
func Set(key, value string) error {
	if !validKey(key) {
		return fmt.Errorf("unknown config key: %s (valid: %s)", key, strings.Join(Keys, ", "))
	}

	cfg, err := readFile()
	if err != nil {
		return err
	}
	switch key {
	case "template":
		cfg.Template = value
	case "output_dir":
		cfg.OutputDir = value
	case "schema":
		cfg.Schema = value
	}

	v.Set(key, value) // keep viper in sync
	return writeConfig(cfg)
}

// All returns every key with its effective value.
func All() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		out[k] = v.GetString(k)
	}
	return out
}

// readFile loads only what is stored on disk, so that env overrides and
// defaults are never written back.
func readFile() (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configFile, err)
	}
	return &cfg, nil
}

func writeConfig(cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(configFile, buf.Bytes(), 0o644)
}

// ResetForTest points the package at a config file inside dir (only use in
// tests).
func ResetForTest(dir string) {
	configFile = filepath.Join(dir, "config.yaml")
	v = newViper()
}
