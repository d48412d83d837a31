package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the .voidui.yaml project configuration.
type Config struct {
	RegistryURL   string   `yaml:"registry_url"`
	ComponentsDir string   `yaml:"components_dir"`
	Extension     string   `yaml:"extension,omitempty"`
	Installer     []string `yaml:"installer,omitempty"`
	ChangelogDir  string   `yaml:"changelog_dir,omitempty"`
}

// DefaultConfig returns the starter configuration written by init.
func DefaultConfig(registryURL string) Config {
	return Config{
		RegistryURL:   registryURL,
		ComponentsDir: "components/ui",
		Extension:     ".tsx",
		Installer:     []string{"npx", "voidui-install", "{name}"},
		ChangelogDir:  "changelogs",
	}
}

// LoadConfig reads and validates a .voidui.yaml file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates .voidui.yaml content.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig validates and writes a config to disk.
func SaveConfig(path string, cfg Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.RegistryURL == "" {
		return fmt.Errorf("config: registry_url is required")
	}
	if cfg.ComponentsDir == "" {
		return fmt.Errorf("config: components_dir is required")
	}
	if err := validatePath(cfg.ComponentsDir, "components_dir"); err != nil {
		return err
	}
	if cfg.ChangelogDir != "" {
		if err := validatePath(cfg.ChangelogDir, "changelog_dir"); err != nil {
			return err
		}
	}
	if cfg.Extension != "" && !strings.HasPrefix(cfg.Extension, ".") {
		return fmt.Errorf("config: extension must start with a dot (got %q)", cfg.Extension)
	}
	return nil
}

// validatePath ensures a path is relative and does not escape the project.
func validatePath(p, label string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: %s: path must not escape project (contains ..): %s", label, p)
	}
	return nil
}
