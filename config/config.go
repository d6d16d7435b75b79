package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for mvnup. Boolean processing flags
// use pointers so an unset value defaults to true.
type Config struct {
	Repositories []RepositoryConfig `yaml:"repositories"`

	// IncludesList and ExcludesList are single comma-delimited pattern
	// strings. When set they win over the explicit Includes/Excludes lists.
	IncludesList string   `yaml:"includesList"`
	Includes     []string `yaml:"includes"`
	ExcludesList string   `yaml:"excludesList"`
	Excludes     []string `yaml:"excludes"`

	ProcessDependencies         *bool `yaml:"processDependencies"`
	ProcessDependencyManagement *bool `yaml:"processDependencyManagement"`

	AllowSnapshots bool   `yaml:"allowSnapshots"`
	Verbose        bool   `yaml:"verbose"`
	Scope          string `yaml:"scope"`
}

// RepositoryConfig describes one remote repository to consult for metadata.
type RepositoryConfig struct {
	ID  string `yaml:"id"`
	URL string `yaml:"url"` // may reference ${ENV_VAR}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// in repository URLs.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for i := range cfg.Repositories {
		cfg.Repositories[i].URL = expandEnv(cfg.Repositories[i].URL)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".mvnup.yaml",
		".mvnup.yml",
		"mvnup.yaml",
		"mvnup.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// IsProcessingDependencies is true unless explicitly disabled.
func (c *Config) IsProcessingDependencies() bool {
	return c.ProcessDependencies == nil || *c.ProcessDependencies
}

// IsProcessingDependencyManagement is true unless explicitly disabled.
func (c *Config) IsProcessingDependencyManagement() bool {
	return c.ProcessDependencyManagement == nil || *c.ProcessDependencyManagement
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	for i, r := range cfg.Repositories {
		if r.URL == "" {
			return fmt.Errorf("repositories[%d].url is required", i)
		}
	}
	return nil
}
