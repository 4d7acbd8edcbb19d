package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the project configuration file searched for by the CLI.
const ConfigFileName = "rcv.toml"

// Config is the rcv project configuration.
type Config struct {
	Project ProjectConfig `toml:"project"`
	Run     RunConfig     `toml:"run"`
}

// ProjectConfig describes the project.
type ProjectConfig struct {
	Name string `toml:"name"`
}

// RunConfig controls the run command.
type RunConfig struct {
	DumpTokens bool   `toml:"dump_tokens"` // print the token stream before executing
	Language   string `toml:"language"`    // diagnostic language override ("en"/"zh")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Name: "rcv",
		},
	}
}

// FindAndLoad searches upward from startDir for rcv.toml and loads it.
// When no file is found the defaults are returned.
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return cfg, configPath, nil
}

// FindConfigFile searches upward from startDir for rcv.toml.
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// reached the filesystem root
			return ""
		}
		dir = parent
	}
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	if cfg.Project.Name == "" {
		cfg.Project.Name = "rcv"
	}

	return &cfg, nil
}
