package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type RDFConfig struct {
	// OutputDir is the root for generated ontology documents: per-user
	// pairs under usuarios/, bulk table pairs under instancias/.
	OutputDir string `toml:"output_dir"`
}

type AuthConfig struct {
	BcryptCost int `toml:"bcrypt_cost"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	RDF      RDFConfig      `toml:"rdf"`
	Auth     AuthConfig     `toml:"auth"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "3000"},
		Database: DatabaseConfig{Path: "noticias.db"},
		RDF:      RDFConfig{OutputDir: "ontologias"},
		Auth:     AuthConfig{BcryptCost: 10},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}
