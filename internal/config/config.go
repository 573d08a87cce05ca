package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the application config, loaded from dummyforge.config.json plus
// environment variables. It covers tool behavior, not generation requests;
// those live in their own YAML/JSON files.
type Config struct {
	ExportPath string   `json:"export_path" mapstructure:"export_path"`
	TableName  string   `json:"table_name" mapstructure:"table_name"`
	Database   Database `json:"database" mapstructure:"database"`
	Server     Server   `json:"server" mapstructure:"server"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Server struct {
	Port int `json:"port" mapstructure:"port"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Defaults
	if cfg.ExportPath == "" {
		cfg.ExportPath = "exports"
	}
	if cfg.TableName == "" {
		cfg.TableName = "generated_data"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.ExportPath == "" {
		return fmt.Errorf("export_path cannot be empty")
	}

	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
