package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const devDatabaseURL = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB         DBConfig         `toml:"database"`
	Generation GenerationConfig `toml:"generation"`
	Log        LogConfig        `toml:"log"`

	DevMode bool `toml:"-" env:"DEV_MODE"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string" env:"FITLOG_DATABASE_URL"` // The entire DB connection string.
	TursoURL         string `toml:"-" env:"TURSO_DATABASE_URL"`
}

type GenerationConfig struct {
	APIKey  string `toml:"api_key" env:"OPENAI_API_KEY"`
	Model   string `toml:"model" env:"FITLOG_OPENAI_MODEL"`
	BaseURL string `toml:"base_url" env:"FITLOG_OPENAI_BASE_URL"`
}

type LogConfig struct {
	Level       string `toml:"level" env:"FITLOG_LOG_LEVEL"`
	File        string `toml:"file" env:"FITLOG_LOG_FILE"`
	LogToStdout bool   `toml:"log_to_stdout" env:"FITLOG_LOG_TO_STDOUT"`
}

// Dir returns ~/.config/fitlog, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "fitlog")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file, .env and the environment.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path, ".env")
}

// Load builds a Config from the TOML file at path, then the dotenv file, then
// the process environment. Later sources win. Missing files are skipped.
func Load(path, envFile string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	fileURL := cfg.DB.ConnectionString
	cfg.DB.ConnectionString = ""
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch {
	case cfg.DevMode:
		cfg.DB.ConnectionString = devDatabaseURL
	case cfg.DB.ConnectionString != "":
	case cfg.DB.TursoURL != "":
		cfg.DB.ConnectionString = cfg.DB.TursoURL
	default:
		cfg.DB.ConnectionString = fileURL
	}

	if cfg.DB.ConnectionString == "" {
		dir := filepath.Dir(path)
		cfg.DB.ConnectionString = filepath.Join(dir, "fitlog.db")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(path), "fitlog.log")
	}

	return &cfg, nil
}
