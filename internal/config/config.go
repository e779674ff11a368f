package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mbourmaud/shade/internal/colorspace"
	"github.com/mbourmaud/shade/internal/export"
	"github.com/mbourmaud/shade/internal/logger"
	"github.com/mbourmaud/shade/internal/palette"
)

// FileName is the config file looked up in the working directory
const FileName = "shade.yaml"

// Config represents the shade configuration
type Config struct {
	Palette PaletteConfig `yaml:"palette"`
	Export  ExportConfig  `yaml:"export"`
	Redis   RedisConfig   `yaml:"redis"`
	Logging LoggingConfig `yaml:"logging"`
}

// PaletteConfig holds the starting point of a session
type PaletteConfig struct {
	Name string `yaml:"name"`
	Seed string `yaml:"seed"`
	Mode string `yaml:"mode"`
}

// ExportConfig contains export defaults
type ExportConfig struct {
	Format    string `yaml:"format"`
	Directory string `yaml:"directory,omitempty"`
}

// RedisConfig points at the palette library
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Palette: PaletteConfig{
			Name: palette.DefaultName,
			Seed: palette.DefaultHex,
			Mode: string(palette.DefaultMode),
		},
		Export: ExportConfig{
			Format: string(export.FormatCSS),
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			DB:     0,
			Prefix: "shade",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads and parses a shade.yaml file on top of the defaults
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault tries to load path (shade.yaml when empty), falling back to defaults
func LoadOrDefault(path string) *Config {
	if path == "" {
		path = filepath.Join(".", FileName)
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnv reads .env files (missing files are ignored) and applies SHADE_*
// overrides from the environment.
func (c *Config) LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	c.Palette.Name = getEnv("SHADE_PALETTE_NAME", c.Palette.Name)
	c.Palette.Seed = getEnv("SHADE_PALETTE_SEED", c.Palette.Seed)
	c.Palette.Mode = getEnv("SHADE_PALETTE_MODE", c.Palette.Mode)
	c.Export.Format = getEnv("SHADE_EXPORT_FORMAT", c.Export.Format)
	c.Export.Directory = getEnv("SHADE_EXPORT_DIR", c.Export.Directory)
	c.Redis.Addr = getEnv("SHADE_REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("SHADE_REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("SHADE_REDIS_DB", c.Redis.DB)
	c.Redis.Prefix = getEnv("SHADE_REDIS_PREFIX", c.Redis.Prefix)
	c.Logging.Level = getEnv("SHADE_LOG_LEVEL", c.Logging.Level)
	c.Logging.JSON = getEnvBool("SHADE_LOG_JSON", c.Logging.JSON)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, ok := colorspace.HexToRGB(c.Palette.Seed); !ok {
		return fmt.Errorf("palette.seed must be a 6-digit hex color, got %q", c.Palette.Seed)
	}

	if _, err := palette.ParseMode(c.Palette.Mode); err != nil {
		return fmt.Errorf("palette.mode: %w", err)
	}

	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}

	if strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required")
	}

	if c.Redis.DB < 0 || c.Redis.DB > 15 {
		return fmt.Errorf("redis.db must be between 0 and 15")
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}
