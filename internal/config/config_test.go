package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Palette.Name != "Sherwood Green" {
		t.Errorf("expected palette name 'Sherwood Green', got '%s'", cfg.Palette.Name)
	}
	if cfg.Palette.Seed != "#104635" {
		t.Errorf("expected seed '#104635', got '%s'", cfg.Palette.Seed)
	}
	if cfg.Palette.Mode != "shades" {
		t.Errorf("expected mode 'shades', got '%s'", cfg.Palette.Mode)
	}
	if cfg.Export.Format != "css" {
		t.Errorf("expected export format 'css', got '%s'", cfg.Export.Format)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr 'localhost:6379', got '%s'", cfg.Redis.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	content := `palette:
  name: Brand Blue
  seed: "#3b82f6"
  mode: triadic
export:
  format: json
  directory: tokens
redis:
  addr: redis:6379
  db: 2
  prefix: brand
logging:
  level: debug
  json: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Palette.Name != "Brand Blue" {
		t.Errorf("expected palette name 'Brand Blue', got '%s'", cfg.Palette.Name)
	}
	if cfg.Palette.Seed != "#3b82f6" {
		t.Errorf("expected seed '#3b82f6', got '%s'", cfg.Palette.Seed)
	}
	if cfg.Palette.Mode != "triadic" {
		t.Errorf("expected mode 'triadic', got '%s'", cfg.Palette.Mode)
	}
	if cfg.Export.Format != "json" || cfg.Export.Directory != "tokens" {
		t.Errorf("unexpected export config: %+v", cfg.Export)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 || cfg.Redis.Prefix != "brand" {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.JSON {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadNonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/shade.yaml")
	if err == nil {
		t.Error("expected error when loading non-existent config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	content := `palette:
  name: [invalid yaml
  this is not valid
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error when loading invalid YAML config")
	}
}

func TestLoadPartialConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	content := `palette:
  mode: analogous
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Palette.Mode != "analogous" {
		t.Errorf("expected mode 'analogous', got '%s'", cfg.Palette.Mode)
	}
	if cfg.Palette.Seed != "#104635" {
		t.Errorf("expected default seed, got '%s'", cfg.Palette.Seed)
	}
	if cfg.Export.Format != "css" {
		t.Errorf("expected default export format, got '%s'", cfg.Export.Format)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg.Palette.Name != Default().Palette.Name {
		t.Errorf("expected defaults for a missing file, got %+v", cfg.Palette)
	}
}

func TestSave(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Palette.Name = "Saved"
	cfg.Palette.Mode = "complementary"
	cfg.Redis.DB = 3

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Palette.Name != "Saved" || loaded.Palette.Mode != "complementary" {
		t.Errorf("saved palette mismatch: %+v", loaded.Palette)
	}
	if loaded.Redis.DB != 3 {
		t.Errorf("saved redis db mismatch: %d", loaded.Redis.DB)
	}
}

func TestSaveInvalidPath(t *testing.T) {
	if err := Default().Save("/nonexistent/directory/shade.yaml"); err == nil {
		t.Error("expected error when saving to invalid path")
	}
}

func TestLoadEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SHADE_PALETTE_MODE=triadic\nSHADE_REDIS_DB=4\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	t.Setenv("SHADE_EXPORT_FORMAT", "scss")
	t.Setenv("SHADE_LOG_JSON", "true")
	t.Setenv("SHADE_REDIS_DB", "7") // already set, the .env file must not override it

	// godotenv only fills variables that are absent from the environment
	os.Unsetenv("SHADE_PALETTE_MODE")
	t.Cleanup(func() { os.Unsetenv("SHADE_PALETTE_MODE") })

	cfg := Default()
	cfg.LoadEnv(envFile)

	if cfg.Export.Format != "scss" {
		t.Errorf("expected export format from env, got '%s'", cfg.Export.Format)
	}
	if !cfg.Logging.JSON {
		t.Error("expected logging.json from env")
	}
	if cfg.Redis.DB != 7 {
		t.Errorf("expected redis db 7, got %d", cfg.Redis.DB)
	}
	if cfg.Palette.Mode != "triadic" {
		t.Errorf("expected mode from .env file, got '%s'", cfg.Palette.Mode)
	}
}

func TestLoadEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("SHADE_REDIS_DB", "many")
	t.Setenv("SHADE_LOG_JSON", "perhaps")

	cfg := Default()
	cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))

	if cfg.Redis.DB != 0 {
		t.Errorf("expected default redis db, got %d", cfg.Redis.DB)
	}
	if cfg.Logging.JSON {
		t.Error("expected default logging.json")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid default config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "seed without hash is fine",
			mutate:  func(c *Config) { c.Palette.Seed = "3b82f6" },
			wantErr: false,
		},
		{
			name:    "bad seed",
			mutate:  func(c *Config) { c.Palette.Seed = "#abc" },
			wantErr: true,
			errMsg:  "palette.seed",
		},
		{
			name:    "unknown mode",
			mutate:  func(c *Config) { c.Palette.Mode = "tetradic" },
			wantErr: true,
			errMsg:  "palette.mode",
		},
		{
			name:    "unknown export format",
			mutate:  func(c *Config) { c.Export.Format = "less" },
			wantErr: true,
			errMsg:  "export.format",
		},
		{
			name:    "missing redis addr",
			mutate:  func(c *Config) { c.Redis.Addr = " " },
			wantErr: true,
			errMsg:  "redis.addr is required",
		},
		{
			name:    "redis db out of range",
			mutate:  func(c *Config) { c.Redis.DB = 16 },
			wantErr: true,
			errMsg:  "redis.db must be between 0 and 15",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "chatty" },
			wantErr: true,
			errMsg:  "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}
