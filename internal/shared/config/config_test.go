package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "PORT", "OBJECT_STORE", "CACHE_TTL", "RATE_LIMIT_RPS", "LOG_FORMAT", "PNG_DEFAULT_SIZE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Env != "dev" || cfg.Port != "8080" || cfg.ObjectStoreType != "local" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Fatalf("unexpected cache ttl %v", cfg.CacheTTL)
	}
	if cfg.LogFormat != "console" {
		t.Fatalf("expected console logs in dev, got %q", cfg.LogFormat)
	}
	if cfg.PNGDefaultSize != 512 {
		t.Fatalf("unexpected png size %d", cfg.PNGDefaultSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "nope")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.test , ,https://b.test")

	cfg := Load()
	if cfg.Env != "production" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected env %q / %q", cfg.Env, cfg.LogFormat)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("unexpected store %q", cfg.ObjectStoreType)
	}
	if cfg.CacheTTL != 90*time.Second || cfg.RateLimitRPS != 2.5 {
		t.Fatalf("unexpected numeric config %+v", cfg)
	}
	if cfg.RateLimitBurst != 20 {
		t.Fatalf("invalid burst should fall back, got %d", cfg.RateLimitBurst)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.test" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadEnvFilesDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("LOGO_TEST_A=from-file\nLOGO_TEST_B=\"quoted\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOGO_TEST_A", "from-env")
	t.Setenv("LOGO_TEST_B", "")
	os.Unsetenv("LOGO_TEST_B")

	loadEnvFiles(path, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("LOGO_TEST_A"); got != "from-env" {
		t.Fatalf("expected env to win, got %q", got)
	}
	if got := os.Getenv("LOGO_TEST_B"); got != "quoted" {
		t.Fatalf("expected file value, got %q", got)
	}
}
