package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("STATSBOMB_COMPETITION_ID", "")
	t.Setenv("STATSBOMB_SEASON_ID", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != DataSourceMemory {
		t.Fatalf("unexpected data source: %q", cfg.DataSource)
	}
	if cfg.StatsBombCompetitionID != 11 || cfg.StatsBombSeasonID != 27 {
		t.Fatalf("unexpected competition/season: %d/%d", cfg.StatsBombCompetitionID, cfg.StatsBombSeasonID)
	}
	if cfg.CacheTTL != 10*time.Minute || !cfg.CacheEnabled || !cfg.CacheWarmup {
		t.Fatalf("unexpected cache config: %+v", cfg)
	}
	if cfg.ServiceName != "laliga-insights-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
}

func TestLoad_DataSourceValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("postgres accepted case-insensitively", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", " Postgres ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DataSource != DataSourcePostgres {
			t.Fatalf("unexpected data source: %q", cfg.DataSource)
		}
	})

	t.Run("unknown source rejected", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown DATA_SOURCE")
		}
	})
}

func TestLoad_StatsBombParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("STATSBOMB_DATA_DIR", "/srv/open-data/data")
		t.Setenv("STATSBOMB_LOAD_WORKERS", "4")
		t.Setenv("STATSBOMB_STRICT", "true")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StatsBombDataDir != "/srv/open-data/data" || cfg.StatsBombLoadWorkers != 4 || !cfg.StatsBombStrict {
			t.Fatalf("unexpected statsbomb config: %+v", cfg)
		}
	})

	t.Run("zero workers rejected", func(t *testing.T) {
		t.Setenv("STATSBOMB_LOAD_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for STATSBOMB_LOAD_WORKERS=0")
		}
	})

	t.Run("non numeric season rejected", func(t *testing.T) {
		t.Setenv("STATSBOMB_SEASON_ID", "2015/16")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non numeric STATSBOMB_SEASON_ID")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-tenant=a, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "laliga-insights-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "laliga-insights-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_DBConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("invalid prepared binary flag", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})

	t.Run("circuit settings", func(t *testing.T) {
		t.Setenv("DB_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("DB_CIRCUIT_OPEN_TIMEOUT", "30s")
		t.Setenv("DB_MAX_OPEN_CONNS", "25")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBCircuitFailureCount != 3 || cfg.DBCircuitOpenTimeout != 30*time.Second || cfg.DBMaxOpenConns != 25 {
			t.Fatalf("unexpected db config: %+v", cfg)
		}
	})

	t.Run("zero open timeout rejected", func(t *testing.T) {
		t.Setenv("DB_CIRCUIT_OPEN_TIMEOUT", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DB_CIRCUIT_OPEN_TIMEOUT=0s")
		}
	})
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insights.env")
	content := "STATSBOMB_LOAD_WORKERS=3\nCACHE_TTL=90s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "45s")
	t.Setenv("STATSBOMB_LOAD_WORKERS", "")
	if err := os.Unsetenv("STATSBOMB_LOAD_WORKERS"); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheTTL != 45*time.Second {
		t.Fatalf("expected process env to win, got %s", cfg.CacheTTL)
	}
	if cfg.StatsBombLoadWorkers != 3 {
		t.Fatalf("expected workers from env file, got %d", cfg.StatsBombLoadWorkers)
	}
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", EnvDev)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing ENV_FILE")
	}
}
