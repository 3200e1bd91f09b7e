package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "5000",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "dreamjobs",
			Database:  "main",
		},
		JWT: JWTConfig{
			Secret:         "test-secret",
			ExpirationMins: 60,
			Issuer:         "api.dreamjobs.dev",
			CookieName:     "token",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_EmptyAllowedOrigins(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.AllowedOrigins = []string{}

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for empty CORS_ALLOWED_ORIGINS")
	}
	if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("expected error to mention CORS_ALLOWED_ORIGINS, got: %v", err)
	}
}

func TestConfig_Validate_MissingDatabaseHost(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Host = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing DB_HOST")
	}
	if !strings.Contains(err.Error(), "DB_HOST") {
		t.Errorf("expected error to mention DB_HOST, got: %v", err)
	}
}

func TestConfig_Validate_MissingSecret(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.Secret = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing ACCESS_TOKEN_SECRET")
	}
	if !strings.Contains(err.Error(), "ACCESS_TOKEN_SECRET") {
		t.Errorf("expected error to mention ACCESS_TOKEN_SECRET, got: %v", err)
	}
}

func TestConfig_Validate_InvalidJWTExpiration(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.ExpirationMins = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for zero JWT_EXPIRATION_MINS")
	}
	if !strings.Contains(err.Error(), "JWT_EXPIRATION_MINS") {
		t.Errorf("expected error to mention JWT_EXPIRATION_MINS, got: %v", err)
	}
}

func TestConfig_Validate_MissingCookieName(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.CookieName = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SESSION_COOKIE_NAME")
	}
	if !strings.Contains(err.Error(), "SESSION_COOKIE_NAME") {
		t.Errorf("expected error to mention SESSION_COOKIE_NAME, got: %v", err)
	}
}

func TestConfig_Validate_CollectsMultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Database.Host = ""
	cfg.JWT.Secret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple invalid fields")
	}
	for _, want := range []string{"SERVER_PORT", "DB_HOST", "ACCESS_TOKEN_SECRET"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected joined error to mention %s, got: %v", want, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("expected default expiration 60 mins, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.JWT.CookieName != "token" {
		t.Errorf("expected default cookie name 'token', got %q", cfg.JWT.CookieName)
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := validBaseConfig()

	if !cfg.IsDevelopment() {
		t.Error("expected development mode")
	}

	cfg.Server.Env = "production"
	if cfg.IsDevelopment() {
		t.Error("expected production mode")
	}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction true")
	}
}
