package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/locale"
	pkgconfig "github.com/starford/miti/pkg/config"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
	if cfg.Calendar.Lang() != locale.EN || cfg.Calendar.Kind() != calendar.BS {
		t.Errorf("defaults = %q %q", cfg.Calendar.Lang(), cfg.Calendar.Kind())
	}
	if cfg.API.RateLimit.Limiter() != nil {
		t.Error("rate limiting should be off by default")
	}
}

func TestCalendarConfig_Invalid(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"lang":   func(c *Config) { c.Calendar.DefaultLang = "fr" },
		"kind":   func(c *Config) { c.Calendar.DefaultKind = "lunar" },
		"layout": func(c *Config) { c.Calendar.DefaultLayout = "" },
		"tick":   func(c *Config) { c.Events.Tick = 10 * time.Millisecond },
		"watch":  func(c *Config) { c.Locale.Watch = true },
		"burst":  func(c *Config) { c.API.RateLimit.RPS = 5 },
		"rps":    func(c *Config) { c.API.RateLimit.RPS = -1 },
	} {
		cfg := NewDefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("MITI_TEST_TOKEN", "s3cret")
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
app:
  log_level: debug
  http:
    port: 9090
auth:
  mode: token
  token: ${MITI_TEST_TOKEN}
calendar:
  default_lang: np
  default_kind: ad
  default_layout: "MMMM D, YYYY"
events:
  tick: 30s
api:
  rate_limit:
    rps: 10
    burst: 20
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.HTTP.Address() != ":9090" || cfg.Auth.Token != "s3cret" {
		t.Errorf("app/auth = %+v %+v", cfg.App, cfg.Auth)
	}
	if cfg.Calendar.Lang() != locale.NP || cfg.Calendar.Kind() != calendar.AD {
		t.Errorf("calendar = %+v", cfg.Calendar)
	}
	if cfg.Events.Tick != 30*time.Second {
		t.Errorf("tick = %v", cfg.Events.Tick)
	}
	if l := cfg.API.RateLimit.Limiter(); l == nil || l.Burst() != 20 {
		t.Errorf("limiter = %v", l)
	}
	// Sections absent from the file keep their defaults.
	if !cfg.API.Metrics {
		t.Error("metrics default lost")
	}
}
