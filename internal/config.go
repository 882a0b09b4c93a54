package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/time/rate"

	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/format"
	"github.com/starford/miti/internal/locale"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Auth     AuthConfig        `yaml:"auth"`
	Calendar CalendarConfig    `yaml:"calendar"`
	Locale   LocaleConfig      `yaml:"locale"`
	Events   EventsConfig      `yaml:"events"`
	API      APIConfig         `yaml:"api"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Calendar.Validate(); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	if err := c.Locale.Validate(); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if err := c.Events.Validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// CalendarConfig holds the defaults applied when a request leaves the
// language, calendar or layout empty.
type CalendarConfig struct {
	DefaultLang   string `yaml:"default_lang"`
	DefaultKind   string `yaml:"default_kind"`
	DefaultLayout string `yaml:"default_layout"`
}

// Validate validates the calendar configuration.
func (c *CalendarConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultLang, validation.Required, validation.By(func(v any) error {
			_, err := locale.ParseLang(v.(string))
			return err
		})),
		validation.Field(&c.DefaultKind, validation.Required, validation.By(func(v any) error {
			_, err := calendar.ParseKind(v.(string))
			return err
		})),
		validation.Field(&c.DefaultLayout, validation.Required),
	)
}

// Lang returns the parsed default language. Call after Validate.
func (c *CalendarConfig) Lang() locale.Lang {
	l, _ := locale.ParseLang(c.DefaultLang)
	return l
}

// Kind returns the parsed default calendar. Call after Validate.
func (c *CalendarConfig) Kind() calendar.Kind {
	k, _ := calendar.ParseKind(c.DefaultKind)
	return k
}

// LocaleConfig points at an optional YAML file that overrides the builtin
// names and digits.
type LocaleConfig struct {
	LabelsFile string `yaml:"labels_file"`
	Watch      bool   `yaml:"watch"`
}

// Validate validates the locale configuration.
func (c *LocaleConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LabelsFile, validation.When(c.Watch, validation.Required.Error("is required when watch is enabled"))),
	)
}

// EventsConfig holds the live event stream configuration.
type EventsConfig struct {
	// Tick is how often the current date is checked for a rollover.
	Tick time.Duration `yaml:"tick"`
}

// Validate validates the events configuration.
func (c *EventsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Tick, validation.Required, validation.Min(time.Second)),
	)
}

// APIConfig holds rate limiting and metrics settings.
type APIConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   bool            `yaml:"metrics"`
}

// Validate validates the API configuration.
func (c *APIConfig) Validate() error {
	return c.RateLimit.Validate()
}

// RateLimitConfig configures a token bucket shared by all API requests.
// An RPS of zero disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// Validate validates the rate limit configuration.
func (c *RateLimitConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RPS, validation.Min(0.0)),
		validation.Field(&c.Burst, validation.When(c.RPS > 0, validation.Required, validation.Min(1))),
	)
}

// Limiter returns the configured limiter, or nil when limiting is off.
func (c *RateLimitConfig) Limiter() *rate.Limiter {
	if c.RPS <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.RPS), c.Burst)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
		Calendar: CalendarConfig{
			DefaultLang:   string(locale.EN),
			DefaultKind:   string(calendar.BS),
			DefaultLayout: format.Default,
		},
		Events: EventsConfig{
			Tick: time.Minute,
		},
		API: APIConfig{
			Metrics: true,
		},
	}
}
