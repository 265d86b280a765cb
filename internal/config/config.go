package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"solar-advisor/internal/model"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
// Environment variables override file values; see the env tags.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Webhook    WebhookConfig    `yaml:"webhook"`
	Prediction PredictionConfig `yaml:"prediction"`
	Forecast   ForecastConfig   `yaml:"forecast"`
	Projection ProjectionConfig `yaml:"projection"`
}

type ServerConfig struct {
	Port           string   `yaml:"port" env:"API_PORT"`
	Env            string   `yaml:"env" env:"API_ENV"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// WebhookConfig points at the external workflow that produces analysis and
// recommendation text.
type WebhookConfig struct {
	URL     string        `yaml:"url" env:"WEBHOOK_URL"`
	Timeout time.Duration `yaml:"timeout" env:"WEBHOOK_TIMEOUT"`
	// RepairJSON fixes syntax problems (code fences, trailing commas) in the
	// webhook body before it is decoded.
	RepairJSON bool `yaml:"repair_json" env:"WEBHOOK_REPAIR_JSON"`
}

// PredictionConfig points at a rainy-day prediction service. When URL is
// empty the API server predicts in-process from Forecast.ModelFile.
type PredictionConfig struct {
	URL     string        `yaml:"url" env:"PREDICTION_URL"`
	Timeout time.Duration `yaml:"timeout" env:"PREDICTION_TIMEOUT"`
}

type ForecastConfig struct {
	ModelFile string `yaml:"model_file" env:"RAIN_MODEL_FILE"`
}

type ProjectionConfig struct {
	PeakSunHours          float64 `yaml:"peak_sun_hours" env:"PEAK_SUN_HOURS"`
	InstallationCostPerKW float64 `yaml:"installation_cost_per_kw" env:"INSTALLATION_COST_PER_KW"`
	RainyDayDerate        float64 `yaml:"rainy_day_derate" env:"RAINY_DAY_DERATE"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	p := model.DefaultProjectionParams()
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		Webhook: WebhookConfig{
			Timeout:    60 * time.Second,
			RepairJSON: true,
		},
		Prediction: PredictionConfig{
			Timeout: 10 * time.Second,
		},
		Forecast: ForecastConfig{
			ModelFile: "./data/rain_model.yaml",
		},
		Projection: ProjectionConfig{
			PeakSunHours:          p.PeakSunHours,
			InstallationCostPerKW: p.InstallationCostPerKW,
			RainyDayDerate:        p.RainyDayDerate,
		},
	}
}

// Load reads path (optional), applies environment overrides and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// An empty path yields the defaults plus environment overrides.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if err := validateURL("webhook.url", c.Webhook.URL); err != nil {
		return err
	}
	if err := validateURL("prediction.url", c.Prediction.URL); err != nil {
		return err
	}
	if c.Webhook.Timeout < 0 || c.Prediction.Timeout < 0 {
		return errors.New("timeouts must be >= 0")
	}
	p := c.Projection
	if p.PeakSunHours <= 0 || p.PeakSunHours > 24 {
		return errors.New("projection.peak_sun_hours must be in (0, 24]")
	}
	if p.InstallationCostPerKW < 0 {
		return errors.New("projection.installation_cost_per_kw must be >= 0")
	}
	if p.RainyDayDerate < 0 || p.RainyDayDerate > 1 {
		return errors.New("projection.rainy_day_derate must be in [0, 1]")
	}
	return nil
}

// Production reports whether the server runs in release mode.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}

func (p ProjectionConfig) ToModelParams() model.ProjectionParams {
	return model.ProjectionParams{
		PeakSunHours:          p.PeakSunHours,
		InstallationCostPerKW: p.InstallationCostPerKW,
		RainyDayDerate:        p.RainyDayDerate,
	}
}

// validateURL accepts an empty value; anything else must be an absolute http(s) URL.
func validateURL(key, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s invalid: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", key)
	}
	return nil
}
