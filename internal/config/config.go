// Package config loads and saves splitsnap configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultServerURL matches a locally run balance service.
const DefaultServerURL = "http://127.0.0.1:5000"

// Config holds all splitsnap configuration.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Currency   CurrencyConfig   `toml:"currency"`
	Payment    PaymentConfig    `toml:"payment"`
	Surcharge  SurchargeConfig  `toml:"surcharge"`
	Voice      VoiceConfig      `toml:"voice"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// ServerConfig points at the external balance service.
type ServerConfig struct {
	BaseURL string `toml:"base_url"`
}

// CurrencyConfig controls display formatting only; the service never
// sees a currency field on expenses.
type CurrencyConfig struct {
	Symbol string `toml:"symbol"`
	Code   string `toml:"code"`
}

// PaymentConfig holds the UPI collection address used in payment QR codes.
type PaymentConfig struct {
	VPA       string `toml:"vpa"`
	PayeeName string `toml:"payee_name,omitempty"`
}

// SurchargeConfig is the optional smart-tax step applied before an
// expense is submitted. Off by default; the server is tolerant either way.
type SurchargeConfig struct {
	Enabled    bool    `toml:"enabled"`
	GSTPercent float64 `toml:"gst_percent"`
	TipPercent float64 `toml:"tip_percent"`
}

// VoiceConfig holds transcription settings for voice expense entry.
type VoiceConfig struct {
	OpenAIKey string `toml:"openai_api_key,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server:   ServerConfig{BaseURL: DefaultServerURL},
		Currency: CurrencyConfig{Symbol: "₹", Code: "INR"},
		Payment:  PaymentConfig{VPA: "hackathon@upi"},
		Surcharge: SurchargeConfig{
			GSTPercent: 5,
			TipPercent: 10,
		},
		Appearance: AppearanceConfig{Theme: "snap-dark"},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "splitsnap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "splitsnap")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env in the working directory is loaded first so env overrides work
// in both dev and installed setups.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ServerURL returns the balance service URL from env var or config, in that order.
func ServerURL(cfg Config) string {
	if u := os.Getenv("SPLITSNAP_SERVER"); u != "" {
		return u
	}
	if cfg.Server.BaseURL != "" {
		return cfg.Server.BaseURL
	}
	return DefaultServerURL
}

// OpenAIKey returns the transcription key from env var or config, in that order.
func OpenAIKey(cfg Config) string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return cfg.Voice.OpenAIKey
}
