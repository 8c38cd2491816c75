// Package config holds the tunable parameters of the allstars TUI.
package config

import "time"

// AppConfig contains configurable parameters for the application.
// Use DefaultAppConfig() to get sensible defaults, then override as
// needed.
type AppConfig struct {
	// Startup
	SplashDelay time.Duration // Fixed full-screen loading delay at feed mount (default: 2s)

	// Animation
	FrameInterval  time.Duration // Animation frame tick (default: 16ms, ~60fps)
	SpringFreq     float64       // Angular frequency for UI springs (default: 12.0)
	SpringDamping  float64       // Damping ratio for UI springs (default: 0.9)
	FillSpringFreq float64       // Frequency for poll result fills; lower so bars sweep (default: 5.0)

	// Boundaries
	ShareEndpoint string        // Relay URL the share payload is posted to (default: local stub)
	ImageTimeout  time.Duration // Timeout for the per-post image probe (default: 5s)

	// Rendering
	ClippedDescriptionLines int // Description lines shown before "Read more" (default: 2)
}

// DefaultAppConfig returns an AppConfig with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		SplashDelay: 2 * time.Second,

		FrameInterval:  16 * time.Millisecond,
		SpringFreq:     12.0,
		SpringDamping:  0.9,
		FillSpringFreq: 5.0,

		ShareEndpoint: "http://127.0.0.1:8723/share",
		ImageTimeout:  5 * time.Second,

		ClippedDescriptionLines: 2,
	}
}

// WithSplashDelay returns a copy of the config with a modified splash delay.
func (c AppConfig) WithSplashDelay(d time.Duration) AppConfig {
	c.SplashDelay = d
	return c
}

// WithShareEndpoint returns a copy of the config with a modified share relay URL.
func (c AppConfig) WithShareEndpoint(url string) AppConfig {
	c.ShareEndpoint = url
	return c
}

// WithFrameInterval returns a copy of the config with a modified frame tick.
func (c AppConfig) WithFrameInterval(d time.Duration) AppConfig {
	c.FrameInterval = d
	return c
}

// WithImageTimeout returns a copy of the config with a modified image probe timeout.
func (c AppConfig) WithImageTimeout(d time.Duration) AppConfig {
	c.ImageTimeout = d
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c AppConfig) Validate() error {
	if c.SplashDelay < 0 {
		return &ConfigError{Field: "SplashDelay", Message: "must not be negative"}
	}
	if c.FrameInterval <= 0 {
		return &ConfigError{Field: "FrameInterval", Message: "must be positive"}
	}
	if c.SpringFreq <= 0 {
		return &ConfigError{Field: "SpringFreq", Message: "must be positive"}
	}
	if c.SpringDamping <= 0 || c.SpringDamping > 1 {
		return &ConfigError{Field: "SpringDamping", Message: "must be in (0, 1]"}
	}
	if c.FillSpringFreq <= 0 {
		return &ConfigError{Field: "FillSpringFreq", Message: "must be positive"}
	}
	if c.ShareEndpoint == "" {
		return &ConfigError{Field: "ShareEndpoint", Message: "must not be empty"}
	}
	if c.ClippedDescriptionLines <= 0 {
		return &ConfigError{Field: "ClippedDescriptionLines", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
