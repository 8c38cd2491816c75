package config

import (
	"testing"
	"time"
)

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.SplashDelay != 2*time.Second {
		t.Errorf("Expected SplashDelay 2s, got %v", cfg.SplashDelay)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("Expected FrameInterval 16ms, got %v", cfg.FrameInterval)
	}
	if cfg.SpringFreq != 12.0 {
		t.Errorf("Expected SpringFreq 12.0, got %f", cfg.SpringFreq)
	}
	if cfg.ClippedDescriptionLines != 2 {
		t.Errorf("Expected ClippedDescriptionLines 2, got %d", cfg.ClippedDescriptionLines)
	}
	if cfg.ShareEndpoint == "" {
		t.Error("Expected a default ShareEndpoint")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestAppConfigWithOverrides(t *testing.T) {
	base := DefaultAppConfig()

	cfg := base.
		WithSplashDelay(0).
		WithShareEndpoint("https://relay.example/share").
		WithImageTimeout(time.Second)

	if cfg.SplashDelay != 0 {
		t.Errorf("Expected SplashDelay 0, got %v", cfg.SplashDelay)
	}
	if cfg.ShareEndpoint != "https://relay.example/share" {
		t.Errorf("Unexpected ShareEndpoint %q", cfg.ShareEndpoint)
	}
	if cfg.ImageTimeout != time.Second {
		t.Errorf("Expected ImageTimeout 1s, got %v", cfg.ImageTimeout)
	}

	// With* must not mutate the receiver.
	if base.SplashDelay != 2*time.Second {
		t.Error("Expected base config untouched by With* chain")
	}
}

func TestAppConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{name: "valid default config", cfg: DefaultAppConfig(), wantErr: false},
		{name: "zero splash is allowed", cfg: DefaultAppConfig().WithSplashDelay(0), wantErr: false},
		{name: "negative splash", cfg: DefaultAppConfig().WithSplashDelay(-time.Second), wantErr: true},
		{name: "zero frame interval", cfg: DefaultAppConfig().WithFrameInterval(0), wantErr: true},
		{name: "empty share endpoint", cfg: DefaultAppConfig().WithShareEndpoint(""), wantErr: true},
		{
			name: "damping out of range",
			cfg: func() AppConfig {
				c := DefaultAppConfig()
				c.SpringDamping = 1.5
				return c
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
