package config

import "testing"

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	if cfg.Theme != "basic" {
		t.Errorf("default theme = %q; want basic", cfg.Theme)
	}
	if cfg.ASCIIPieces {
		t.Error("ASCIIPieces should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Theme = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty theme passed validation")
	}
}
