package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Fc != 21 || cfg.Fy != 420 || cfg.Cover != 40 {
		t.Errorf("defaults = (%v, %v, %v), want (21, 420, 40)", cfg.Fc, cfg.Fy, cfg.Cover)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GORCC_DEFAULT_FC", "28")
	t.Setenv("GORCC_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Fc != 28 {
		t.Errorf("Fc = %v, want 28", cfg.Fc)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestMustLoadFallsBack(t *testing.T) {
	t.Setenv("GORCC_DEFAULT_FY", "not-a-number")

	cfg := MustLoad()
	if cfg.Fy != 420 {
		t.Errorf("Fy fallback = %v, want 420", cfg.Fy)
	}
}
