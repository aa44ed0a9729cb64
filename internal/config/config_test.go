package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://dog.ceo/api/" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.HarvestInterval != 900*time.Second {
		t.Fatalf("HarvestInterval = %v", cfg.HarvestInterval)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.StorageTTL != 5*24*time.Hour {
		t.Fatalf("StorageTTL = %v", cfg.StorageTTL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DOGCEO_BASE_URL", "http://mirror.local/api/")
	t.Setenv("HARVEST_INTERVAL", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://mirror.local/api/" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.HarvestInterval != time.Minute {
		t.Fatalf("HarvestInterval = %v", cfg.HarvestInterval)
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("HARVEST_INTERVAL", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero harvest_interval")
	}
}
