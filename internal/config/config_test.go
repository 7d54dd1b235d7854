package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "REDIS_URL", "SERVER_PORT",
		"QUOTE_BASE_FEE", "DEFAULT_QUOTE_HOURS", "RATING_CACHE_TTL", "SEED_DEFAULT_DATA",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.QuoteBaseFee != 75.0 {
		t.Errorf("QuoteBaseFee = %v, want 75.0", cfg.QuoteBaseFee)
	}
	if cfg.DefaultQuoteHours != 24 {
		t.Errorf("DefaultQuoteHours = %d, want 24", cfg.DefaultQuoteHours)
	}
	if cfg.RatingCacheTTL != 1800 {
		t.Errorf("RatingCacheTTL = %d, want 1800", cfg.RatingCacheTTL)
	}
	if !cfg.SeedDefaultData {
		t.Error("SeedDefaultData should default to true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("QUOTE_BASE_FEE", "120.5")
	t.Setenv("DEFAULT_QUOTE_HOURS", "48")
	t.Setenv("SEED_DEFAULT_DATA", "false")

	cfg := Load()

	if cfg.ServerPort != "9000" {
		t.Errorf("ServerPort = %q, want 9000", cfg.ServerPort)
	}
	if cfg.QuoteBaseFee != 120.5 {
		t.Errorf("QuoteBaseFee = %v, want 120.5", cfg.QuoteBaseFee)
	}
	if cfg.DefaultQuoteHours != 48 {
		t.Errorf("DefaultQuoteHours = %d, want 48", cfg.DefaultQuoteHours)
	}
	if cfg.SeedDefaultData {
		t.Error("SeedDefaultData should be overridable to false")
	}
}

func TestMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("QUOTE_BASE_FEE", "not-a-number")
	t.Setenv("DEFAULT_QUOTE_HOURS", "soon")

	cfg := Load()

	if cfg.QuoteBaseFee != 75.0 {
		t.Errorf("QuoteBaseFee = %v, want default on parse failure", cfg.QuoteBaseFee)
	}
	if cfg.DefaultQuoteHours != 24 {
		t.Errorf("DefaultQuoteHours = %d, want default on parse failure", cfg.DefaultQuoteHours)
	}
}
