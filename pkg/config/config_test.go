package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8090" {
		t.Errorf("Expected Port to be 8090, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Database.MaxConns != 10 {
		t.Errorf("Expected DB MaxConns to be 10, got %d", cfg.Database.MaxConns)
	}

	if cfg.Analysis.MinObservations != 10 {
		t.Errorf("Expected MinObservations to be 10, got %d", cfg.Analysis.MinObservations)
	}

	wantFrom := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.Analysis.DefaultFrom.Equal(wantFrom) {
		t.Errorf("Expected DefaultFrom to be %v, got %v", wantFrom, cfg.Analysis.DefaultFrom)
	}

	wantTo := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	if !cfg.Analysis.DefaultTo.Equal(wantTo) {
		t.Errorf("Expected DefaultTo to be %v, got %v", wantTo, cfg.Analysis.DefaultTo)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("DB_MAX_CONNS", "50")
	os.Setenv("MIN_OBSERVATIONS", "24")
	os.Setenv("LOG_LEVEL", "info")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("DB_MAX_CONNS")
		os.Unsetenv("MIN_OBSERVATIONS")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Database.MaxConns != 50 {
		t.Errorf("Expected DB MaxConns to be 50, got %d", cfg.Database.MaxConns)
	}

	if cfg.Analysis.MinObservations != 24 {
		t.Errorf("Expected MinObservations to be 24, got %d", cfg.Analysis.MinObservations)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be info, got %s", cfg.LogLevel)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "invalid")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateMinObservations(t *testing.T) {
	os.Setenv("MIN_OBSERVATIONS", "1")
	defer os.Unsetenv("MIN_OBSERVATIONS")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when MIN_OBSERVATIONS is below 2, got nil")
	}
}

func TestValidateDateRange(t *testing.T) {
	os.Setenv("ANALYSIS_DEFAULT_FROM", "2025-01-30")
	os.Setenv("ANALYSIS_DEFAULT_TO", "2005-01-01")

	defer func() {
		os.Unsetenv("ANALYSIS_DEFAULT_FROM")
		os.Unsetenv("ANALYSIS_DEFAULT_TO")
	}()

	_, err := Load()
	if err == nil {
		t.Error("Expected error when default range is inverted, got nil")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	os.Setenv("TEST_DURATION", "2h")
	defer os.Unsetenv("TEST_DURATION")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	os.Setenv("TEST_INT", "100")
	defer os.Unsetenv("TEST_INT")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}
}

func TestGetEnvAsDate(t *testing.T) {
	os.Setenv("TEST_DATE", "2020-06-30")
	defer os.Unsetenv("TEST_DATE")

	value := getEnvAsDate("TEST_DATE", "2005-01-01")
	want := time.Date(2020, 6, 30, 0, 0, 0, 0, time.UTC)

	if !value.Equal(want) {
		t.Errorf("Expected date to be %v, got %v", want, value)
	}
}

func TestGetEnvAsDateInvalidFallsBack(t *testing.T) {
	os.Setenv("TEST_DATE", "not-a-date")
	defer os.Unsetenv("TEST_DATE")

	value := getEnvAsDate("TEST_DATE", "2005-01-01")
	want := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)

	if !value.Equal(want) {
		t.Errorf("Expected fallback date %v, got %v", want, value)
	}
}
