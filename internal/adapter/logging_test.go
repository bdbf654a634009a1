package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"WARNING": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tibiasearch.log")
	logger, err := SetupLogger(&LoggingConfig{File: path, Level: "INFO"})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	logger.Info("hello")

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file missing: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/logs/app.log")
	if err != nil {
		t.Fatalf("expandHome: %v", err)
	}
	if want := filepath.Join(home, "logs", "app.log"); got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}

	if got, _ := expandHome("/var/log/app.log"); got != "/var/log/app.log" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Market.Server == "" || cfg.Market.ValuesURL == "" || cfg.Market.WorldDataURL == "" {
		t.Errorf("incomplete market defaults: %+v", cfg.Market)
	}
	if cfg.Market.ThrottleSeconds <= 0 {
		t.Errorf("throttle = %v, want positive", cfg.Market.ThrottleSeconds)
	}
	if cfg.Preferences.HistoryLimit <= 0 {
		t.Errorf("history limit = %d, want positive", cfg.Preferences.HistoryLimit)
	}
}
