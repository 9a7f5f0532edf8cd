package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cpnews/cpnews/internal/feed"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Providers.Odaily != feed.DefaultOdailyEndpoint {
		t.Errorf("Providers.Odaily: got %q", cfg.Providers.Odaily)
	}
	if cfg.Providers.CryptoCompare != feed.DefaultCryptoCompareEndpoint {
		t.Errorf("Providers.CryptoCompare: got %q", cfg.Providers.CryptoCompare)
	}
	if cfg.HTTP.Timeout != DefaultHTTPTimeout {
		t.Errorf("HTTP.Timeout: got %s, want %s", cfg.HTTP.Timeout, DefaultHTTPTimeout)
	}
	if cfg.RefreshSpec() != DefaultRefreshSpec {
		t.Errorf("RefreshSpec: got %q", cfg.RefreshSpec())
	}
	if cfg.Updates.ChannelCapacity != DefaultChannelCapacity {
		t.Errorf("Updates.ChannelCapacity: got %d", cfg.Updates.ChannelCapacity)
	}
	if cfg.Cache.Dir == "" {
		t.Error("Cache.Dir should have a default")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level: got %q", cfg.Log.Level)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	t.Setenv("CPNEWS_TEST_CACHE", "/tmp/cpnews-cache")
	path := writeConfig(t, `
providers:
  odaily: http://127.0.0.1:9000/feeds
  cryptocompare_lang: PT
http:
  timeout: 5s
  user_agent: test-agent
cache:
  dir: ${CPNEWS_TEST_CACHE}
refresh:
  spec: "@every 1h"
updates:
  channel_capacity: 32
log:
  level: debug
  file: /tmp/cpnews.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Providers.Odaily != "http://127.0.0.1:9000/feeds" {
		t.Errorf("Providers.Odaily: got %q", cfg.Providers.Odaily)
	}
	if cfg.Providers.CryptoCompare != feed.DefaultCryptoCompareEndpoint {
		t.Errorf("Providers.CryptoCompare should default, got %q", cfg.Providers.CryptoCompare)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("HTTP.Timeout: got %s, want 5s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.UserAgent != "test-agent" {
		t.Errorf("HTTP.UserAgent: got %q", cfg.HTTP.UserAgent)
	}
	if cfg.Cache.Dir != "/tmp/cpnews-cache" {
		t.Errorf("Cache.Dir: got %q", cfg.Cache.Dir)
	}
	if cfg.RefreshSpec() != "@every 1h" {
		t.Errorf("RefreshSpec: got %q", cfg.RefreshSpec())
	}
	if cfg.Updates.ChannelCapacity != 32 {
		t.Errorf("Updates.ChannelCapacity: got %d", cfg.Updates.ChannelCapacity)
	}

	lc := cfg.LoggerConfig()
	if lc.Level != "debug" || lc.File != "/tmp/cpnews.log" || lc.MaxSize != DefaultLogMaxSize {
		t.Errorf("LoggerConfig: got %+v", lc)
	}

	e := cfg.Endpoints()
	if e.CryptoCompareLang != "PT" {
		t.Errorf("Endpoints.CryptoCompareLang: got %q", e.CryptoCompareLang)
	}
}

func TestSetDefaults_DoesNotOverride(t *testing.T) {
	cfg := &Config{
		HTTP:    HTTPConfig{Timeout: time.Second},
		Refresh: RefreshConfig{Spec: "@hourly"},
		Updates: UpdatesConfig{ChannelCapacity: 50},
		Log:     LogConfig{Level: "warn", MaxAge: 1},
	}
	setDefaults(cfg)

	if cfg.HTTP.Timeout != time.Second {
		t.Errorf("HTTP.Timeout should not be overridden: got %s", cfg.HTTP.Timeout)
	}
	if cfg.Refresh.Spec != "@hourly" {
		t.Errorf("Refresh.Spec should not be overridden: got %s", cfg.Refresh.Spec)
	}
	if cfg.Updates.ChannelCapacity != 50 {
		t.Errorf("ChannelCapacity should not be overridden: got %d", cfg.Updates.ChannelCapacity)
	}
	if cfg.Log.Level != "warn" || cfg.Log.MaxAge != 1 {
		t.Errorf("Log should not be overridden: got %+v", cfg.Log)
	}
}

func TestRefreshSpec_Disabled(t *testing.T) {
	path := writeConfig(t, "refresh:\n  disabled: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RefreshSpec() != "" {
		t.Errorf("Expected empty spec when disabled, got %q", cfg.RefreshSpec())
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "providers: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoad_InvalidEndpoint(t *testing.T) {
	path := writeConfig(t, "providers:\n  odaily: ftp://example.com/feeds\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for non-http endpoint")
	}
}

func TestLoad_NegativeTimeout(t *testing.T) {
	path := writeConfig(t, "http:\n  timeout: -1s\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for negative timeout")
	}
}
