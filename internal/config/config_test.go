package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{}
	cfg.HTTP.Port = 8080
	cfg.Database.Addrs = []string{"localhost:6379"}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http defaults = %+v", cfg.HTTP)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("readiness timeout = %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Storage.KeyPrefix != "formdex:" {
		t.Errorf("key prefix = %q", cfg.Storage.KeyPrefix)
	}
	if cfg.WordPress.RequestTimeout != 30 {
		t.Errorf("wordpress timeout = %d", cfg.WordPress.RequestTimeout)
	}
	if cfg.Publish.Policy != "strict" {
		t.Errorf("publish policy = %q", cfg.Publish.Policy)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Storage.KeyPrefix = "custom:"
	cfg.Publish.Policy = "lossy"
	cfg.ApplyDefaults()

	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("key prefix = %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Publish.Policy != "lossy" {
		t.Errorf("publish policy = %q", cfg.Publish.Policy)
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := validConfig()
	bad.HTTP.Port = 0
	if err := bad.Validate(); err == nil {
		t.Error("port 0 should be rejected")
	}

	bad = validConfig()
	bad.HTTP.Port = 70000
	if err := bad.Validate(); err == nil {
		t.Error("port 70000 should be rejected")
	}

	bad = validConfig()
	bad.Database.Addrs = nil
	if err := bad.Validate(); err == nil {
		t.Error("missing addrs should be rejected")
	}

	bad = validConfig()
	bad.Publish.Policy = "sloppy"
	if err := bad.Validate(); err == nil {
		t.Error("unknown policy should be rejected")
	}

	bad = validConfig()
	bad.WordPress.BaseURL = "ftp://site"
	if err := bad.Validate(); err == nil {
		t.Error("non-http base url should be rejected")
	}

	ok := validConfig()
	ok.WordPress.BaseURL = "https://example.com"
	if err := ok.Validate(); err != nil {
		t.Errorf("https base url rejected: %v", err)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FORMDEX_TEST_VAR", "hello")

	out := string(expandEnvVars([]byte("a: ${FORMDEX_TEST_VAR}")))
	if out != "a: hello" {
		t.Errorf("got %q", out)
	}

	out = string(expandEnvVars([]byte("a: ${FORMDEX_TEST_MISSING:-fallback}")))
	if out != "a: fallback" {
		t.Errorf("got %q", out)
	}

	out = string(expandEnvVars([]byte("a: ${FORMDEX_TEST_MISSING}")))
	if out != "a: " {
		t.Errorf("got %q", out)
	}

	// Set variable wins over the default.
	out = string(expandEnvVars([]byte("a: ${FORMDEX_TEST_VAR:-fallback}")))
	if out != "a: hello" {
		t.Errorf("got %q", out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist")
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("got %v", err)
	}
}
