package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_RPC_URL", "https://example.org/v2/secret")

	path := write(t, `
endpoints:
  - name: primary
    url: ${TEST_RPC_URL}
  - name: fallback
    url: https://fallback.example.org
    timeout: 5s
defaults:
  timeout: 10s
  max_retries: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Endpoints[0].URL != "https://example.org/v2/secret" {
		t.Errorf("env expansion failed: %s", cfg.Endpoints[0].URL)
	}
	if cfg.Endpoints[0].Timeout != 10*time.Second {
		t.Errorf("default timeout not applied: %s", cfg.Endpoints[0].Timeout)
	}
	if cfg.Endpoints[1].Timeout != 5*time.Second {
		t.Errorf("per-endpoint timeout overridden: %s", cfg.Endpoints[1].Timeout)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing_default_timeout",
			yaml:    "endpoints:\n  - name: a\n    url: https://a.example.org\ndefaults:\n  max_retries: 1\n",
			wantErr: "defaults.timeout",
		},
		{
			name:    "no_endpoints",
			yaml:    "defaults:\n  timeout: 1s\n",
			wantErr: "at least one endpoint",
		},
		{
			name:    "missing_url",
			yaml:    "endpoints:\n  - name: a\ndefaults:\n  timeout: 1s\n",
			wantErr: "url is required",
		},
		{
			name:    "bad_scheme",
			yaml:    "endpoints:\n  - name: a\n    url: ws://a.example.org\ndefaults:\n  timeout: 1s\n",
			wantErr: "invalid url scheme",
		},
		{
			name:    "missing_name",
			yaml:    "endpoints:\n  - url: https://a.example.org\ndefaults:\n  timeout: 1s\n",
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, tt.yaml))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestEndpointLookup(t *testing.T) {
	cfg := &Config{
		Endpoints: []Endpoint{
			{Name: "a", URL: "https://a.example.org"},
			{Name: "b", URL: "https://b.example.org"},
		},
	}

	ep, err := cfg.Endpoint("")
	if err != nil || ep.Name != "a" {
		t.Errorf("Endpoint(\"\") = %v, %v", ep, err)
	}

	ep, err = cfg.Endpoint("b")
	if err != nil || ep.Name != "b" {
		t.Errorf("Endpoint(b) = %v, %v", ep, err)
	}

	if _, err := cfg.Endpoint("c"); err == nil {
		t.Error("Endpoint(c) succeeded, want error")
	}
}
