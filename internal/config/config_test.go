package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("SPIKE_API_KEY", "sk-spike-123")
	t.Setenv("SPIKE_TEAM_ID", "team-1")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-123")
}

func TestValidateDashboardAllSet(t *testing.T) {
	setRequired(t)
	if err := Load().ValidateDashboard(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateDashboardMissing(t *testing.T) {
	setRequired(t)
	t.Setenv("ANTHROPIC_API_KEY", "")

	err := Load().ValidateDashboard()
	if err == nil {
		t.Fatal("expected error for missing ANTHROPIC_API_KEY")
	}
	if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
		t.Fatalf("expected missing var name in error, got %v", err)
	}
}

func TestValidateDashboardPlaceholder(t *testing.T) {
	// .env 템플릿의 placeholder 값은 미설정으로 취급
	setRequired(t)
	t.Setenv("SPIKE_API_KEY", "your_spike_api_key_here")

	err := Load().ValidateDashboard()
	if err == nil || !strings.Contains(err.Error(), "SPIKE_API_KEY") {
		t.Fatalf("expected placeholder to count as missing, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Spike.BaseURL != "https://api.spike.sh" {
		t.Fatalf("unexpected spike base URL: %s", cfg.Spike.BaseURL)
	}
	if cfg.Anthropic.Model != "claude-sonnet-4-20250514" {
		t.Fatalf("unexpected model: %s", cfg.Anthropic.Model)
	}
	if cfg.Anthropic.MaxTokens != 1024 {
		t.Fatalf("unexpected max tokens: %d", cfg.Anthropic.MaxTokens)
	}
	if cfg.Dashboard.Addr != ":8501" || cfg.Receiver.Addr != ":8000" {
		t.Fatalf("unexpected addrs: %s / %s", cfg.Dashboard.Addr, cfg.Receiver.Addr)
	}
	if cfg.Receiver.MaxRecent != 100 {
		t.Fatalf("unexpected max recent: %d", cfg.Receiver.MaxRecent)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_AUTO_REFRESH", "true")
	t.Setenv("RECEIVER_MAX_RECENT", "25")

	cfg := Load()
	if !cfg.Dashboard.AutoRefresh {
		t.Fatal("expected auto refresh enabled")
	}
	if cfg.Receiver.MaxRecent != 25 {
		t.Fatalf("expected max recent 25, got %d", cfg.Receiver.MaxRecent)
	}
}

func TestGetenvIntInvalid(t *testing.T) {
	t.Setenv("RECEIVER_MAX_RECENT", "not-a-number")
	if got := Load().Receiver.MaxRecent; got != 100 {
		t.Fatalf("expected fallback 100 for invalid int, got %d", got)
	}
}
