package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/config"
)

func TestCompleteNotConfiguredNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := NewAnthropicClient(config.AnthropicConfig{APIKey: "", BaseURL: server.URL})
	_, err := c.Complete(context.Background(), "prompt")

	var analysisErr *AnalysisError
	if !errors.As(err, &analysisErr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no network call, got %d", calls.Load())
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotAPIKey, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"## Analysis\n- p1: urgent"}]}`))
	}))
	defer server.Close()

	c := NewAnthropicClient(config.AnthropicConfig{APIKey: "sk-ant-test", BaseURL: server.URL})
	result, err := c.Complete(context.Background(), "categorize these incidents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "## Analysis\n- p1: urgent" {
		t.Fatalf("expected model text unmodified, got %q", result)
	}
	if gotAPIKey != "sk-ant-test" {
		t.Fatalf("expected x-api-key header, got %q", gotAPIKey)
	}
	if gotVersion != "2023-06-01" {
		t.Fatalf("expected anthropic-version header, got %q", gotVersion)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"quota exceeded"}}`))
	}))
	defer server.Close()

	c := NewAnthropicClient(config.AnthropicConfig{APIKey: "sk-ant-test", BaseURL: server.URL})
	_, err := c.Complete(context.Background(), "prompt")

	var analysisErr *AnalysisError
	if !errors.As(err, &analysisErr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if analysisErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", analysisErr.StatusCode)
	}
	if analysisErr.Message != "quota exceeded" {
		t.Fatalf("expected upstream message, got %q", analysisErr.Message)
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	c := NewAnthropicClient(config.AnthropicConfig{APIKey: "sk-ant-test", BaseURL: server.URL})
	if _, err := c.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty content")
	}
}
