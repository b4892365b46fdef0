package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/store"
)

func newReceiverRouter(t *testing.T, secret string) (*gin.Engine, *store.IncidentStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	incidentStore, err := store.NewIncidentStore(10)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	webhookHandler := NewWebhookHandler(incidentStore)
	incidentHandler := NewIncidentHandler(incidentStore)

	r := gin.New()
	webhook := r.Group("/webhook")
	webhook.Use(WebhookGuard(secret, 0))
	webhook.POST("/spike", webhookHandler.SpikeWebhook)
	webhook.POST("/custom", webhookHandler.CustomWebhook)

	r.GET("/health", incidentHandler.Health)
	r.GET("/incidents", incidentHandler.ListIncidents)
	r.GET("/incidents/stats", incidentHandler.IncidentStats)
	r.POST("/incidents/mock", incidentHandler.CreateMockIncident)
	r.DELETE("/incidents", incidentHandler.PurgeIncidents)

	return r, incidentStore
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSpikeWebhookAccepted(t *testing.T) {
	r, incidentStore := newReceiverRouter(t, "")

	w := doJSON(r, http.MethodPost, "/webhook/spike", `{"title":"DB down","priority":"p1","severity":"sev1","status":"triggered"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.WebhookAckResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Status != "received" || resp.IncidentID == "" || resp.TotalIncidents != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if incidentStore.Len() != 1 {
		t.Fatalf("expected 1 stored incident, got %d", incidentStore.Len())
	}
}

func TestSpikeWebhookMalformedBodyLeavesStoreUnchanged(t *testing.T) {
	r, incidentStore := newReceiverRouter(t, "")

	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"not-json", "not json at all"},
		{"truncated", `{"title":`},
		{"array", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/webhook/spike", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if incidentStore.Len() != 0 {
				t.Fatalf("expected store unchanged, got %d", incidentStore.Len())
			}
		})
	}
}

func TestSpikeWebhookRawPayloadPreserved(t *testing.T) {
	r, incidentStore := newReceiverRouter(t, "")

	body := `{"title":"x","custom_field":{"nested":true}}`
	if w := doJSON(r, http.MethodPost, "/webhook/spike", body); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	incidents := incidentStore.List("", 0)
	if len(incidents) != 1 || string(incidents[0].Raw) != body {
		t.Fatalf("expected raw payload preserved, got %+v", incidents)
	}
}

func TestCustomWebhookValidation(t *testing.T) {
	r, incidentStore := newReceiverRouter(t, "")

	w := doJSON(r, http.MethodPost, "/webhook/custom", `{"priority":"p2"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", w.Code)
	}
	if incidentStore.Len() != 0 {
		t.Fatalf("expected store unchanged, got %d", incidentStore.Len())
	}

	w = doJSON(r, http.MethodPost, "/webhook/custom", `{"title":"Custom Webhook Test","priority":"p3","severity":"sev3"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	incidents := incidentStore.List("", 0)
	if len(incidents) != 1 || incidents[0].Source != "custom-webhook" {
		t.Fatalf("unexpected stored incident: %+v", incidents)
	}
}

func TestWebhookGuardSecret(t *testing.T) {
	r, incidentStore := newReceiverRouter(t, "s3cret")

	// 토큰 없이 요청하면 거부
	w := doJSON(r, http.MethodPost, "/webhook/spike", `{"title":"x"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if incidentStore.Len() != 0 {
		t.Fatalf("expected store unchanged, got %d", incidentStore.Len())
	}

	// 올바른 토큰이면 통과
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/spike", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-webhook-token", "s3cret")
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w2.Code)
	}
}

func TestWebhookRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	incidentStore, _ := store.NewIncidentStore(100)
	r := gin.New()
	// 분당 60건 → burst 6
	r.POST("/webhook/spike", WebhookGuard("", 60), NewWebhookHandler(incidentStore).SpikeWebhook)

	limited := false
	for i := 0; i < 20; i++ {
		w := doJSON(r, http.MethodPost, "/webhook/spike", `{"title":"x"}`)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatal("expected rate limit to trigger")
	}
}

func TestHealthReportsCount(t *testing.T) {
	r, incidentStore := newReceiverRouter(t, "")
	incidentStore.Add(model.Incident{ID: "1", Status: "triggered"})

	w := doJSON(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp model.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Status != "ok" || resp.Incidents != 1 {
		t.Fatalf("unexpected health response: %+v", resp)
	}
}
