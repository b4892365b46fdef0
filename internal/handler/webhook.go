// Spike 웹훅 요청을 처리하는 핸들러
//
// 요청 흐름:
//  1. Spike가 POST /webhook/spike로 알림 전송
//  2. JSON 페이로드 파싱 (실패 시 400, 버퍼는 그대로 유지)
//  3. 인시던트로 변환해서 최근 수신 버퍼에 저장
//  4. 수신 확인 응답 반환

package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/store"
)

// Webhook 핸들러 구조체 정의
type WebhookHandler struct {
	store *store.IncidentStore
}

// Webhook 핸들러 객체 생성
func NewWebhookHandler(incidentStore *store.IncidentStore) *WebhookHandler {
	return &WebhookHandler{store: incidentStore}
}

// SpikeWebhook godoc
// @Summary Receive a Spike webhook payload
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} model.WebhookAckResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /webhook/spike [post]
func (h *WebhookHandler) SpikeWebhook(c *gin.Context) {
	// 1. Raw body 읽기 (원본 페이로드 보존용)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty payload"})
		return
	}

	// 2. JSON 객체 파싱
	// 페이로드 스키마는 강제하지 않지만 JSON 객체 형태는 요구
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("Failed to parse webhook: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	// 3. 인시던트 변환 및 저장
	inc := model.IncidentFromPayload(uuid.NewString(), payload, json.RawMessage(raw))
	h.store.Add(inc)

	// 4. 수신 메타데이터 로깅
	log.Printf("Received spike webhook: incident_id=%s, title=%s, priority=%s, severity=%s",
		inc.ID, inc.Title, inc.Priority, inc.Severity)

	c.JSON(http.StatusOK, model.WebhookAckResponse{
		Status:         "received",
		IncidentID:     inc.ID,
		TotalIncidents: h.store.Len(),
	})
}

// CustomWebhook godoc
// @Summary Receive a validated custom webhook payload
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body model.CustomWebhookRequest true "Incident payload"
// @Success 200 {object} model.WebhookAckResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /webhook/custom [post]
func (h *WebhookHandler) CustomWebhook(c *gin.Context) {
	var req model.CustomWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, _ := json.Marshal(req)
	inc := model.IncidentFromPayload(uuid.NewString(), map[string]any{
		"title":    req.Title,
		"status":   req.Status,
		"priority": req.Priority,
		"severity": req.Severity,
		"source":   defaultString(req.Source, "custom-webhook"),
		"metadata": req.Metadata,
	}, raw)
	h.store.Add(inc)

	log.Printf("Received custom webhook: incident_id=%s, title=%s", inc.ID, inc.Title)

	c.JSON(http.StatusOK, model.WebhookAckResponse{
		Status:         "received",
		IncidentID:     inc.ID,
		TotalIncidents: h.store.Len(),
	})
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
