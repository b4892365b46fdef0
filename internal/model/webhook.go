package model

import (
	"encoding/json"
	"strings"
	"time"
)

// WebhookAckResponse - 웹훅 수신 성공 응답
type WebhookAckResponse struct {
	Status         string `json:"status"`
	IncidentID     string `json:"incident_id"`
	TotalIncidents int    `json:"total_incidents"`
}

// CustomWebhookRequest - 검증이 적용되는 커스텀 웹훅 요청 구조체
// title은 필수, 나머지는 기본값으로 보충
type CustomWebhookRequest struct {
	Title    string `json:"title" binding:"required"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Severity string `json:"severity"`
	Source   string `json:"source"`
	Metadata string `json:"metadata"`
}

// IncidentFromPayload - 임의의 웹훅 JSON 객체를 Incident로 변환
//
// Spike가 보내는 페이로드 형식을 강제하지 않기 때문에 알려진 키만 느슨하게
// 매핑하고 나머지는 Raw에 원본 그대로 보존
func IncidentFromPayload(id string, payload map[string]any, raw json.RawMessage) Incident {
	inc := Incident{
		ID:        id,
		Title:     payloadString(payload, "title", "Untitled Incident"),
		Status:    strings.ToLower(payloadString(payload, "status", "triggered")),
		Priority:  strings.ToLower(payloadString(payload, "priority", "unknown")),
		Severity:  strings.ToLower(payloadString(payload, "severity", "unknown")),
		Source:    payloadString(payload, "source", "webhook"),
		Metadata:  payloadString(payload, "metadata", ""),
		CreatedAt: time.Now().UTC(),
		Raw:       raw,
	}

	// created_at이 RFC3339 형식이면 수신 시각 대신 그대로 사용
	if v := payloadString(payload, "created_at", ""); v != "" {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			inc.CreatedAt = ts
		}
	}

	return inc
}

func payloadString(payload map[string]any, key, fallback string) string {
	if v, ok := payload[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
