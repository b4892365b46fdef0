// Incident 모델 정의
// Spike API 응답과 웹훅 수신 페이로드를 공통으로 표현하기 때문에 model 레이어에 별도로 정의

package model

import (
	"encoding/json"
	"strings"
	"time"
)

// ============================================================================
// Incident 모델 (알림 단위)
// ============================================================================

// Incident - 개별 인시던트 레코드
// Spike API 응답을 그대로 파싱하며, 시스템 내부에서는 값을 변경하지 않음
type Incident struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// status: triggered(발생), acknowledged(확인), resolved(해결)
	Status string `json:"status"`

	// priority: p1(긴급) ~ p5(낮음)
	Priority string `json:"priority"`

	// severity: sev1(치명) ~ sev3(경미)
	Severity string `json:"severity"`

	Source   string `json:"source,omitempty"`
	Metadata string `json:"metadata,omitempty"`

	// CreatedAt: 인시던트 생성 시각 (UTC)
	CreatedAt time.Time `json:"created_at"`

	// Raw: 웹훅으로 수신한 경우 원본 페이로드 전체
	Raw json.RawMessage `json:"raw,omitempty" swaggertype:"object"`
}

// SpikeListResponse - Spike API 목록 응답 구조체
// API 버전에 따라 incidents 또는 data 키로 내려오기 때문에 둘 다 받음
type SpikeListResponse struct {
	Incidents []Incident `json:"incidents"`
	Data      []Incident `json:"data"`
}

// Items - incidents / data 중 값이 있는 쪽을 반환
func (r SpikeListResponse) Items() []Incident {
	if r.Incidents != nil {
		return r.Incidents
	}
	return r.Data
}

// CreateIncidentRequest - Spike API 인시던트 생성 요청 구조체
type CreateIncidentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Severity    string `json:"severity"`
}

// ============================================================================
// Incident 통계
// ============================================================================

// IncidentStats - 대시보드 메트릭 패널용 집계 구조체
type IncidentStats struct {
	Total      int            `json:"total"`
	ByPriority map[string]int `json:"by_priority"`
	BySeverity map[string]int `json:"by_severity"`
	ByStatus   map[string]int `json:"by_status"`

	// LatestIncident: 가장 최근에 수신/조회된 인시던트 (없으면 생략)
	LatestIncident *Incident `json:"latest_incident,omitempty"`
}

// ComputeStats - 인시던트 목록에서 priority/severity/status별 카운트 집계
// 목록은 최신순 정렬을 가정하며 첫 번째 항목을 LatestIncident로 사용
func ComputeStats(incidents []Incident) IncidentStats {
	stats := IncidentStats{
		Total:      len(incidents),
		ByPriority: map[string]int{},
		BySeverity: map[string]int{},
		ByStatus:   map[string]int{},
	}

	for _, inc := range incidents {
		if p := strings.ToLower(inc.Priority); p != "" {
			stats.ByPriority[p]++
		}
		if s := strings.ToLower(inc.Severity); s != "" {
			stats.BySeverity[s]++
		}
		if st := strings.ToLower(inc.Status); st != "" {
			stats.ByStatus[st]++
		}
	}

	if len(incidents) > 0 {
		latest := incidents[0]
		stats.LatestIncident = &latest
	}

	return stats
}

// ValidStatus - Spike API가 허용하는 status 필터인지 확인
func ValidStatus(status string) bool {
	switch status {
	case "triggered", "acknowledged", "resolved":
		return true
	}
	return false
}
