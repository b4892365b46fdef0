// 수신 버퍼의 인시던트 조회/관리 핸들러
// 웹훅으로 수신한 최근 인시던트를 대시보드나 외부 도구에서 조회할 때 사용

package handler

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/store"
)

// Incident 핸들러 구조체 정의
type IncidentHandler struct {
	store *store.IncidentStore

	// mockCursor: 샘플 데이터 순환 인덱스 (동시 요청 대비 atomic 사용)
	mockCursor atomic.Int64
}

// Incident 핸들러 객체 생성
func NewIncidentHandler(incidentStore *store.IncidentStore) *IncidentHandler {
	return &IncidentHandler{store: incidentStore}
}

// mockIncidents - Mock 생성용 샘플 데이터
// 호출할 때마다 순서대로 돌아가며 하나씩 생성
var mockIncidents = []model.Incident{
	{Title: "Database Connection Pool Exhausted", Status: "triggered", Priority: "p1", Severity: "sev1", Metadata: "Production database unable to accept new connections"},
	{Title: "API Response Time Degradation", Status: "triggered", Priority: "p2", Severity: "sev2", Metadata: "Average response time increased from 200ms to 2s"},
	{Title: "Memory Usage High on App Server", Status: "triggered", Priority: "p2", Severity: "sev2", Metadata: "Memory usage at 87%, approaching threshold"},
	{Title: "Disk Space Low on Backup Server", Status: "acknowledged", Priority: "p3", Severity: "sev3", Metadata: "15% free space remaining on /backup volume"},
	{Title: "Certificate Expiring Soon", Status: "resolved", Priority: "p4", Severity: "sev3", Metadata: "SSL certificate expires in 25 days"},
}

// ListIncidents godoc
// @Summary List recently received incidents
// @Tags incidents
// @Produce json
// @Param status query string false "Status filter (triggered, acknowledged, resolved)"
// @Param limit query int false "Maximum number of incidents to return"
// @Success 200 {object} model.IncidentListEnvelope
// @Router /incidents [get]
func (h *IncidentHandler) ListIncidents(c *gin.Context) {
	status := c.Query("status")
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	incidents := h.store.List(status, limit)
	c.JSON(http.StatusOK, model.IncidentListEnvelope{
		Status:    "success",
		Total:     len(incidents),
		Incidents: incidents,
		Stats:     model.ComputeStats(incidents),
	})
}

// IncidentStats godoc
// @Summary Aggregate stats over received incidents
// @Tags incidents
// @Produce json
// @Success 200 {object} model.IncidentStats
// @Router /incidents/stats [get]
func (h *IncidentHandler) IncidentStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

// CreateMockIncident godoc
// @Summary Create a mock incident in the receive buffer
// @Tags incidents
// @Produce json
// @Success 200 {object} model.MockIncidentResponse
// @Router /incidents/mock [post]
func (h *IncidentHandler) CreateMockIncident(c *gin.Context) {
	next := h.mockCursor.Add(1) - 1
	inc := mockIncidents[int(next)%len(mockIncidents)]

	inc.ID = uuid.NewString()
	inc.Source = "mock"
	inc.CreatedAt = time.Now().UTC()
	h.store.Add(inc)

	c.JSON(http.StatusOK, model.MockIncidentResponse{
		Status:     "success",
		Message:    "Mock 인시던트 1건이 생성되었습니다.",
		IncidentID: inc.ID,
		Incident:   &inc,
	})
}

// PurgeIncidents godoc
// @Summary Remove all incidents from the receive buffer
// @Tags incidents
// @Produce json
// @Success 200 {object} model.PurgeIncidentsResponse
// @Router /incidents [delete]
func (h *IncidentHandler) PurgeIncidents(c *gin.Context) {
	removed := h.store.Purge()
	c.JSON(http.StatusOK, model.PurgeIncidentsResponse{
		Status:  "success",
		Message: "전체 인시던트가 삭제되었습니다.",
		Removed: removed,
	})
}

// Health godoc
// @Summary Receiver health check
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (h *IncidentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "ok",
		Service:   "spike-webhook-receiver",
		Incidents: h.store.Len(),
	})
}
