// 대시보드 페이지 및 대시보드 전용 API 핸들러
//
// 요청 흐름:
//  1. 브라우저가 GET /로 대시보드 페이지 로드
//  2. 페이지의 JS가 /api/incidents, /api/analysis 등을 호출
//  3. 각 핸들러는 Spike/Anthropic API를 동기로 호출하고 결과를 반환

package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/client"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/service"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/web"
)

// incidentService - 서비스 인터페이스
type incidentService interface {
	GetIncidents(ctx context.Context, status string) ([]model.Incident, model.IncidentStats, error)
	CreateTestIncident(ctx context.Context) error
}

// analysisService - 서비스 인터페이스
type analysisService interface {
	Analyze(ctx context.Context, incidents []model.Incident, analysisType string) (string, error)
}

// Dashboard 핸들러 구조체 정의
type DashboardHandler struct {
	incidents   incidentService
	analysis    analysisService
	autoRefresh bool
	page        *template.Template
}

// Dashboard 핸들러 객체 생성
func NewDashboardHandler(incidents incidentService, analysis analysisService, autoRefresh bool) *DashboardHandler {
	return &DashboardHandler{
		incidents:   incidents,
		analysis:    analysis,
		autoRefresh: autoRefresh,
		page:        template.Must(template.ParseFS(web.FS, "index.html")),
	}
}

// Index - 대시보드 페이지 렌더링
func (h *DashboardHandler) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.page.Execute(c.Writer, gin.H{"AutoRefresh": h.autoRefresh}); err != nil {
		c.String(http.StatusInternalServerError, "failed to render page: %v", err)
	}
}

// GetIncidents godoc
// @Summary Fetch incidents from the Spike API by status
// @Tags dashboard
// @Produce json
// @Param status query string false "Status filter (default: triggered)"
// @Success 200 {object} model.IncidentListEnvelope
// @Failure 400,502 {object} model.ErrorResponse
// @Router /api/incidents [get]
func (h *DashboardHandler) GetIncidents(c *gin.Context) {
	status := c.DefaultQuery("status", "triggered")
	if !model.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid status filter: " + status})
		return
	}

	incidents, stats, err := h.incidents.GetIncidents(c.Request.Context(), status)
	if err != nil {
		h.renderUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.IncidentListEnvelope{
		Status:    "success",
		Total:     len(incidents),
		Incidents: incidents,
		Stats:     stats,
	})
}

// CreateTestIncident godoc
// @Summary Create a test incident via the Spike API
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.TestIncidentResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/incidents/test [post]
func (h *DashboardHandler) CreateTestIncident(c *gin.Context) {
	if err := h.incidents.CreateTestIncident(c.Request.Context()); err != nil {
		h.renderUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TestIncidentResponse{
		Status:  "success",
		Message: "테스트 인시던트가 생성되었습니다. 다음 조회에서 확인할 수 있습니다.",
	})
}

// Analyze godoc
// @Summary Run AI categorization or summarization over current incidents
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body model.AnalysisRequest true "Analysis request"
// @Success 200 {object} model.AnalysisResponse
// @Failure 400,502 {object} model.ErrorResponse
// @Router /api/analysis [post]
func (h *DashboardHandler) Analyze(c *gin.Context) {
	var req model.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "triggered"
	}
	if !model.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid status filter: " + status})
		return
	}

	// 분석 직전의 최신 목록을 다시 조회해서 사용
	incidents, _, err := h.incidents.GetIncidents(c.Request.Context(), status)
	if err != nil {
		h.renderUpstreamError(c, err)
		return
	}

	result, err := h.analysis.Analyze(c.Request.Context(), incidents, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAnalysisType):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		case errors.Is(err, service.ErrNoIncidents):
			// 분석 대상이 없는 것은 에러가 아니라 안내 메시지로 처리
			c.JSON(http.StatusOK, model.AnalysisResponse{
				Status:   "success",
				Type:     req.Type,
				Analysis: "No incidents to analyze",
			})
		default:
			h.renderUpstreamError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, model.AnalysisResponse{
		Status:   "success",
		Type:     req.Type,
		Analysis: result,
	})
}

// renderUpstreamError - 업스트림 API 에러를 종류별 응답으로 변환
// Spike 조회 실패(fetch)와 AI 분석 실패(analysis)를 구분해서 반환
func (h *DashboardHandler) renderUpstreamError(c *gin.Context, err error) {
	var fetchErr *client.FetchError
	if errors.As(err, &fetchErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":          "error",
			"error_type":      "fetch",
			"error":           err.Error(),
			"upstream_status": fetchErr.StatusCode,
		})
		return
	}

	var analysisErr *client.AnalysisError
	if errors.As(err, &analysisErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":     "error",
			"error_type": "analysis",
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
}
