package service

import (
	"context"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
)

// spikeAPI - 클라이언트 인터페이스
type spikeAPI interface {
	FetchIncidents(ctx context.Context, status string) ([]model.Incident, error)
	CreateIncident(ctx context.Context, incident model.CreateIncidentRequest) error
}

// IncidentService - Spike 인시던트 조회/생성 비즈니스 로직
type IncidentService struct {
	spike spikeAPI
}

func NewIncidentService(spike spikeAPI) *IncidentService {
	return &IncidentService{spike: spike}
}

// GetIncidents - status별 인시던트 목록과 메트릭 패널용 집계 반환
func (s *IncidentService) GetIncidents(ctx context.Context, status string) ([]model.Incident, model.IncidentStats, error) {
	incidents, err := s.spike.FetchIncidents(ctx, status)
	if err != nil {
		return nil, model.IncidentStats{}, err
	}
	return incidents, model.ComputeStats(incidents), nil
}

// CreateTestIncident - 대시보드의 테스트 버튼용 고정 인시던트 생성
func (s *IncidentService) CreateTestIncident(ctx context.Context) error {
	return s.spike.CreateIncident(ctx, model.CreateIncidentRequest{
		Title:       "Test Incident from Dashboard",
		Description: "This is a test incident created from the dashboard",
		Priority:    "p3",
		Severity:    "sev2",
	})
}
