// 외부 Spike API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - SPIKE_API_KEY: x-api-key 헤더로 전송
//   - SPIKE_TEAM_ID: x-team-id 헤더로 전송
//
// 요청 경로:
//   - GET  /incidents/{status}: status별 인시던트 목록 조회
//   - POST /incidents/create: 인시던트 생성

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/config"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
)

// FetchError - Spike API가 2xx 외의 응답을 반환했을 때의 에러
// 업스트림 상태 코드와 응답 본문을 그대로 보존
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("spike API error: status=%d body=%s", e.StatusCode, e.Body)
}

// SpikeClient 구조체 정의
type SpikeClient struct {
	baseURL    string
	apiKey     string
	teamID     string
	httpClient *http.Client
}

// SpikeClient 객체 생성
func NewSpikeClient(cfg config.SpikeConfig) *SpikeClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.spike.sh"
	}

	return &SpikeClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		teamID:  cfg.TeamID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// 인증 정보가 모두 설정되어 있는지 체크
func (c *SpikeClient) IsConfigured() bool {
	return c.apiKey != "" && c.teamID != ""
}

// GET /incidents/{status} - status별 인시던트 목록 조회
//
// 재시도/백오프 없이 단건 요청만 수행하며, 페이지네이션은 업스트림이
// 한 페이지에 내려주는 범위만 처리
func (c *SpikeClient) FetchIncidents(ctx context.Context, status string) ([]model.Incident, error) {
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status filter: %s", status)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/incidents/"+status, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// 헤더 설정
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("x-team-id", c.teamID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incidents: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var list model.SpikeListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse incident list: %w", err)
	}

	return list.Items(), nil
}

// POST /incidents/create - 인시던트 생성
// 성공해도 로컬 상태는 변경하지 않음 (다음 조회에서 새 인시던트가 보임)
func (c *SpikeClient) CreateIncident(ctx context.Context, incident model.CreateIncidentRequest) error {
	payload, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/incidents/create", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("x-team-id", c.teamID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return &FetchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
