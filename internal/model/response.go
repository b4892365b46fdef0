package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Incidents int    `json:"incidents"`
}

// IncidentListEnvelope - 인시던트 목록 API 응답 구조체
type IncidentListEnvelope struct {
	Status    string        `json:"status"`
	Total     int           `json:"total"`
	Incidents []Incident    `json:"incidents"`
	Stats     IncidentStats `json:"stats"`
}

// MockIncidentResponse - Mock 인시던트 생성 API 응답 구조체
type MockIncidentResponse struct {
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	IncidentID string    `json:"incident_id"`
	Incident   *Incident `json:"incident,omitempty"`
}

// PurgeIncidentsResponse - 전체 삭제 API 응답 구조체
type PurgeIncidentsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// TestIncidentResponse - 테스트 인시던트 생성 API 응답 구조체
type TestIncidentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AnalysisRequest - AI 분석 요청 구조체
type AnalysisRequest struct {
	// type: categorize(분류) 또는 summarize(요약)
	Type string `json:"type" binding:"required"`

	// status: 분석 대상 인시던트의 status 필터 (기본값 triggered)
	Status string `json:"status"`
}

// AnalysisResponse - AI 분석 API 응답 구조체
type AnalysisResponse struct {
	Status   string `json:"status"`
	Type     string `json:"type"`
	Analysis string `json:"analysis"`
}
