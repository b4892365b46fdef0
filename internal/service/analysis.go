// AI 분석 요청 및 응답 처리 비즈니스 로직 정의
//
// 처리 흐름:
//  1. 분석 종류(categorize/summarize) 검증
//  2. 인시던트 목록을 프롬프트로 직렬화
//  3. Anthropic API 호출 후 생성 텍스트를 그대로 반환
//
// 분류/요약 판단은 전부 외부 모델이 수행하며 로컬 추론은 없음

package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/client"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
)

const (
	AnalysisTypeCategorize = "categorize"
	AnalysisTypeSummarize  = "summarize"
)

var (
	ErrInvalidAnalysisType = errors.New("invalid analysis type")
	ErrNoIncidents         = errors.New("no incidents to analyze")
)

// completionAPI - 클라이언트 인터페이스
type completionAPI interface {
	IsConfigured() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

// AnalysisService - 인시던트 AI 분석 비즈니스 로직
type AnalysisService struct {
	ai completionAPI
}

func NewAnalysisService(ai completionAPI) *AnalysisService {
	return &AnalysisService{ai: ai}
}

// Analyze - 인시던트 목록을 분석하고 모델이 생성한 텍스트를 반환
//
// API 키가 설정되지 않은 경우 네트워크 요청 없이 AnalysisError로 실패
func (s *AnalysisService) Analyze(ctx context.Context, incidents []model.Incident, analysisType string) (string, error) {
	var template string
	switch analysisType {
	case AnalysisTypeCategorize:
		template = categorizePromptTemplate
	case AnalysisTypeSummarize:
		template = summarizePromptTemplate
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidAnalysisType, analysisType)
	}

	if len(incidents) == 0 {
		return "", ErrNoIncidents
	}

	if !s.ai.IsConfigured() {
		return "", &client.AnalysisError{Message: "ANTHROPIC_API_KEY not configured"}
	}

	log.Printf("Requesting AI analysis (type=%s, incidentCount=%d)", analysisType, len(incidents))

	result, err := s.ai.Complete(ctx, renderPrompt(template, incidents))
	if err != nil {
		log.Printf("Failed to analyze incidents: %v", err)
		return "", err
	}

	return result, nil
}
