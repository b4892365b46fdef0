// 외부 Anthropic API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - ANTHROPIC_API_KEY: x-api-key 헤더로 전송
//
// 분석 로직은 전부 Claude 모델에 위임하며, 이 클라이언트는 프롬프트를
// 전달하고 생성된 텍스트를 그대로 반환하는 역할만 담당

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
)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnalysisError - AI 분석 실패 에러 (인증, 쿼터, 네트워크 등)
// Spike 조회 실패(FetchError)와 구분해서 처리하기 위해 별도 타입으로 정의
type AnalysisError struct {
	StatusCode int
	Message    string
}

func (e *AnalysisError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("AI analysis error: status=%d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("AI analysis error: %s", e.Message)
}

// AnthropicClient 구조체 정의
type AnthropicClient struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// anthropicRequest - messages API 요청 구조체
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse - messages API 응답 구조체
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// AnthropicClient 객체 생성
func NewAnthropicClient(cfg config.AnthropicConfig) *AnthropicClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicMessagesURL
	}
	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	return &AnthropicClient{
		baseURL:   baseURL,
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // AI 응답 생성 시간 고려
		},
	}
}

// API 키가 설정되어 있는지 체크
// 키가 없으면 호출부에서 네트워크 요청 없이 바로 실패 처리
func (c *AnthropicClient) IsConfigured() bool {
	return c.apiKey != ""
}

// Complete - 프롬프트를 전송하고 생성된 텍스트를 그대로 반환 (동기)
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.IsConfigured() {
		return "", &AnalysisError{Message: "ANTHROPIC_API_KEY not configured"}
	}

	// JSON 직렬화
	payload, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", &AnalysisError{Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	// HTTP 요청 생성
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", &AnalysisError{Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	// 헤더 설정
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	// 요청 전송
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AnalysisError{Message: fmt.Sprintf("failed to call Anthropic API: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AnalysisError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	// JSON 파싱
	var result anthropicResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &AnalysisError{StatusCode: resp.StatusCode, Message: "failed to parse response"}
	}

	// 에러 확인
	if resp.StatusCode != http.StatusOK {
		msg := string(body)
		if result.Error != nil {
			msg = result.Error.Message
		}
		return "", &AnalysisError{StatusCode: resp.StatusCode, Message: msg}
	}

	if len(result.Content) == 0 || result.Content[0].Text == "" {
		return "", &AnalysisError{Message: "empty completion result"}
	}

	return result.Content[0].Text, nil
}
