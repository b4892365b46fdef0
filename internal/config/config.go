// 환경변수 기반 설정 로딩
//
// 환경변수:
//   - SPIKE_API_KEY: Spike API 키 (x-api-key 헤더로 전송, 필수)
//   - SPIKE_TEAM_ID: Spike 팀 ID (x-team-id 헤더로 전송, 필수)
//   - SPIKE_BASE_URL (default: https://api.spike.sh)
//   - ANTHROPIC_API_KEY: Claude API 키 (대시보드에서 필수)
//   - ANTHROPIC_MODEL (default: claude-sonnet-4-20250514)
//   - ANTHROPIC_BASE_URL (default: https://api.anthropic.com/v1/messages)
//   - DASHBOARD_ADDR (default: :8501)
//   - DASHBOARD_AUTO_REFRESH: true면 대시보드가 30초 간격으로 자동 갱신
//   - RECEIVER_ADDR (default: :8000)
//   - RECEIVER_MAX_RECENT: 웹훅 버퍼 최대 보관 개수 (default: 100)
//   - SPIKE_WEBHOOK_SECRET: 설정 시 웹훅 요청의 x-webhook-token 헤더 검증
//   - WEBHOOK_RATE_LIMIT_PER_MIN: 소스별 분당 웹훅 허용 수 (default: 120)

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Spike     SpikeConfig
	Anthropic AnthropicConfig
	Dashboard DashboardConfig
	Receiver  ReceiverConfig
}

type SpikeConfig struct {
	APIKey  string
	TeamID  string
	BaseURL string
}

type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

type DashboardConfig struct {
	Addr        string
	AutoRefresh bool
}

type ReceiverConfig struct {
	Addr            string
	MaxRecent       int
	WebhookSecret   string
	RateLimitPerMin int
}

func Load() Config {
	return Config{
		Spike: SpikeConfig{
			APIKey:  os.Getenv("SPIKE_API_KEY"),
			TeamID:  os.Getenv("SPIKE_TEAM_ID"),
			BaseURL: getenv("SPIKE_BASE_URL", "https://api.spike.sh"),
		},
		Anthropic: AnthropicConfig{
			APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			BaseURL:   getenv("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1/messages"),
			Model:     getenv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens: getenvInt("ANTHROPIC_MAX_TOKENS", 1024),
		},
		Dashboard: DashboardConfig{
			Addr:        getenv("DASHBOARD_ADDR", ":8501"),
			AutoRefresh: getenvBool("DASHBOARD_AUTO_REFRESH", false),
		},
		Receiver: ReceiverConfig{
			Addr:            getenv("RECEIVER_ADDR", ":8000"),
			MaxRecent:       getenvInt("RECEIVER_MAX_RECENT", 100),
			WebhookSecret:   os.Getenv("SPIKE_WEBHOOK_SECRET"),
			RateLimitPerMin: getenvInt("WEBHOOK_RATE_LIMIT_PER_MIN", 120),
		},
	}
}

// ValidateDashboard - 대시보드 기동에 필요한 필수 환경변수 확인
// 값이 비어 있거나 "your_..." 형태의 플레이스홀더면 누락으로 처리
func (c Config) ValidateDashboard() error {
	missing := []string{}
	if !isSet(c.Spike.APIKey) {
		missing = append(missing, "SPIKE_API_KEY")
	}
	if !isSet(c.Spike.TeamID) {
		missing = append(missing, "SPIKE_TEAM_ID")
	}
	if !isSet(c.Anthropic.APIKey) {
		missing = append(missing, "ANTHROPIC_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}
	return nil
}

// isSet - 환경변수가 실제 값으로 채워졌는지 확인 (.env 템플릿의 placeholder 감지)
func isSet(value string) bool {
	if value == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(value), "your_")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
