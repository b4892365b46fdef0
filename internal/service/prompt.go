// AI 분석 프롬프트 템플릿 렌더링
//
// 지원하는 변수 형식:
//
//	{{count}}     - 분석 대상 인시던트 개수
//	{{incidents}} - 인시던트 목록 JSON (최대 maxPromptIncidents건)

package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/model"
)

// 프롬프트에 포함할 인시던트 최대 개수
// 토큰 한도를 넘지 않도록 앞쪽 일부만 직렬화
const maxPromptIncidents = 10

const categorizePromptTemplate = `Analyze these {{count}} incidents and categorize them by:
1. Type of issue (infrastructure, application, network, database, etc.)
2. Severity distribution
3. Common patterns or recurring issues

Incidents data:
{{incidents}}

Provide a clear, concise categorization with actionable insights.`

const summarizePromptTemplate = `Summarize these {{count}} incidents:
1. Overall incident summary
2. Key incidents requiring immediate attention
3. Trends and patterns
4. Recommended actions

Incidents data:
{{incidents}}

Provide a brief executive summary suitable for incident review.`

// renderPrompt - 템플릿의 변수를 실제 값으로 치환
func renderPrompt(template string, incidents []model.Incident) string {
	subset := incidents
	if len(subset) > maxPromptIncidents {
		subset = subset[:maxPromptIncidents]
	}

	serialized, err := json.MarshalIndent(subset, "", "  ")
	if err != nil {
		serialized = []byte("[]")
	}

	return strings.NewReplacer(
		"{{count}}", strconv.Itoa(len(incidents)),
		"{{incidents}}", string(serialized),
	).Replace(template)
}
