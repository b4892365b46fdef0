// 대시보드 프로세스 (기본 :8501)
//
// 요청마다 Spike API에서 인시던트를 조회하고, 버튼 동작에 따라
// Anthropic API로 분류/요약 분석을 요청

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/client"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/config"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/handler"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/service"
)

func main() {
	// .env 파일이 있으면 로드 (없으면 무시)
	_ = godotenv.Load()

	// 필수 환경변수 확인, 누락 시 기동 중단
	cfg := config.Load()
	if err := cfg.ValidateDashboard(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// 외부 API 클라이언트 생성
	spikeClient := client.NewSpikeClient(cfg.Spike)
	anthropicClient := client.NewAnthropicClient(cfg.Anthropic)

	// 서비스/핸들러 조립
	incidentService := service.NewIncidentService(spikeClient)
	analysisService := service.NewAnalysisService(anthropicClient)
	dashboard := handler.NewDashboardHandler(incidentService, analysisService, cfg.Dashboard.AutoRefresh)

	router := gin.Default()

	router.GET("/", dashboard.Index)
	router.GET("/ping", handler.Ping)

	api := router.Group("/api")
	{
		api.GET("/incidents", dashboard.GetIncidents)
		api.POST("/incidents/test", dashboard.CreateTestIncident)
		api.POST("/analysis", dashboard.Analyze)
	}

	log.Printf("Starting dashboard server (addr=%s, autoRefresh=%t)", cfg.Dashboard.Addr, cfg.Dashboard.AutoRefresh)
	if err := router.Run(cfg.Dashboard.Addr); err != nil {
		log.Fatalf("failed to start dashboard server: %v", err)
	}
}
