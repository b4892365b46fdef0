// 웹훅 수신 프로세스 (기본 :8000)
//
// Spike가 푸시하는 JSON 페이로드를 받아 최근 N건을 인메모리로 보관하고,
// 보관 중인 인시던트 조회/통계/관리 엔드포인트를 제공

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/config"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/handler"
	"github.com/stupefyingcoder/Custom-spike-dashboard-with-ai-based-alert-analysis/internal/store"
)

func main() {
	// .env 파일이 있으면 로드 (없으면 무시)
	_ = godotenv.Load()

	cfg := config.Load()

	// 최근 수신 버퍼 생성
	incidentStore, err := store.NewIncidentStore(cfg.Receiver.MaxRecent)
	if err != nil {
		log.Fatalf("failed to create incident store: %v", err)
	}

	webhookHandler := handler.NewWebhookHandler(incidentStore)
	incidentHandler := handler.NewIncidentHandler(incidentStore)

	router := gin.Default()
	router.Use(handler.CORSMiddleware([]string{"http://localhost:8501"}))

	router.GET("/health", incidentHandler.Health)

	// 웹훅 엔드포인트: 시크릿/속도 제한 가드 적용
	webhook := router.Group("/webhook")
	webhook.Use(handler.WebhookGuard(cfg.Receiver.WebhookSecret, cfg.Receiver.RateLimitPerMin))
	{
		webhook.POST("/spike", webhookHandler.SpikeWebhook)
		webhook.POST("/custom", webhookHandler.CustomWebhook)
	}

	router.GET("/incidents", incidentHandler.ListIncidents)
	router.GET("/incidents/stats", incidentHandler.IncidentStats)
	router.POST("/incidents/mock", incidentHandler.CreateMockIncident)
	router.DELETE("/incidents", incidentHandler.PurgeIncidents)

	log.Printf("Starting webhook receiver (addr=%s, maxRecent=%d)", cfg.Receiver.Addr, cfg.Receiver.MaxRecent)
	if err := router.Run(cfg.Receiver.Addr); err != nil {
		log.Fatalf("failed to start webhook receiver: %v", err)
	}
}
