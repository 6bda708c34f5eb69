package router

import (
	"time"

	"github.com/thefr3spirit/homs-backend/internal/config"
	"github.com/thefr3spirit/homs-backend/internal/handler"
	"github.com/thefr3spirit/homs-backend/internal/middleware"
	"github.com/thefr3spirit/homs-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Setup configures the Gin engine, middleware and route table.
func Setup(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin"}
	corsConfig.ExposeHeaders = []string{"*"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = time.Hour
	r.Use(cors.New(corsConfig))

	healthHandler := handler.NewHealthHandler(cfg.App.Name, cfg.App.Version)
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	svc := service.NewSummaryService(db)
	summaryHandler := handler.NewSummaryHandler(svc)
	exportHandler := handler.NewExportHandler(svc)

	summary := r.Group("/summary")
	summary.POST("", summaryHandler.Create)
	summary.GET("/today", summaryHandler.GetToday)
	summary.GET("/latest", summaryHandler.GetLatest)
	summary.GET("/history", summaryHandler.GetHistory)
	summary.GET("/range", summaryHandler.GetRange)
	summary.GET("/count", summaryHandler.Count)
	summary.GET("/date/:date", summaryHandler.GetByDate)
	summary.DELETE("/date/:date", summaryHandler.DeleteByDate)
	summary.GET("/export/csv", exportHandler.ExportCSV)
	summary.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
