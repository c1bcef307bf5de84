package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"logos-backend/internal/analysis"
	"logos-backend/internal/history"
	"logos-backend/internal/langs"
	"logos-backend/internal/settings"
	"logos-backend/internal/shared/config"
	"logos-backend/internal/shared/metrics"
	"logos-backend/internal/shared/server/middleware"
	"logos-backend/internal/shared/server/respond"
	"logos-backend/internal/shared/storage/db"
)

var aboutInfo = gin.H{
	"name":            "LogosAI",
	"version":         "1.0",
	"description":     "Deep text analysis engine for advanced language learning.",
	"backend":         []string{"Go", "Gin", "PostgreSQL"},
	"open_source_url": "https://github.com/IvanMiao/LogosAI",
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.DefaultServerOptions())
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var historyRepo history.Repo
	if sqlDB != nil {
		historyRepo = &history.PGRepo{DB: sqlDB}
	} else {
		historyRepo = history.NewMemoryRepo()
	}
	historyHandler := history.NewHandler(historyRepo)

	settingsStore := settings.NewStore(cfg.LLMAPIKey, cfg.LLMModel)
	settingsHandler := settings.NewHandler(settingsStore)

	analysisSvc := analysis.NewService(settingsStore, historyRepo, cfg.LLMLiteModel)
	analysisHandler := analysis.NewHandler(analysisSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/about", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, aboutInfo)
	})
	api.GET("/languages", func(c *gin.Context) {
		codes := langs.Supported()
		out := make([]gin.H, 0, len(codes))
		for _, code := range codes {
			out = append(out, gin.H{"code": code.String(), "name": code.Name()})
		}
		respond.JSON(c, http.StatusOK, out)
	})
	api.GET("/metrics", metrics.Handler())
	analysisHandler.RegisterRoutes(api)
	historyHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
