package api

import (
	"net/http"

	"hypotrophy-backend/internal/backup"
	goalDelivery "hypotrophy-backend/internal/goal/delivery"
	goalUsecase "hypotrophy-backend/internal/goal/usecase"
	insightDelivery "hypotrophy-backend/internal/insight/delivery"
	insightUsecase "hypotrophy-backend/internal/insight/usecase"
	proxyDelivery "hypotrophy-backend/internal/proxy/delivery"
	taskDelivery "hypotrophy-backend/internal/task/delivery"
	taskUsecase "hypotrophy-backend/internal/task/usecase"
	"hypotrophy-backend/pkg/ai"
	"hypotrophy-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the HTTP layer is built from.
// A nil Generator leaves the AI proxy reporting itself unconfigured.
type Dependencies struct {
	Tasks     taskUsecase.TaskUsecase
	Goals     goalUsecase.GoalUsecase
	Insights  insightUsecase.InsightUsecase
	Backup    *backup.Service
	Generator ai.Generator
	Settings  *RuntimeSettings
}

type Handler struct {
	taskHandler     *taskDelivery.TaskHandler
	goalHandler     *goalDelivery.GoalHandler
	insightHandler  *insightDelivery.InsightHandler
	proxyHandler    *proxyDelivery.ProxyHandler
	backupHandler   *backup.Handler
	settingsHandler *SettingsHandler
}

func NewHandler(deps Dependencies, cfg *config.Config) *Handler {
	settings := deps.Settings
	if settings == nil {
		settings = NewRuntimeSettings(cfg.OllamaBaseURL, cfg.OllamaModel)
	}

	return &Handler{
		taskHandler:     taskDelivery.NewTaskHandler(deps.Tasks),
		goalHandler:     goalDelivery.NewGoalHandler(deps.Goals),
		insightHandler:  insightDelivery.NewInsightHandler(deps.Insights),
		proxyHandler:    proxyDelivery.NewProxyHandler(deps.Generator, cfg),
		backupHandler:   backup.NewHandler(deps.Backup),
		settingsHandler: NewSettingsHandler(settings, nil),
	}
}

// Router builds the gin engine with CORS and every route mounted.
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())
	SetupRoutes(r, h)
	return r
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	return h.Router().Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
