package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.POST("/quick", h.taskHandler.QuickAdd)
			tasks.POST("/parse", h.taskHandler.ParseTask)
			tasks.GET("/:id", h.taskHandler.GetTaskByID)
			tasks.PUT("/:id", h.taskHandler.UpdateTask)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
			tasks.PATCH("/:id/toggle", h.taskHandler.ToggleTask)
		}
		api.GET("/stats", h.taskHandler.GetStats)

		goals := api.Group("/goals")
		{
			goals.GET("", h.goalHandler.GetGoals)
			goals.POST("", h.goalHandler.CreateGoal)
			goals.GET("/:id", h.goalHandler.GetGoalByID)
			goals.PUT("/:id", h.goalHandler.UpdateGoal)
			goals.DELETE("/:id", h.goalHandler.DeleteGoal)
			goals.PATCH("/:id/progress", h.goalHandler.UpdateProgress)
		}

		insights := api.Group("/insights")
		{
			insights.GET("", h.insightHandler.GetInsights)
			insights.POST("/progress", h.insightHandler.RequestProgress)
			insights.GET("/suggestions", h.insightHandler.GetSuggestions)
		}

		// AI proxy, called by the insight client over HTTP
		ai := api.Group("/ai")
		{
			ai.GET("/insights", h.proxyHandler.Health)
			ai.POST("/insights", h.proxyHandler.Generate)
		}

		api.GET("/export", h.backupHandler.Export)
		api.POST("/import", h.backupHandler.Import)

		settings := api.Group("/settings")
		{
			settings.GET("/ollama", h.settingsHandler.GetOllamaSettings)
			settings.PUT("/ollama", h.settingsHandler.UpdateOllamaSettings)
			settings.POST("/ollama/test", h.settingsHandler.TestOllamaConnection)
		}
	}
}
