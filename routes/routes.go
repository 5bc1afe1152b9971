package routes

import (
	"github.com/gin-gonic/gin"

	"smartpocket-ai/backend/config"
	"smartpocket-ai/backend/controllers"
	"smartpocket-ai/backend/middlewares"
)

func Register(r *gin.Engine, cfg config.Config, st controllers.Store, gen controllers.InsightGenerator) {
	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck())

		auth := api.Group("/auth")
		auth.POST("/register", controllers.Register(cfg, st))
		auth.POST("/login", controllers.Login(cfg, st))

		priv := api.Group("/")
		priv.Use(middlewares.Auth(cfg.JWTSecret))
		priv.GET("auth/me", controllers.Me(st))

		priv.POST("financial-data", controllers.SaveFinancialData(st))
		priv.GET("financial-data", controllers.GetFinancialData(st))
		priv.GET("financial-data/export", controllers.ExportFinancialData(st))

		priv.GET("analysis/dashboard", controllers.Dashboard(st))
		priv.GET("analysis/insights", controllers.BudgetInsights(st))
		priv.GET("analysis/expense-tips", controllers.ExpenseTips(st))
		priv.GET("analysis/savings-projection", controllers.SavingsProjection(st))
		priv.GET("analysis/location-recommendations", controllers.LocationRecommendations(st))
		priv.GET("analysis/ai-insights", controllers.AIInsights(st, gen))
	}
}
