package router

import (
	"time"

	"github.com/Luisi123/budget-tracking-test/internal/handlers"
	"github.com/Luisi123/budget-tracking-test/internal/middleware"
	"github.com/Luisi123/budget-tracking-test/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.CreateUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		projects := api.Group("/project", middleware.AuthMiddleware())
		{
			projects.POST("", handlers.CreateProject)
			projects.GET("", handlers.ListProjects)
			projects.GET("/:id", handlers.GetProject)
			projects.PUT("/:id", handlers.UpdateProject)
			projects.DELETE("/:id", handlers.DeleteProject)
		}

		expenses := api.Group("/expense", middleware.AuthMiddleware())
		{
			expenses.POST("", handlers.CreateExpense)
			expenses.GET("/project/:projectId", handlers.ListExpensesByProject)
			expenses.GET("/:id", handlers.GetExpense)
			expenses.PUT("/:id", handlers.UpdateExpense)
			expenses.DELETE("/:id", handlers.DeleteExpense)
		}
	}

	return r
}
