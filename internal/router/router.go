package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tasknest-dev/tasknest/internal/handlers"
	"github.com/tasknest-dev/tasknest/internal/middleware"
	"github.com/tasknest-dev/tasknest/internal/types"
	"github.com/tasknest-dev/tasknest/web"
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
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocket)

		user := api.Group("/user")
		{
			user.POST("/signup", handlers.Signup)
			user.POST("/login", handlers.Login)
			user.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
			user.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		todo := api.Group("/todo", middleware.AuthMiddleware())
		{
			todo.POST("", handlers.CreateTodo)
			todo.GET("", handlers.ListTodos)
			todo.PUT("/:id", handlers.UpdateTodo)
			todo.DELETE("/:id", handlers.DeleteTodo)
		}
	}

	// The embedded client handles everything that is not an API route.
	r.StaticFS("/app", http.FS(web.Static()))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.FileFromFS("/", http.FS(web.Static()))
	})

	return r
}
