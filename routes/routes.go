package routes

import (
	"net/http"
	"time"

	"aster/handlers"
	"aster/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCalendarRoutes registers the read-only availability endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/free-slots", hb.Calendar.FreeSlotsHandler)
		api.GET("/day", hb.Calendar.DayHandler)
	}
}

// RegisterContactRoutes registers directory endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contacts")
	{
		api.GET("", hb.Contacts.GetAllContactsHandler)
		api.GET("/search", hb.Contacts.SearchContactHandler)
	}
}

// RegisterAssistantRoutes sets up the proposal workflow endpoints. All of
// them sit behind the device session token since confirm mutates the
// calendar.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/schedule", hb.Assistant.ScheduleMeeting)
		api.POST("/event", hb.Assistant.CreateEvent)
		api.POST("/confirm", hb.Assistant.ConfirmProposal)
		api.DELETE("/session/:proposalID", hb.Assistant.CancelProposal)
		api.POST("/tool", hb.Assistant.DispatchTool)
	}
}

// RegisterTodoRoutes sets up todo endpoints.
func RegisterTodoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/todos")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Todos.ListTodosHandler)
		api.POST("", hb.Todos.CreateTodoHandler)
		api.PUT("/:id/complete", hb.Todos.CompleteTodoHandler)
		api.DELETE("/:id", hb.Todos.DeleteTodoHandler)
	}
}

// RegisterAuthRoutes registers session issuance.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/session", handlers.OpenSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Aster"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterCalendarRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterTodoRoutes(r, hb)
}
