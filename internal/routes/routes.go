package routes

import (
	"net/http"
	"time"

	"github.com/kamranshamim45/ai-job-portal/internal/handlers"
	"github.com/kamranshamim45/ai-job-portal/internal/middleware"
	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/ws"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Admin       *handlers.AdminHandler
}

// Setup mounts the whole API surface. The rate limiter only guards the
// credential endpoints; a nil limiter disables it.
func Setup(r *gin.Engine, h Handlers, hub *ws.Hub, limiter *middleware.RedisLimiter, localFilesDir string) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if localFilesDir != "" {
		r.Static("/api/files", localFilesDir)
	}

	auth := r.Group("/api/auth")
	auth.Use(middleware.RateLimitMiddleware(limiter, "auth", 20, time.Minute))
	h.Auth.RegisterRoutes(auth)

	jobsPublic := r.Group("/api/jobs")
	h.Job.RegisterPublicRoutes(jobsPublic)

	users := r.Group("/api/users")
	users.Use(middleware.AuthMiddleware())
	h.User.RegisterRoutes(users)

	jobsAuthed := r.Group("/api/jobs")
	jobsAuthed.Use(middleware.AuthMiddleware())
	h.Job.RegisterCandidateRoutes(jobsAuthed)
	h.Application.RegisterCandidateRoutes(jobsAuthed)

	jobsRecruiter := r.Group("/api/jobs")
	jobsRecruiter.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin))
	h.Job.RegisterRecruiterRoutes(jobsRecruiter)
	h.Application.RegisterRecruiterRoutes(jobsRecruiter)

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	h.Admin.RegisterRoutes(admin)

	wsGroup := r.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware())
	wsGroup.GET("", ws.ServeWS(hub))
}
