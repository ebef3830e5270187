package handlers

import (
	"net/http"

	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/services"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService *services.AdminService
	jobService   *services.JobService
	appService   *services.ApplicationService
}

func NewAdminHandler(
	base *BaseHandler,
	adminService *services.AdminService,
	jobService *services.JobService,
	appService *services.ApplicationService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
		jobService:   jobService,
		appService:   appService,
	}
}

// RegisterRoutes mounts the moderation endpoints; the group must be behind
// AuthMiddleware plus an admin role check.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/overview", h.Overview)
	r.GET("/users", h.ListUsers)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/jobs", h.ListJobs)
	r.POST("/approve-job/:id", h.ApproveJob)
	r.PUT("/jobs/:id/status", h.UpdateJobStatus)
	r.DELETE("/jobs/:id", h.DeleteJob)
	r.GET("/applications", h.ListApplications)
	r.PUT("/applications/:id/status", h.UpdateApplicationStatus)
}

func (h *AdminHandler) Overview(c *gin.Context) {
	resp, err := h.adminService.Overview(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	resp, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminService.ListJobs(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.adminService.ListApplications(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ApproveJob is the moderation shortcut for the pending queue.
func (h *AdminHandler) ApproveJob(c *gin.Context) {
	actorID, actorRole := actingIdentity(c)
	resp, err := h.jobService.UpdateStatus(c.Request.Context(), actorID, actorRole, c.Param("id"), models.JobStatusApproved)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateJobStatus(c *gin.Context) {
	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actorID, actorRole := actingIdentity(c)
	resp, err := h.jobService.UpdateStatus(c.Request.Context(), actorID, actorRole, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	actorID, actorRole := actingIdentity(c)
	if err := h.jobService.Delete(c.Request.Context(), actorID, actorRole, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actorID, actorRole := actingIdentity(c)
	resp, err := h.appService.UpdateStatus(c.Request.Context(), actorID, actorRole, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
