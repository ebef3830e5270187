package handlers

import (
	"net/http"

	"github.com/kamranshamim45/ai-job-portal/internal/middleware"
	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/services"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// RegisterPublicRoutes mounts the unauthenticated browse endpoints.
func (h *JobHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("", h.List)
	r.GET("/:id", h.Get)
}

// RegisterCandidateRoutes mounts candidate endpoints; the group must be
// behind AuthMiddleware.
func (h *JobHandler) RegisterCandidateRoutes(r *gin.RouterGroup) {
	r.GET("/recommendations", h.Recommendations)
}

// RegisterRecruiterRoutes mounts recruiter management endpoints; the group
// must be behind AuthMiddleware plus a recruiter/admin role check.
func (h *JobHandler) RegisterRecruiterRoutes(r *gin.RouterGroup) {
	r.POST("", h.Create)
	r.PUT("/:id", h.Update)
	r.PUT("/:id/status", h.UpdateStatus)
	r.DELETE("/:id", h.Delete)
	r.GET("/recruiter/my-jobs", h.ListMine)
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.jobService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	actorID, actorRole := actingIdentity(c)
	resp, err := h.jobService.Get(c.Request.Context(), actorID, actorRole, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actorID, actorRole := actingIdentity(c)
	resp, err := h.jobService.Create(c.Request.Context(), actorID, actorRole, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actorID, actorRole := actingIdentity(c)
	resp, err := h.jobService.Update(c.Request.Context(), actorID, actorRole, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
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

func (h *JobHandler) Delete(c *gin.Context) {
	actorID, actorRole := actingIdentity(c)
	if err := h.jobService.Delete(c.Request.Context(), actorID, actorRole, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) ListMine(c *gin.Context) {
	resp, err := h.jobService.ListByRecruiter(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": resp})
}

func (h *JobHandler) Recommendations(c *gin.Context) {
	recs, err := h.jobService.Recommendations(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// actingIdentity reads the authenticated identity, tolerating anonymous
// requests on public routes.
func actingIdentity(c *gin.Context) (string, models.UserRole) {
	role, _ := middleware.ActingRole(c)
	return middleware.GetUserID(c), role
}
