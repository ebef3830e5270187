package handlers

import (
	"net/http"

	"github.com/kamranshamim45/ai-job-portal/internal/middleware"
	"github.com/kamranshamim45/ai-job-portal/internal/services"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, appService: appService}
}

// RegisterCandidateRoutes mounts the applicant-side endpoints; the group
// must be behind AuthMiddleware.
func (h *ApplicationHandler) RegisterCandidateRoutes(r *gin.RouterGroup) {
	r.POST("/apply/:id", h.Apply)
	r.GET("/applications/my", h.ListMine)
	r.GET("/applications/:id", h.Get)
}

// RegisterRecruiterRoutes mounts the recruiter-side endpoints; the group
// must be behind AuthMiddleware plus a recruiter/admin role check.
func (h *ApplicationHandler) RegisterRecruiterRoutes(r *gin.RouterGroup) {
	r.GET("/:id/applications", h.ListForJob)
	r.GET("/recruiter/applications", h.ListForRecruiter)
	r.GET("/recruiter/applications/:id", h.Get)
	r.PUT("/recruiter/applications/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	resp, err := h.appService.Apply(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.appService.ListMine(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	actorID, actorRole := actingIdentity(c)
	resp, err := h.appService.Get(c.Request.Context(), actorID, actorRole, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	actorID, actorRole := actingIdentity(c)
	apps, err := h.appService.ListForJob(c.Request.Context(), actorID, actorRole, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) ListForRecruiter(c *gin.Context) {
	apps, err := h.appService.ListForRecruiter(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
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
