package handlers

import (
	"net/http"

	"github.com/kamranshamim45/ai-job-portal/internal/middleware"
	"github.com/kamranshamim45/ai-job-portal/internal/services"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"
	"github.com/kamranshamim45/ai-job-portal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

// RegisterRoutes mounts the profile endpoints. The group must already be
// behind AuthMiddleware.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/me", h.GetProfile)
	r.PUT("/me", h.UpdateProfile)
	r.POST("/me/resume", h.UploadResume)
	r.POST("/me/photo", h.UploadPhoto)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	resp, err := h.userService.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UploadResume(c *gin.Context) {
	h.upload(c, h.userService.UploadResume)
}

func (h *UserHandler) UploadPhoto(c *gin.Context) {
	h.upload(c, h.userService.UploadPhoto)
}

func (h *UserHandler) upload(c *gin.Context, save services.UploadFunc) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file in form field 'file'"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := save(
		c.Request.Context(),
		middleware.GetUserID(c),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
