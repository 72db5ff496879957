package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/middleware"
	"anoa.com/clanportal/internal/service"
	"anoa.com/clanportal/pkg/response"
	pkgvalidator "anoa.com/clanportal/pkg/validator"
)

type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	list, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var input dto.CreateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": pkgvalidator.FormatValidationError(err)})
		return
	}

	author := middleware.CurrentUser(c)
	if err := h.announcementService.Create(c.Request.Context(), author, input.Content); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
