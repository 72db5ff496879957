package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/service"
	"anoa.com/clanportal/pkg/response"
	pkgvalidator "anoa.com/clanportal/pkg/validator"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) GetData(c *gin.Context) {
	data, err := h.adminService.GetData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": data.Users, "clans": data.Clans})
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid user id"})
		return
	}

	var input dto.SetRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": pkgvalidator.FormatValidationError(err)})
		return
	}

	if err := h.adminService.SetRole(c.Request.Context(), userID, input.Role); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) DeleteClan(c *gin.Context) {
	clanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid clan id"})
		return
	}

	if err := h.adminService.DeleteClan(c.Request.Context(), clanID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
