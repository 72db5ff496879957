package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/middleware"
	"anoa.com/clanportal/internal/service"
	"anoa.com/clanportal/pkg/response"
	pkgvalidator "anoa.com/clanportal/pkg/validator"
)

type MembershipHandler struct {
	membershipService service.MembershipService
}

func NewMembershipHandler(membershipService service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

func (h *MembershipHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": pkgvalidator.FormatValidationError(err)})
		return
	}

	id, err := h.membershipService.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *MembershipHandler) ListRequests(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	requests, err := h.membershipService.ListRequests(c.Request.Context(), owner.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "requests": requests})
}

func (h *MembershipHandler) Approve(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request id"})
		return
	}

	owner := middleware.CurrentUser(c)
	if err := h.membershipService.Approve(c.Request.Context(), owner.ID, requestID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MembershipHandler) Reject(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request id"})
		return
	}

	var input dto.RejectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": pkgvalidator.FormatValidationError(err)})
		return
	}

	owner := middleware.CurrentUser(c)
	if err := h.membershipService.Reject(c.Request.Context(), owner.ID, requestID, input.Message); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
