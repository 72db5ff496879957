package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anoa.com/clanportal/internal/service"
	"anoa.com/clanportal/pkg/response"
)

type ClanHandler struct {
	clanService service.ClanService
}

func NewClanHandler(clanService service.ClanService) *ClanHandler {
	return &ClanHandler{clanService: clanService}
}

func (h *ClanHandler) ListClans(c *gin.Context) {
	clans, err := h.clanService.ListClans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "clans": clans})
}

func (h *ClanHandler) ClanDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid clan id"})
		return
	}

	detail, err := h.clanService.ClanDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"clan":          detail.Clan,
		"members":       detail.Members,
		"announcements": detail.Announcements,
	})
}
