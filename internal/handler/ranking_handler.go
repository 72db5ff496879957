package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/clanportal/internal/service"
	"anoa.com/clanportal/pkg/response"
)

type RankingHandler struct {
	rankingService service.RankingService
}

func NewRankingHandler(rankingService service.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

func (h *RankingHandler) GetRanking(c *gin.Context) {
	clanRanking, memberRanking, err := h.rankingService.Rankings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clanRanking":   clanRanking,
		"memberRanking": memberRanking,
	})
}
