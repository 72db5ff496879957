package repository

import (
	"context"

	"gorm.io/gorm"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/model"
)

type RankingRepository interface {
	// ClanRanking counts accepted members per clan, descending. Clans with
	// no accepted members still appear with a zero count.
	ClanRanking(ctx context.Context) ([]dto.ClanRank, error)
	// MemberRanking returns the top users by score, null scores as zero.
	MemberRanking(ctx context.Context, limit int) ([]dto.MemberRank, error)
}

type rankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

func (r *rankingRepository) ClanRanking(ctx context.Context) ([]dto.ClanRank, error) {
	var ranks []dto.ClanRank
	if err := r.db.WithContext(ctx).
		Model(&model.Clan{}).
		Select("clans.name, COUNT(users.id) AS total").
		Joins("LEFT JOIN users ON users.clan_id = clans.id AND users.status = ?", model.StatusAccepted).
		Group("clans.id, clans.name").
		Order("total DESC").
		Scan(&ranks).Error; err != nil {
		return nil, err
	}

	return ranks, nil
}

func (r *rankingRepository) MemberRanking(ctx context.Context, limit int) ([]dto.MemberRank, error) {
	var ranks []dto.MemberRank
	if err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("name, COALESCE(score, 0) AS score").
		Order("score DESC").
		Limit(limit).
		Scan(&ranks).Error; err != nil {
		return nil, err
	}

	return ranks, nil
}
