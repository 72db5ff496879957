package service

import (
	"context"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/repository"
)

const memberRankingLimit = 10

type RankingService interface {
	Rankings(ctx context.Context) ([]dto.ClanRank, []dto.MemberRank, error)
}

type rankingService struct {
	repo repository.RankingRepository
}

func NewRankingService(repo repository.RankingRepository) RankingService {
	return &rankingService{repo: repo}
}

func (s *rankingService) Rankings(ctx context.Context) ([]dto.ClanRank, []dto.MemberRank, error) {
	clanRanking, err := s.repo.ClanRanking(ctx)
	if err != nil {
		return nil, nil, err
	}

	memberRanking, err := s.repo.MemberRanking(ctx, memberRankingLimit)
	if err != nil {
		return nil, nil, err
	}

	if clanRanking == nil {
		clanRanking = []dto.ClanRank{}
	}
	if memberRanking == nil {
		memberRanking = []dto.MemberRank{}
	}

	return clanRanking, memberRanking, nil
}
