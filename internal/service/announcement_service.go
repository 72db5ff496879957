package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/internal/repository"
	"anoa.com/clanportal/pkg/apperror"
)

type AnnouncementService interface {
	// Create posts an announcement attributed to the author's clan.
	Create(ctx context.Context, author *model.User, content string) error
	// List is the global feed across all clans, newest first.
	List(ctx context.Context) ([]*model.Announcement, error)
}

type announcementService struct {
	repo      repository.AnnouncementRepository
	sanitizer *bluemonday.Policy
}

func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *announcementService) Create(ctx context.Context, author *model.User, content string) error {
	clean := strings.TrimSpace(s.sanitizer.Sanitize(content))
	if clean == "" {
		return apperror.New(http.StatusBadRequest, "content is empty", nil)
	}

	announcement := &model.Announcement{
		ClanID:  author.ClanID,
		Content: clean,
	}

	return s.repo.Create(ctx, announcement)
}

func (s *announcementService) List(ctx context.Context) ([]*model.Announcement, error) {
	announcements, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []*model.Announcement{}
	}

	return announcements, nil
}
