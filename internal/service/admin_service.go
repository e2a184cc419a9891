package service

import (
	"context"

	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
)

const ProfileNote = "Profile changes are saved locally in this demo"

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

type IAdminService interface {
	Dashboard(ctx context.Context, user *entity.Session) (*dto.DashboardResponse, error)
	Profile() *dto.ProfileResponse
	Logs(level string, limit, offset int) (*dto.LogListResponse, error)
}

type adminService struct {
	store       *contentstore.Store
	posts       recordLoader[entity.Post]
	experiences recordLoader[entity.ExperienceEntry]
	portfolio   IPortfolioService
	logger      logger.ILogger
}

func NewAdminService(
	store *contentstore.Store,
	posts recordLoader[entity.Post],
	experiences recordLoader[entity.ExperienceEntry],
	portfolio IPortfolioService,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		store:       store,
		posts:       posts,
		experiences: experiences,
		portfolio:   portfolio,
		logger:      log,
	}
}

func (s *adminService) Dashboard(ctx context.Context, user *entity.Session) (*dto.DashboardResponse, error) {
	posts, err := s.posts.Load(ctx)
	if err != nil {
		return nil, err
	}
	experiences, err := s.experiences.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		User:            user,
		PostCount:       len(posts),
		ExperienceCount: len(experiences),
		Acknowledgment:  s.store.Acknowledgment(),
	}, nil
}

func (s *adminService) Profile() *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Profile: s.portfolio.Profile(),
		Note:    ProfileNote,
	}
}

func (s *adminService) Logs(level string, limit, offset int) (*dto.LogListResponse, error) {
	switch {
	case limit <= 0:
		limit = defaultLogLimit
	case limit > maxLogLimit:
		limit = maxLogLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.LogListResponse{Items: items, Limit: limit, Offset: offset}, nil
}
