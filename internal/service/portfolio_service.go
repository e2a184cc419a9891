package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/dto"
	"portfolio-be/internal/editor"
	"portfolio-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const portfolioCacheTTL = 10 * time.Minute

type IPortfolioService interface {
	Overview(ctx context.Context) (*dto.PortfolioResponse, error)
	Writing(ctx context.Context) ([]entity.Post, error)
	Post(ctx context.Context, id string) (*entity.Post, error)
	Experience(ctx context.Context) ([]entity.ExperienceEntry, error)
	Profile() entity.Profile
	Invalidate(key contentstore.Key)
	CollectionSaved(ctx context.Context, key contentstore.Key, size int)
}

type recordLoader[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

type portfolioService struct {
	defaults    *entity.Portfolio
	posts       recordLoader[entity.Post]
	experiences recordLoader[entity.ExperienceEntry]
	cache       *cache.Cache

	// generations counts invalidations per key. A load only fills the cache
	// when no invalidation happened while it was reading.
	mu          sync.Mutex
	generations map[contentstore.Key]uint64
}

func NewPortfolioService(defaults *entity.Portfolio, posts recordLoader[entity.Post], experiences recordLoader[entity.ExperienceEntry]) IPortfolioService {
	return &portfolioService{
		defaults:    defaults,
		posts:       posts,
		experiences: experiences,
		cache:       cache.New(portfolioCacheTTL, 2*portfolioCacheTTL),
		generations: make(map[contentstore.Key]uint64),
	}
}

func (s *portfolioService) Overview(ctx context.Context) (*dto.PortfolioResponse, error) {
	d := s.defaults
	return &dto.PortfolioResponse{
		Profile:       d.Profile,
		Pillars:       d.Pillars,
		Philosophy:    d.Philosophy,
		SelectedWork:  d.SelectedWork,
		Collaborators: d.Collaborators,
		Capabilities:  d.Capabilities,
		Links:         d.Links,
	}, nil
}

// Writing returns the saved posts, or the built-in ones while none are saved.
func (s *portfolioService) Writing(ctx context.Context) ([]entity.Post, error) {
	return cachedLoad(ctx, s, contentstore.KeyPosts, s.posts, s.defaults.Writing)
}

func (s *portfolioService) Post(ctx context.Context, id string) (*entity.Post, error) {
	posts, err := s.Writing(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.Id == id {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, fmt.Errorf("post %q: %w", id, editor.ErrRecordNotFound)
}

func (s *portfolioService) Experience(ctx context.Context) ([]entity.ExperienceEntry, error) {
	return cachedLoad(ctx, s, contentstore.KeyExperiences, s.experiences, s.defaults.Experience)
}

func (s *portfolioService) Profile() entity.Profile {
	return s.defaults.Profile
}

func (s *portfolioService) Invalidate(key contentstore.Key) {
	s.mu.Lock()
	s.generations[key]++
	s.cache.Delete(string(key))
	s.mu.Unlock()
}

// CollectionSaved drops the cached collection as part of the save itself, so
// a read that follows a save never sees the previous value.
func (s *portfolioService) CollectionSaved(_ context.Context, key contentstore.Key, _ int) {
	s.Invalidate(key)
}

func (s *portfolioService) generation(key contentstore.Key) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key]
}

func (s *portfolioService) cacheIfCurrent(key contentstore.Key, gen uint64, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[key] == gen {
		s.cache.SetDefault(string(key), value)
	}
}

// cachedLoad serves key from the cache or loads it, falling back to defaults
// while the stored collection is empty.
func cachedLoad[T any](ctx context.Context, s *portfolioService, key contentstore.Key, loader recordLoader[T], defaults []T) ([]T, error) {
	if cached, found := s.cache.Get(string(key)); found {
		return cached.([]T), nil
	}

	gen := s.generation(key)
	records, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		records = defaults
	}
	s.cacheIfCurrent(key, gen, records)
	return records, nil
}
