package service

import (
	"context"
	"sync"

	"github.com/abhiguop/netflix/internal/domain"
)

// CatalogService keeps a local copy of the title catalog, only updating it on
// user request
type CatalogService struct {
	repo       domain.TitleRepository
	titles     []*domain.Title
	updateLock sync.Mutex
}

func NewCatalogService(repo domain.TitleRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) GetTitles() []*domain.Title {
	s.updateLock.Lock()
	defer s.updateLock.Unlock()
	return s.titles
}

// LoadTitles fetches the complete catalog from the repository
func (s *CatalogService) LoadTitles(ctx context.Context) error {
	list, err := s.repo.GetTitles(ctx)
	if err != nil {
		return err
	}

	s.updateLock.Lock()
	s.titles = list
	s.updateLock.Unlock()
	return nil
}

// GetTitleByID finds a title in the cached catalog by its ID
func (s *CatalogService) GetTitleByID(id string) *domain.Title {
	s.updateLock.Lock()
	defer s.updateLock.Unlock()
	for _, title := range s.titles {
		if title.ID == id {
			return title
		}
	}
	return nil
}
