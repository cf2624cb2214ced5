package service

import (
	"sort"
	"sync"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"go.uber.org/zap"
)

// CatalogService handles vocabulary catalog browsing. The catalog is
// read-only here; content administration maintains it elsewhere.
type CatalogService struct {
	repo   repository.CatalogRepository
	logger *zap.Logger

	mu    sync.RWMutex
	words []domain.VocabularyWord
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// FetchWords loads catalog words matching the filter and mirrors them for
// Categories
func (s *CatalogService) FetchWords(filter repository.WordFilter) ([]domain.VocabularyWord, error) {
	words, err := s.repo.ListWords(filter)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}

	s.mu.Lock()
	s.words = words
	s.mu.Unlock()

	return words, nil
}

// SearchWords fetches catalog words whose headword or definition matches the
// query
func (s *CatalogService) SearchWords(query string, filter repository.WordFilter) ([]domain.VocabularyWord, error) {
	filter.Search = query
	return s.FetchWords(filter)
}

// Word returns a single catalog word, or nil if it does not exist
func (s *CatalogService) Word(wordID string) (*domain.VocabularyWord, error) {
	word, err := s.repo.GetWord(wordID)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}
	return word, nil
}

// Categories returns the sorted distinct categories of the last fetch
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.words))
	var categories []string
	for _, w := range s.words {
		if w.Category != "" && !seen[w.Category] {
			seen[w.Category] = true
			categories = append(categories, w.Category)
		}
	}

	sort.Strings(categories)
	return categories
}
