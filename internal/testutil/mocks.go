package testutil

import (
	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockCatalogRepository is a mock for CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListWords(filter repository.WordFilter) ([]domain.VocabularyWord, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyWord), args.Error(1)
}

func (m *MockCatalogRepository) GetWord(wordID string) (*domain.VocabularyWord, error) {
	args := m.Called(wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyWord), args.Error(1)
}

// MockUserVocabularyRepository is a mock for UserVocabularyRepository
type MockUserVocabularyRepository struct {
	mock.Mock
}

func (m *MockUserVocabularyRepository) ListByUser(userID int64) ([]domain.UserVocabularyEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserVocabularyEntry), args.Error(1)
}

func (m *MockUserVocabularyRepository) Upsert(entry domain.UserVocabularyEntry) (domain.UserVocabularyEntry, error) {
	args := m.Called(entry)
	if args.Get(0) == nil {
		return domain.UserVocabularyEntry{}, args.Error(1)
	}
	return args.Get(0).(domain.UserVocabularyEntry), args.Error(1)
}

func (m *MockUserVocabularyRepository) SetFavorite(entryID string, favorite bool) (domain.UserVocabularyEntry, error) {
	args := m.Called(entryID, favorite)
	if args.Get(0) == nil {
		return domain.UserVocabularyEntry{}, args.Error(1)
	}
	return args.Get(0).(domain.UserVocabularyEntry), args.Error(1)
}
