package repository

import (
	"lexibot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// WordFilter narrows catalog queries. Zero-value fields are ignored.
type WordFilter struct {
	Level    domain.Level
	Category string
	Search   string
	Limit    int
}

// CatalogRepository defines read access to the vocabulary catalog
type CatalogRepository interface {
	ListWords(filter WordFilter) ([]domain.VocabularyWord, error)
	GetWord(wordID string) (*domain.VocabularyWord, error)
}

// UserVocabularyRepository defines learning-state persistence,
// one row per (user, word) pair
type UserVocabularyRepository interface {
	ListByUser(userID int64) ([]domain.UserVocabularyEntry, error)
	Upsert(entry domain.UserVocabularyEntry) (domain.UserVocabularyEntry, error)
	SetFavorite(entryID string, favorite bool) (domain.UserVocabularyEntry, error)
}
