package testutil

import (
	"lexibot/internal/domain"
	"time"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestWord creates a test catalog word
func NewTestWord(id, word string, level domain.Level) domain.VocabularyWord {
	return domain.VocabularyWord{
		ID:           id,
		Word:         word,
		Definition:   "definition of " + word,
		PartOfSpeech: "noun",
		Example:      "An example sentence with " + word + ".",
		Level:        level,
		Category:     "general",
		CreatedAt:    time.Now(),
	}
}

// NewTestEntry creates a test learning-state entry due at the given time
func NewTestEntry(id string, userID int64, wordID string, masteryLevel int, nextReview time.Time) domain.UserVocabularyEntry {
	return domain.UserVocabularyEntry{
		ID:           id,
		UserID:       userID,
		WordID:       wordID,
		MasteryLevel: masteryLevel,
		NextReview:   nextReview,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
