package domain

import "time"

// Level is a learner proficiency level
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Mastery scale bounds for a vocabulary entry
const (
	MinMasteryLevel = 0
	MaxMasteryLevel = 5
)

// VocabularyWord is an immutable catalog entry, maintained by content
// administration and read-only here
type VocabularyWord struct {
	ID           string
	Word         string
	Definition   string
	PartOfSpeech string
	Example      string
	Level        Level
	Category     string
	AudioURL     string
	ImageURL     string
	CreatedAt    time.Time
}

// UserVocabularyEntry is the mutable learning state for one (user, word) pair
type UserVocabularyEntry struct {
	ID            string
	UserID        int64
	WordID        string
	MasteryLevel  int
	TimesReviewed int
	LastReviewed  *time.Time
	NextReview    time.Time
	IsFavorite    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsDue reports whether the entry should be reviewed at the given time
func (e UserVocabularyEntry) IsDue(now time.Time) bool {
	return !e.NextReview.After(now)
}

// VocabularyStats aggregates a user's learning state.
// Mastered, Learning and New partition Total; Favorites and DueForReview
// overlap the mastery buckets freely.
type VocabularyStats struct {
	Total        int
	Mastered     int
	Learning     int
	New          int
	Favorites    int
	DueForReview int
}
