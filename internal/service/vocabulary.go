package service

import (
	"sort"
	"sync"
	"time"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reviewIntervals holds the spaced-repetition intervals in days, indexed by
// the mastery level AFTER the review is applied.
var reviewIntervals = [...]int{1, 3, 7, 14, 30, 90}

// VocabularyService owns a user's learning state: the mastery transitions,
// the review schedule, and an in-memory mirror of the stored entries, keyed
// per user so sessions never see each other. The database remains the source
// of truth; the mirror only serves the synchronous query methods.
type VocabularyService struct {
	repo   repository.UserVocabularyRepository
	logger *zap.Logger
	now    func() time.Time

	mu      sync.RWMutex
	entries map[int64][]domain.UserVocabularyEntry
}

// NewVocabularyService creates a new vocabulary service with an empty mirror
func NewVocabularyService(repo repository.UserVocabularyRepository, logger *zap.Logger) *VocabularyService {
	return &VocabularyService{
		repo:    repo,
		logger:  logger,
		now:     time.Now,
		entries: make(map[int64][]domain.UserVocabularyEntry),
	}
}

// LoadUserVocabulary replaces this user's mirror with the stored state.
// Other users' mirrors are untouched.
func (s *VocabularyService) LoadUserVocabulary(userID int64) ([]domain.UserVocabularyEntry, error) {
	entries, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}

	s.mu.Lock()
	s.entries[userID] = entries
	s.mu.Unlock()

	return entries, nil
}

// AddWord creates the learning-state entry for a word the user picked up:
// mastery 0, never reviewed, due immediately. Adding a word the user already
// has resets its learning state.
func (s *VocabularyService) AddWord(userID int64, wordID string) (domain.UserVocabularyEntry, error) {
	now := s.now()
	entry := domain.UserVocabularyEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		WordID:     wordID,
		NextReview: now,
	}

	saved, err := s.repo.Upsert(entry)
	if err != nil {
		return domain.UserVocabularyEntry{}, domain.StoreFailure(err)
	}

	s.replaceOrAppend(saved)

	s.logger.Info("Word added to vocabulary",
		zap.Int64("user_id", userID),
		zap.String("word_id", wordID),
	)

	return saved, nil
}

// RecordReview applies one review outcome to an entry: the mastery level
// moves one step (clamped to the scale), the review counters advance, and the
// next review is scheduled from the interval table. The mirror is only
// updated after the store write succeeds.
func (s *VocabularyService) RecordReview(entryID string, isCorrect bool) (domain.UserVocabularyEntry, error) {
	entry, ok := s.Entry(entryID)
	if !ok {
		return domain.UserVocabularyEntry{}, domain.BadRequest("unknown vocabulary entry %q", entryID)
	}

	now := s.now()
	entry.MasteryLevel = nextMasteryLevel(entry.MasteryLevel, isCorrect)
	entry.TimesReviewed++
	entry.LastReviewed = &now
	entry.NextReview = now.AddDate(0, 0, intervalDays(entry.MasteryLevel))

	saved, err := s.repo.Upsert(entry)
	if err != nil {
		return domain.UserVocabularyEntry{}, domain.StoreFailure(err)
	}

	s.replaceOrAppend(saved)

	return saved, nil
}

// ToggleFavorite sets the favorite flag unconditionally. Mastery and
// scheduling are untouched.
func (s *VocabularyService) ToggleFavorite(entryID string, favorite bool) (domain.UserVocabularyEntry, error) {
	saved, err := s.repo.SetFavorite(entryID, favorite)
	if err != nil {
		return domain.UserVocabularyEntry{}, domain.StoreFailure(err)
	}

	s.replaceOrAppend(saved)

	return saved, nil
}

// Entry returns the mirrored entry with the given id
func (s *VocabularyService) Entry(entryID string) (domain.UserVocabularyEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entries := range s.entries {
		for _, e := range entries {
			if e.ID == entryID {
				return e, true
			}
		}
	}
	return domain.UserVocabularyEntry{}, false
}

// WordsDueForReview returns the user's due entries, earliest due first.
// Entries due at the same instant keep their mirror order.
func (s *VocabularyService) WordsDueForReview(userID int64) []domain.UserVocabularyEntry {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var due []domain.UserVocabularyEntry
	for _, e := range s.entries[userID] {
		if e.IsDue(now) {
			due = append(due, e)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReview.Before(due[j].NextReview)
	})

	return due
}

// FavoriteWords returns the user's favorite entries in mirror order
func (s *VocabularyService) FavoriteWords(userID int64) []domain.UserVocabularyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var favorites []domain.UserVocabularyEntry
	for _, e := range s.entries[userID] {
		if e.IsFavorite {
			favorites = append(favorites, e)
		}
	}
	return favorites
}

// WordsAtMasteryLevel returns the user's entries at exactly the given level
func (s *VocabularyService) WordsAtMasteryLevel(userID int64, level int) []domain.UserVocabularyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.UserVocabularyEntry
	for _, e := range s.entries[userID] {
		if e.MasteryLevel == level {
			matched = append(matched, e)
		}
	}
	return matched
}

// Stats aggregates the user's learning state. Every entry falls into exactly
// one of the mastered/learning/new buckets.
func (s *VocabularyService) Stats(userID int64) domain.VocabularyStats {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.VocabularyStats
	for _, e := range s.entries[userID] {
		stats.Total++
		switch {
		case e.MasteryLevel >= 4:
			stats.Mastered++
		case e.MasteryLevel >= 1:
			stats.Learning++
		default:
			stats.New++
		}
		if e.IsFavorite {
			stats.Favorites++
		}
		if e.IsDue(now) {
			stats.DueForReview++
		}
	}

	return stats
}

// replaceOrAppend updates the owning user's mirror in place, preserving
// insertion order for all other entries
func (s *VocabularyService) replaceOrAppend(entry domain.UserVocabularyEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries[entry.UserID]
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			return
		}
	}
	s.entries[entry.UserID] = append(entries, entry)
}

// nextMasteryLevel moves one step up or down and clamps to the mastery scale
func nextMasteryLevel(current int, isCorrect bool) int {
	if isCorrect {
		return min(domain.MaxMasteryLevel, current+1)
	}
	return max(domain.MinMasteryLevel, current-1)
}

// intervalDays returns the review interval for a mastery level. Levels
// outside the table fall back to one day.
func intervalDays(masteryLevel int) int {
	if masteryLevel < 0 || masteryLevel >= len(reviewIntervals) {
		return 1
	}
	return reviewIntervals[masteryLevel]
}
