package postgres

import (
	"database/sql"

	"lexibot/internal/domain"
)

// UserVocabularyRepo implements repository.UserVocabularyRepository
type UserVocabularyRepo struct {
	db *sql.DB
}

// NewUserVocabularyRepo creates a new user vocabulary repository
func NewUserVocabularyRepo(db *sql.DB) *UserVocabularyRepo {
	return &UserVocabularyRepo{db: db}
}

const entryColumns = `id, user_id, word_id, mastery_level, times_reviewed, last_reviewed, next_review, is_favorite, created_at, updated_at`

// ListByUser returns all learning-state entries for a user, most recently
// reviewed first (never-reviewed entries last)
func (r *UserVocabularyRepo) ListByUser(userID int64) ([]domain.UserVocabularyEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM user_vocabulary
		WHERE user_id = $1
		ORDER BY last_reviewed DESC NULLS LAST, created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.UserVocabularyEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Upsert writes the full learning state for one (user, word) pair and returns
// the stored row. The (user_id, word_id) pair is the conflict key, so the row
// keeps its original id across updates.
func (r *UserVocabularyRepo) Upsert(entry domain.UserVocabularyEntry) (domain.UserVocabularyEntry, error) {
	query := `
		INSERT INTO user_vocabulary (id, user_id, word_id, mastery_level, times_reviewed, last_reviewed, next_review, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, word_id)
		DO UPDATE SET
			mastery_level = EXCLUDED.mastery_level,
			times_reviewed = EXCLUDED.times_reviewed,
			last_reviewed = EXCLUDED.last_reviewed,
			next_review = EXCLUDED.next_review,
			is_favorite = EXCLUDED.is_favorite,
			updated_at = NOW()
		RETURNING ` + entryColumns + `
	`

	var lastReviewed sql.NullTime
	if entry.LastReviewed != nil {
		lastReviewed = sql.NullTime{Time: *entry.LastReviewed, Valid: true}
	}

	row := r.db.QueryRow(query,
		entry.ID, entry.UserID, entry.WordID, entry.MasteryLevel,
		entry.TimesReviewed, lastReviewed, entry.NextReview, entry.IsFavorite,
	)

	return scanEntry(row)
}

// SetFavorite updates only the favorite flag and returns the stored row
func (r *UserVocabularyRepo) SetFavorite(entryID string, favorite bool) (domain.UserVocabularyEntry, error) {
	query := `
		UPDATE user_vocabulary
		SET is_favorite = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + entryColumns + `
	`

	return scanEntry(r.db.QueryRow(query, entryID, favorite))
}

func scanEntry(row rowScanner) (domain.UserVocabularyEntry, error) {
	var e domain.UserVocabularyEntry
	var lastReviewed sql.NullTime

	err := row.Scan(
		&e.ID, &e.UserID, &e.WordID, &e.MasteryLevel, &e.TimesReviewed,
		&lastReviewed, &e.NextReview, &e.IsFavorite, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.UserVocabularyEntry{}, err
	}

	if lastReviewed.Valid {
		e.LastReviewed = &lastReviewed.Time
	}

	return e, nil
}
