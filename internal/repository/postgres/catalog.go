package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/repository"
)

// CatalogRepo implements repository.CatalogRepository
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const wordColumns = `id, word, definition, part_of_speech, example_sentence, difficulty_level, category, audio_url, image_url, created_at`

// ListWords returns catalog words matching the filter, ordered by headword
func (r *CatalogRepo) ListWords(filter repository.WordFilter) ([]domain.VocabularyWord, error) {
	query := `SELECT ` + wordColumns + ` FROM vocabulary_words`

	var conds []string
	var args []any

	if filter.Level != "" {
		args = append(args, string(filter.Level))
		conds = append(conds, fmt.Sprintf("difficulty_level = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(word ILIKE $%d OR definition ILIKE $%d)", len(args), len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY word ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.VocabularyWord
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	return words, rows.Err()
}

// GetWord returns a single catalog word, or nil if it does not exist
func (r *CatalogRepo) GetWord(wordID string) (*domain.VocabularyWord, error) {
	row := r.db.QueryRow(`SELECT `+wordColumns+` FROM vocabulary_words WHERE id = $1`, wordID)

	word, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &word, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (domain.VocabularyWord, error) {
	var w domain.VocabularyWord
	var audioURL, imageURL sql.NullString

	err := row.Scan(
		&w.ID, &w.Word, &w.Definition, &w.PartOfSpeech, &w.Example,
		&w.Level, &w.Category, &audioURL, &imageURL, &w.CreatedAt,
	)
	if err != nil {
		return domain.VocabularyWord{}, err
	}

	w.AudioURL = audioURL.String
	w.ImageURL = imageURL.String

	return w, nil
}
