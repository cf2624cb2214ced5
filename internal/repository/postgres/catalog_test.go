package postgres

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"
	"time"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func catalogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "word", "definition", "part_of_speech", "example_sentence",
		"difficulty_level", "category", "audio_url", "image_url", "created_at",
	})
}

func TestCatalogRepo_ListWords(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		filter        repository.WordFilter
		expectedQuery string
		expectedArgs  []driver.Value
		mockRows      *sqlmock.Rows
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{
			name:          "no filter",
			filter:        repository.WordFilter{},
			expectedQuery: "SELECT (.+) FROM vocabulary_words ORDER BY word ASC",
			expectedArgs:  nil,
			mockRows: catalogRows().
				AddRow("w1", "resilient", "able to recover quickly", "adjective", "She is resilient.", "intermediate", "character", nil, nil, now).
				AddRow("w2", "ubiquitous", "found everywhere", "adjective", "Phones are ubiquitous.", "advanced", "technology", nil, nil, now),
			expectedCount: 2,
		},
		{
			name:          "level filter",
			filter:        repository.WordFilter{Level: domain.LevelBeginner},
			expectedQuery: "SELECT (.+) FROM vocabulary_words WHERE difficulty_level = \\$1 ORDER BY word ASC",
			expectedArgs:  []driver.Value{"beginner"},
			mockRows: catalogRows().
				AddRow("w3", "cat", "a small pet", "noun", "The cat sleeps.", "beginner", "animals", nil, nil, now),
			expectedCount: 1,
		},
		{
			name:          "search with limit",
			filter:        repository.WordFilter{Search: "run", Limit: 5},
			expectedQuery: "SELECT (.+) FROM vocabulary_words WHERE \\(word ILIKE \\$1 OR definition ILIKE \\$1\\) ORDER BY word ASC LIMIT \\$2",
			expectedArgs:  []driver.Value{"%run%", 5},
			mockRows:      catalogRows(),
			expectedCount: 0,
		},
		{
			name:          "database error",
			filter:        repository.WordFilter{},
			expectedQuery: "SELECT (.+) FROM vocabulary_words ORDER BY word ASC",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewCatalogRepo(db)

			expect := mock.ExpectQuery(tt.expectedQuery)
			if len(tt.expectedArgs) > 0 {
				expect = expect.WithArgs(tt.expectedArgs...)
			}
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnRows(tt.mockRows)
			}

			words, err := repo.ListWords(tt.filter)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, words, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalogRepo_GetWord(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		wordID        string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name:   "word found",
			wordID: "w1",
			mockRows: catalogRows().
				AddRow("w1", "resilient", "able to recover quickly", "adjective", "She is resilient.", "intermediate", "character", "https://cdn/a.mp3", nil, now),
		},
		{
			name:        "word not found",
			wordID:      "missing",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name:          "database error",
			wordID:        "w1",
			mockError:     fmt.Errorf("db error"),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewCatalogRepo(db)

			expect := mock.ExpectQuery("SELECT (.+) FROM vocabulary_words WHERE id = \\$1").WithArgs(tt.wordID)
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnRows(tt.mockRows)
			}

			word, err := repo.GetWord(tt.wordID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectedNil {
				assert.Nil(t, word)
			} else {
				assert.NotNil(t, word)
				assert.Equal(t, tt.wordID, word.ID)
				assert.Equal(t, "https://cdn/a.mp3", word.AudioURL)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
