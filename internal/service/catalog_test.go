package service

import (
	"errors"
	"testing"

	"lexibot/internal/domain"
	"lexibot/internal/repository"
	"lexibot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCatalogService_FetchWords(t *testing.T) {
	words := []domain.VocabularyWord{
		testutil.NewTestWord("w1", "journey", domain.LevelIntermediate),
		testutil.NewTestWord("w2", "vacation", domain.LevelBeginner),
	}

	repo := new(testutil.MockCatalogRepository)
	repo.On("ListWords", repository.WordFilter{Level: domain.LevelBeginner}).Return(words, nil)

	svc := NewCatalogService(repo, testutil.NewTestLogger())

	fetched, err := svc.FetchWords(repository.WordFilter{Level: domain.LevelBeginner})

	assert.NoError(t, err)
	assert.Equal(t, words, fetched)
	repo.AssertExpectations(t)
}

func TestCatalogService_FetchWords_StoreFailure(t *testing.T) {
	repo := new(testutil.MockCatalogRepository)
	repo.On("ListWords", repository.WordFilter{}).Return(nil, errors.New("connection refused"))

	svc := NewCatalogService(repo, testutil.NewTestLogger())

	_, err := svc.FetchWords(repository.WordFilter{})

	assert.Error(t, err)
	assert.Equal(t, domain.ClassStoreFailure, domain.ClassOf(err))
}

func TestCatalogService_SearchWords(t *testing.T) {
	repo := new(testutil.MockCatalogRepository)
	repo.On("ListWords", repository.WordFilter{Search: "jour", Limit: 10}).
		Return([]domain.VocabularyWord{testutil.NewTestWord("w1", "journey", domain.LevelIntermediate)}, nil)

	svc := NewCatalogService(repo, testutil.NewTestLogger())

	words, err := svc.SearchWords("jour", repository.WordFilter{Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, words, 1)
	assert.Equal(t, "journey", words[0].Word)
}

func TestCatalogService_Word(t *testing.T) {
	word := testutil.NewTestWord("w1", "journey", domain.LevelIntermediate)

	repo := new(testutil.MockCatalogRepository)
	repo.On("GetWord", "w1").Return(&word, nil)

	svc := NewCatalogService(repo, testutil.NewTestLogger())

	found, err := svc.Word("w1")

	assert.NoError(t, err)
	assert.Equal(t, &word, found)
}

func TestCatalogService_Categories(t *testing.T) {
	travel := testutil.NewTestWord("w1", "journey", domain.LevelIntermediate)
	travel.Category = "travel"
	business := testutil.NewTestWord("w2", "deadline", domain.LevelAdvanced)
	business.Category = "business"
	alsoTravel := testutil.NewTestWord("w3", "vacation", domain.LevelBeginner)
	alsoTravel.Category = "travel"
	uncategorized := testutil.NewTestWord("w4", "thing", domain.LevelBeginner)
	uncategorized.Category = ""

	repo := new(testutil.MockCatalogRepository)
	repo.On("ListWords", repository.WordFilter{}).
		Return([]domain.VocabularyWord{travel, business, alsoTravel, uncategorized}, nil)

	svc := NewCatalogService(repo, testutil.NewTestLogger())

	_, err := svc.FetchWords(repository.WordFilter{})
	assert.NoError(t, err)

	assert.Equal(t, []string{"business", "travel"}, svc.Categories())
}
