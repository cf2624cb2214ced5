package handler

import (
	"testing"

	"lexibot/internal/domain"
	"lexibot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestBuildBrowseView(t *testing.T) {
	journey := testutil.NewTestWord("w1", "journey", domain.LevelIntermediate)
	deadline := testutil.NewTestWord("w2", "deadline", domain.LevelAdvanced)

	text, markup := buildBrowseView("📚 Catalog words:", []domain.VocabularyWord{journey, deadline}, []string{"business", "travel"})

	assert.Contains(t, text, "journey")
	assert.Contains(t, text, "deadline")

	var uniques []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			uniques = append(uniques, btn.Unique)
		}
	}

	assert.Contains(t, uniques, "add_w1")
	assert.Contains(t, uniques, "add_w2")
	assert.Contains(t, uniques, "cat_business")
	assert.Contains(t, uniques, "cat_travel")
	assert.Contains(t, uniques, "browse")
	assert.Contains(t, uniques, "main_menu")
}

func TestBuildBrowseView_NoCategories(t *testing.T) {
	word := testutil.NewTestWord("w1", "journey", domain.LevelIntermediate)

	_, markup := buildBrowseView("📚 Catalog words in \"travel\":", []domain.VocabularyWord{word}, nil)

	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			assert.NotContains(t, btn.Unique, "cat_")
		}
	}
}
