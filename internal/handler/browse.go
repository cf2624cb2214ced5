package handler

import (
	"fmt"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const browsePageSize = 8

// handleBrowse shows a page of catalog words with category filters
func (h *Handler) handleBrowse(c tele.Context) error {
	userID := c.Sender().ID

	words, err := h.catalogService.FetchWords(repository.WordFilter{Limit: browsePageSize})
	if err != nil {
		h.logger.Error("Failed to fetch catalog", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load the catalog"})
	}

	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "The catalog is empty",
			ShowAlert: true,
		})
	}

	text, markup := buildBrowseView("📚 Catalog words:", words, h.catalogService.Categories())

	return h.replyBrowseView(c, userID, text, markup)
}

// handleBrowseCategory shows catalog words from one category
func (h *Handler) handleBrowseCategory(c tele.Context, category string) error {
	userID := c.Sender().ID

	words, err := h.catalogService.FetchWords(repository.WordFilter{Category: category, Limit: browsePageSize})
	if err != nil {
		h.logger.Error("Failed to fetch catalog category",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", category),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load the catalog"})
	}

	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "No words in this category anymore"})
	}

	text, markup := buildBrowseView(fmt.Sprintf("📚 Catalog words in %q:", category), words, nil)

	return h.replyBrowseView(c, userID, text, markup)
}

func (h *Handler) replyBrowseView(c tele.Context, userID int64, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// buildBrowseView renders a catalog listing with add buttons per word and a
// filter button per category
func buildBrowseView(header string, words []domain.VocabularyWord, categories []string) (string, *tele.ReplyMarkup) {
	text := header + "\n\n"
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for i, word := range words {
		text += fmt.Sprintf("%d. %s (%s, %s) — %s\n", i+1, word.Word, word.PartOfSpeech, word.Level, word.Definition)
		rows = append(rows, markup.Row(
			markup.Data(fmt.Sprintf("➕ Add %q", word.Word), "add_"+word.ID),
		))
	}

	for _, category := range categories {
		rows = append(rows, markup.Row(
			markup.Data("🗂 "+category, "cat_"+category),
		))
	}

	text += "\nYou can also send me any text to search the catalog."
	rows = append(rows, markup.Row(btnBrowse, btnMainMenu))
	markup.Inline(rows...)

	return text, markup
}

// handleAddWord puts a catalog word into the user's vocabulary
func (h *Handler) handleAddWord(c tele.Context, wordID string) error {
	userID := c.Sender().ID

	word, err := h.catalogService.Word(wordID)
	if err != nil {
		h.logger.Error("Failed to look up catalog word", zap.Error(err), zap.String("word_id", wordID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to add the word"})
	}
	if word == nil {
		return c.Respond(&tele.CallbackResponse{Text: "That word is no longer in the catalog"})
	}

	if _, err := h.vocabService.AddWord(userID, wordID); err != nil {
		h.logger.Error("Failed to add word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word_id", wordID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to add the word"})
	}

	return c.Respond(&tele.CallbackResponse{
		Text: fmt.Sprintf("Added %q. It is due for review right away!", word.Word),
	})
}

// handleToggleFavorite flips the favorite flag on a vocabulary entry
func (h *Handler) handleToggleFavorite(c tele.Context, entryID string) error {
	userID := c.Sender().ID

	entry, ok := h.vocabService.Entry(entryID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "That word is not in your vocabulary"})
	}

	saved, err := h.vocabService.ToggleFavorite(entryID, !entry.IsFavorite)
	if err != nil {
		h.logger.Error("Failed to toggle favorite",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("entry_id", entryID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to update the favorite"})
	}

	if saved.IsFavorite {
		return c.Respond(&tele.CallbackResponse{Text: "Added to favorites ⭐"})
	}
	return c.Respond(&tele.CallbackResponse{Text: "Removed from favorites"})
}
