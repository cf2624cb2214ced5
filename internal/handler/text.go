package handler

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const searchResultLimit = 8

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	// If not authorized, check password
	if !authorized {
		if h.authService.CheckPassword(text) {
			// Correct password
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send("✅ Access granted!\n\n"+mainMenuText, mainMenuMarkup())
		}

		// Wrong password
		return c.Send("Wrong password, try again.")
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingTopic:
		return h.startPractice(c, text)

	default:
		// Any free text searches the catalog
		return h.sendSearchResults(c, text)
	}
}

// sendSearchResults looks the text up in the catalog and offers matches for
// the user to add to their vocabulary
func (h *Handler) sendSearchResults(c tele.Context, query string) error {
	userID := c.Sender().ID

	words, err := h.catalogService.SearchWords(query, repository.WordFilter{Limit: searchResultLimit})
	if err != nil {
		h.logger.Error("Failed to search catalog",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("query", query),
		)
		return c.Send("Something went wrong. Please try again later.")
	}

	if len(words) == 0 {
		return c.Send(fmt.Sprintf("No catalog words match %q. Try another search or browse words from the menu.", query))
	}

	text := fmt.Sprintf("🔎 Words matching %q:\n\n", query)
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for i, word := range words {
		text += fmt.Sprintf("%d. %s (%s) — %s\n", i+1, word.Word, word.PartOfSpeech, word.Definition)
		rows = append(rows, markup.Row(
			markup.Data(fmt.Sprintf("➕ Add %q", word.Word), "add_"+word.ID),
		))
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return c.Send(text, markup)
}
