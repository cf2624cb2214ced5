package handler

import (
	"fmt"
	"time"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStats shows the user's learning statistics
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	if _, err := h.vocabService.LoadUserVocabulary(userID); err != nil {
		h.logger.Error("Failed to load user vocabulary", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load your stats"})
	}

	stats := h.vocabService.Stats(userID)

	text := fmt.Sprintf(
		"📊 Your vocabulary\n\n"+
			"Total words: %d\n"+
			"🏆 Mastered: %d\n"+
			"📗 Learning: %d\n"+
			"🆕 New: %d\n"+
			"⭐ Favorites: %d\n"+
			"⏰ Due for review: %d",
		stats.Total, stats.Mastered, stats.Learning, stats.New,
		stats.Favorites, stats.DueForReview,
	)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnReview),
		markup.Row(btnMainMenu),
	)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleFavorites lists the user's favorite words
func (h *Handler) handleFavorites(c tele.Context) error {
	userID := c.Sender().ID

	if _, err := h.vocabService.LoadUserVocabulary(userID); err != nil {
		h.logger.Error("Failed to load user vocabulary", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load your favorites"})
	}

	favorites := h.vocabService.FavoriteWords(userID)
	if len(favorites) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "You have no favorite words yet",
			ShowAlert: true,
		})
	}

	now := time.Now()
	text := fmt.Sprintf("⭐ Your favorites (%d):\n\n", len(favorites))
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for i, entry := range favorites {
		word, err := h.catalogService.Word(entry.WordID)
		if err != nil || word == nil {
			continue
		}
		due := domain.ReviewDate{Date: entry.NextReview}
		text += fmt.Sprintf("%d. %s — %s (mastery %d/5, review %s)\n",
			i+1, word.Word, word.Definition, entry.MasteryLevel, due.DisplayString(now))
		rows = append(rows, markup.Row(
			markup.Data(fmt.Sprintf("💔 Unfavorite %q", word.Word), "fav_"+entry.ID),
		))
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}
