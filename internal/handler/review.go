package handler

import (
	"fmt"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleReview starts a review session over the user's due words
func (h *Handler) handleReview(c tele.Context) error {
	userID := c.Sender().ID

	if _, err := h.vocabService.LoadUserVocabulary(userID); err != nil {
		h.logger.Error("Failed to load user vocabulary", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load your words"})
	}

	due := h.vocabService.WordsDueForReview(userID)
	if len(due) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Nothing to review right now. Well done!",
			ShowAlert: true,
		})
	}

	queue := make([]string, 0, len(due))
	for _, entry := range due {
		queue = append(queue, entry.ID)
	}

	h.SetState(userID, &domain.StateData{
		State:       domain.StateReviewing,
		ReviewQueue: queue,
	})

	h.logger.Info("Review session started",
		zap.Int64("user_id", userID),
		zap.Int("due_words", len(queue)),
	)

	return h.sendReviewCard(c, userID)
}

// sendReviewCard shows the current word of the review session, definition
// hidden until the user reveals it
func (h *Handler) sendReviewCard(c tele.Context, userID int64) error {
	state := h.GetState(userID)
	if state.State != domain.StateReviewing || state.ReviewPos >= len(state.ReviewQueue) {
		return h.handleStart(c)
	}

	entry, ok := h.vocabService.Entry(state.ReviewQueue[state.ReviewPos])
	if !ok {
		h.logger.Warn("Review entry disappeared from mirror",
			zap.Int64("user_id", userID),
			zap.String("entry_id", state.ReviewQueue[state.ReviewPos]),
		)
		return h.skipReviewCard(c, userID, state)
	}

	word, err := h.catalogService.Word(entry.WordID)
	if err != nil || word == nil {
		h.logger.Warn("Catalog word missing for review entry",
			zap.Error(err),
			zap.String("word_id", entry.WordID),
		)
		return h.skipReviewCard(c, userID, state)
	}

	text := fmt.Sprintf("📖 Review %d of %d\n\n%s\n\nDo you remember what it means?",
		state.ReviewPos+1, len(state.ReviewQueue), word.Word)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnShowAnswer),
		markup.Row(btnCancel),
	)

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

// skipReviewCard advances past an entry that can no longer be shown
func (h *Handler) skipReviewCard(c tele.Context, userID int64, state *domain.StateData) error {
	state.ReviewPos++
	state.Revealed = false
	h.SetState(userID, state)

	if state.ReviewPos >= len(state.ReviewQueue) {
		return h.finishReview(c, userID)
	}
	return h.sendReviewCard(c, userID)
}

// handleShowAnswer reveals the definition of the current review word
func (h *Handler) handleShowAnswer(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateReviewing || state.ReviewPos >= len(state.ReviewQueue) {
		return c.Respond(&tele.CallbackResponse{Text: "No review in progress"})
	}

	entry, ok := h.vocabService.Entry(state.ReviewQueue[state.ReviewPos])
	if !ok {
		return h.skipReviewCard(c, userID, state)
	}

	word, err := h.catalogService.Word(entry.WordID)
	if err != nil || word == nil {
		return h.skipReviewCard(c, userID, state)
	}

	state.Revealed = true
	h.SetState(userID, state)

	text := fmt.Sprintf("📖 Review %d of %d\n\n%s (%s)\n\n%s\n\n💬 %s\n\nDid you remember it?",
		state.ReviewPos+1, len(state.ReviewQueue),
		word.Word, word.PartOfSpeech,
		word.Definition, word.Example,
	)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnReviewCorrect, btnReviewIncorrect),
		markup.Row(btnCancel),
	)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleReviewOutcome records the outcome for the revealed word and moves on
func (h *Handler) handleReviewOutcome(c tele.Context, isCorrect bool) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateReviewing || state.ReviewPos >= len(state.ReviewQueue) {
		return c.Respond(&tele.CallbackResponse{Text: "No review in progress"})
	}
	if !state.Revealed {
		return c.Respond(&tele.CallbackResponse{Text: "Reveal the answer first"})
	}

	entryID := state.ReviewQueue[state.ReviewPos]
	saved, err := h.vocabService.RecordReview(entryID, isCorrect)
	if err != nil {
		h.logger.Error("Failed to record review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("entry_id", entryID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to save the result, try again"})
	}

	state.Completed++
	if isCorrect {
		state.Correct++
	}
	state.ReviewPos++
	state.Revealed = false
	h.SetState(userID, state)

	h.logger.Info("Review recorded",
		zap.Int64("user_id", userID),
		zap.String("entry_id", entryID),
		zap.Bool("correct", isCorrect),
		zap.Int("mastery_level", saved.MasteryLevel),
	)

	if state.ReviewPos >= len(state.ReviewQueue) {
		return h.finishReview(c, userID)
	}
	return h.sendReviewCard(c, userID)
}

// finishReview shows the session summary and returns to the main menu
func (h *Handler) finishReview(c tele.Context, userID int64) error {
	state := h.GetState(userID)
	completed, correct := state.Completed, state.Correct

	h.ResetState(userID)

	text := fmt.Sprintf("🎉 Review finished!\n\nWords reviewed: %d\nRemembered: %d\n\n%s",
		completed, correct, mainMenuText)

	if c.Callback() != nil {
		if err := c.Edit(text, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(text, mainMenuMarkup())
}
