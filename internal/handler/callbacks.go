package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it means it was already edited by another callback
	// Just acknowledge and return nil - don't send new message
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	// Log the error to understand why Edit failed
	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Handle specific button callbacks by Unique first
	if handled, err := h.dispatchNamed(c, callback.Unique); handled {
		return err
	}

	// If Unique is empty, try to handle by Data (for buttons with Unique that didn't come through)
	if callback.Unique == "" {
		if handled, err := h.dispatchNamed(c, data); handled {
			return err
		}
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, "add_"):
		return h.handleAddWord(c, strings.TrimPrefix(data, "add_"))
	case strings.HasPrefix(data, "fav_"):
		return h.handleToggleFavorite(c, strings.TrimPrefix(data, "fav_"))
	case strings.HasPrefix(data, "cat_"):
		return h.handleBrowseCategory(c, strings.TrimPrefix(data, "cat_"))
	case strings.HasPrefix(data, "opt_"):
		index, err := strconv.Atoi(strings.TrimPrefix(data, "opt_"))
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Unknown option"})
		}
		return h.handleOptionAnswer(c, index)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// dispatchNamed routes callbacks carrying a fixed button name
func (h *Handler) dispatchNamed(c tele.Context, name string) (bool, error) {
	switch name {
	case "review":
		return true, h.handleReview(c)
	case "practice":
		return true, h.handlePractice(c)
	case "browse":
		return true, h.handleBrowse(c)
	case "stats":
		return true, h.handleStats(c)
	case "favorites":
		return true, h.handleFavorites(c)
	case "show_answer":
		return true, h.handleShowAnswer(c)
	case "review_correct":
		return true, h.handleReviewOutcome(c, true)
	case "review_incorrect":
		return true, h.handleReviewOutcome(c, false)
	case "next_exercise":
		return true, h.handleNextExercise(c)
	case "finish_lesson":
		return true, h.handleFinishLesson(c)
	case "cancel":
		return true, h.handleCancel(c)
	case "main_menu":
		return true, h.handleStart(c)
	}
	return false, nil
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	if err := c.Edit(mainMenuText, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(mainMenuText, mainMenuMarkup())
	}
	return c.Respond()
}
