package handler

import (
	"sync"
	"time"

	"lexibot/internal/ai"
	"lexibot/internal/domain"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	vocabService   *service.VocabularyService
	catalogService *service.CatalogService
	tutor          *ai.Tutor
	logger         *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	vocabService *service.VocabularyService,
	catalogService *service.CatalogService,
	tutor *ai.Tutor,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		vocabService:   vocabService,
		catalogService: catalogService,
		tutor:          tutor,
		logger:         logger,
		states:         make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers. The auth middleware guards
// every entry point except plain text, which carries the password flow.
func (h *Handler) RegisterHandlers(auth tele.MiddlewareFunc) {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnReview, h.handleReview, auth)
	h.bot.Handle(&btnPractice, h.handlePractice, auth)
	h.bot.Handle(&btnBrowse, h.handleBrowse, auth)
	h.bot.Handle(&btnStats, h.handleStats, auth)
	h.bot.Handle(&btnFavorites, h.handleFavorites, auth)
	h.bot.Handle(&btnShowAnswer, h.handleShowAnswer, auth)
	h.bot.Handle(&btnReviewCorrect, func(c tele.Context) error { return h.handleReviewOutcome(c, true) }, auth)
	h.bot.Handle(&btnReviewIncorrect, func(c tele.Context) error { return h.handleReviewOutcome(c, false) }, auth)
	h.bot.Handle(&btnCancel, h.handleCancel, auth)
	h.bot.Handle(&btnMainMenu, h.handleStart, auth)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	state.UpdatedAt = time.Now()

	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// SweepStaleStates drops states idle for longer than maxAge, so abandoned
// review and practice sessions do not accumulate. Returns the number of
// states dropped.
func (h *Handler) SweepStaleStates(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	dropped := 0
	for userID, state := range h.states {
		if state.UpdatedAt.Before(cutoff) {
			delete(h.states, userID)
			dropped++
		}
	}
	return dropped
}

// Inline keyboard buttons
var (
	btnReview = tele.Btn{
		Unique: "review",
		Text:   "📖 Review due words",
	}
	btnPractice = tele.Btn{
		Unique: "practice",
		Text:   "✏️ Practice with AI",
	}
	btnBrowse = tele.Btn{
		Unique: "browse",
		Text:   "📚 Browse words",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 My stats",
	}
	btnFavorites = tele.Btn{
		Unique: "favorites",
		Text:   "⭐ Favorites",
	}
	btnShowAnswer = tele.Btn{
		Unique: "show_answer",
		Text:   "💡 Show answer",
	}
	btnReviewCorrect = tele.Btn{
		Unique: "review_correct",
		Text:   "✅ I knew it",
	}
	btnReviewIncorrect = tele.Btn{
		Unique: "review_incorrect",
		Text:   "❌ I forgot",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

const mainMenuText = "🏠 Main menu\n\nWhat would you like to do?"

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnReview),
		menu.Row(btnPractice),
		menu.Row(btnBrowse),
		menu.Row(btnStats, btnFavorites),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
