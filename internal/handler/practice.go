package handler

import (
	"context"
	"fmt"
	"time"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	practiceExerciseCount = 5
	tutorTimeout          = 60 * time.Second
)

// handlePractice asks for a practice topic
func (h *Handler) handlePractice(c tele.Context) error {
	userID := c.Sender().ID

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingTopic})

	text := "✏️ What would you like to practice?\n\nSend me a topic, for example: travel, job interviews, past tense."

	if err := c.Edit(text, cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, cancelMarkup())
	}
	return c.Respond()
}

// startPractice generates a lesson for the topic and shows the first exercise
func (h *Handler) startPractice(c tele.Context, topic string) error {
	userID := c.Sender().ID

	if err := c.Send(fmt.Sprintf("⏳ Preparing %d exercises about %q...", practiceExerciseCount, topic)); err != nil {
		h.logger.Warn("Failed to send progress message", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), tutorTimeout)
	defer cancel()

	exercises, err := h.tutor.GenerateExercises(ctx, domain.ExerciseRequest{
		Topic: topic,
		Level: h.practiceLevel(userID),
		Type:  domain.ExerciseMultipleChoice,
		Count: practiceExerciseCount,
	})
	if err != nil {
		h.logger.Error("Failed to generate exercises",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("topic", topic),
		)
		h.ResetState(userID)
		return c.Send(tutorErrorMessage(err), mainMenuMarkup())
	}

	if len(exercises) == 0 {
		h.ResetState(userID)
		return c.Send("The tutor came back empty-handed for that topic. Try a different one.", mainMenuMarkup())
	}

	h.SetState(userID, &domain.StateData{
		State:     domain.StateAnswering,
		Topic:     topic,
		Exercises: exercises,
	})

	h.logger.Info("Practice session started",
		zap.Int64("user_id", userID),
		zap.String("topic", topic),
		zap.Int("exercises", len(exercises)),
	)

	return h.sendExerciseCard(c, userID)
}

// practiceLevel derives a proficiency level from the user's mastery profile
func (h *Handler) practiceLevel(userID int64) domain.Level {
	stats := h.vocabService.Stats(userID)

	switch {
	case stats.Total == 0:
		return domain.LevelBeginner
	case stats.Mastered*2 >= stats.Total:
		return domain.LevelAdvanced
	case stats.New*2 >= stats.Total:
		return domain.LevelBeginner
	default:
		return domain.LevelIntermediate
	}
}

// sendExerciseCard shows the current exercise with its options as buttons
func (h *Handler) sendExerciseCard(c tele.Context, userID int64) error {
	state := h.GetState(userID)
	if state.State != domain.StateAnswering || state.ExercisePos >= len(state.Exercises) {
		return h.handleStart(c)
	}

	exercise := state.Exercises[state.ExercisePos]

	text := fmt.Sprintf("✏️ Exercise %d of %d\n\n%s",
		state.ExercisePos+1, len(state.Exercises), exercise.Question)

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i, option := range exercise.Options {
		rows = append(rows, markup.Row(
			markup.Data(option, fmt.Sprintf("opt_%d", i)),
		))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

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

// handleOptionAnswer checks the chosen option and shows the tutor's
// explanation
func (h *Handler) handleOptionAnswer(c tele.Context, optionIndex int) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateAnswering || state.ExercisePos >= len(state.Exercises) {
		return c.Respond(&tele.CallbackResponse{Text: "No practice in progress"})
	}

	exercise := state.Exercises[state.ExercisePos]
	if optionIndex < 0 || optionIndex >= len(exercise.Options) {
		return c.Respond(&tele.CallbackResponse{Text: "That option is gone, pick another"})
	}
	answer := exercise.Options[optionIndex]

	ctx, cancel := context.WithTimeout(context.Background(), tutorTimeout)
	defer cancel()

	explanation, err := h.tutor.ExplainAnswer(ctx, domain.ExplainRequest{
		Question:      exercise.Question,
		UserAnswer:    answer,
		CorrectAnswer: exercise.CorrectAnswer,
		ExerciseType:  exercise.Type,
		Level:         exercise.Level,
		Options:       exercise.Options,
	})
	if err != nil {
		h.logger.Error("Failed to explain answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to check the answer, try again"})
	}

	state.Completed++
	if explanation.IsCorrect {
		state.Correct++
	}
	state.ExercisePos++
	h.SetState(userID, state)

	verdict := "❌ Not quite."
	if explanation.IsCorrect {
		verdict = "✅ Correct!"
	}

	text := fmt.Sprintf("%s\n\n%s", verdict, explanation.Explanation)
	for _, tip := range explanation.Tips {
		text += "\n• " + tip
	}

	markup := &tele.ReplyMarkup{}
	if state.ExercisePos >= len(state.Exercises) {
		markup.Inline(markup.Row(markup.Data("🏁 Finish lesson", "finish_lesson")))
	} else {
		markup.Inline(
			markup.Row(markup.Data("➡️ Next exercise", "next_exercise")),
			markup.Row(btnCancel),
		)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleNextExercise advances the practice session
func (h *Handler) handleNextExercise(c tele.Context) error {
	return h.sendExerciseCard(c, c.Sender().ID)
}

// handleFinishLesson asks the tutor for feedback on the finished session
func (h *Handler) handleFinishLesson(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateAnswering {
		return c.Respond(&tele.CallbackResponse{Text: "No practice in progress"})
	}

	score := 0.0
	if state.Completed > 0 {
		score = float64(state.Correct) * 100 / float64(state.Completed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), tutorTimeout)
	defer cancel()

	feedback, err := h.tutor.GenerateFeedback(ctx, domain.FeedbackRequest{
		LessonTopic: state.Topic,
		Progress: domain.LessonProgress{
			CompletedExercises: state.Completed,
			TotalExercises:     len(state.Exercises),
			AverageScore:       score,
		},
		UserLevel: h.practiceLevel(userID),
	})

	h.ResetState(userID)

	if err != nil {
		h.logger.Error("Failed to generate feedback",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		text := fmt.Sprintf("🏁 Lesson finished!\n\nCorrect answers: %d of %d\n\n%s",
			state.Correct, state.Completed, mainMenuText)
		return c.Send(text, mainMenuMarkup())
	}

	text := fmt.Sprintf("🏁 Lesson finished!\n\n%s\n\n%s\n\nNext steps:",
		feedback.MotivationalMessage, feedback.SpecificFeedback)
	for _, step := range feedback.NextSteps {
		text += "\n• " + step
	}
	text += "\n\nTopics to try next:"
	for _, topic := range feedback.RecommendedTopics {
		text += "\n• " + topic
	}

	if err := c.Edit(text, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, mainMenuMarkup())
	}
	return c.Respond()
}

// tutorErrorMessage maps a tutor failure to a user-facing message
func tutorErrorMessage(err error) string {
	switch domain.ClassOf(err) {
	case domain.ClassQuotaExceeded:
		return "The AI tutor is overloaded right now. Please try again in a few minutes."
	case domain.ClassServiceMisconfigured:
		return "The AI tutor is not available on this bot. Reviews and browsing still work."
	default:
		return "The AI tutor did not answer. Please try again."
	}
}
