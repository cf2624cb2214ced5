package ai

import (
	"context"

	"lexibot/internal/domain"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Per-operation sampling knobs. Explanation judges correctness, so it runs
// colder than the two generative operations.
const (
	exerciseTemperature = 0.7
	exerciseMaxTokens   = 1000

	explainTemperature = 0.3
	explainMaxTokens   = 800

	feedbackTemperature = 0.7
	feedbackMaxTokens   = 1000
)

// Tutor runs the AI generation pipelines: exercise generation, answer
// explanation and progress feedback. Each operation validates its inputs,
// builds a prompt, calls the completion service and validates the structured
// response. Explanation and feedback degrade to local fallbacks when the
// service fails or answers garbage; exercise generation has no safe
// synthetic answer and surfaces the failure instead.
type Tutor struct {
	completer Completer
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewTutor creates a new tutor
func NewTutor(completer Completer, logger *zap.Logger) *Tutor {
	return &Tutor{
		completer: completer,
		validate:  validator.New(),
		logger:    logger,
	}
}

// pipeline describes one generation operation end to end. fallback is nil
// when no safe local answer exists.
type pipeline[T any] struct {
	name        string
	system      string
	prompt      string
	maxTokens   int64
	temperature float64
	parse       func(raw string) (T, error)
	fallback    func(raw string) T
}

// run executes the completion and validation stages of a pipeline. Input
// validation happens in the operation methods, before any prompt is built.
func run[T any](ctx context.Context, t *Tutor, p pipeline[T]) (T, error) {
	var zero T

	raw, err := t.completer.Complete(ctx, CompletionRequest{
		System:      p.system,
		Prompt:      p.prompt,
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		if p.fallback != nil {
			t.logger.Warn("Completion failed, using local fallback",
				zap.String("operation", p.name),
				zap.Error(err),
			)
			return p.fallback(""), nil
		}
		return zero, err
	}

	result, err := p.parse(raw)
	if err != nil {
		if p.fallback != nil {
			t.logger.Warn("Malformed completion, using local fallback",
				zap.String("operation", p.name),
				zap.Error(err),
			)
			return p.fallback(raw), nil
		}
		return zero, domain.NewError(domain.ClassServiceUnavailable, "malformed completion response", err)
	}

	return result, nil
}

// GenerateExercises produces req.Count exercises about req.Topic. The
// response may contain fewer exercises than requested; a response with any
// malformed exercise fails the whole call.
func (t *Tutor) GenerateExercises(ctx context.Context, req domain.ExerciseRequest) ([]domain.GeneratedExercise, error) {
	if err := t.validate.Struct(req); err != nil {
		return nil, domain.BadRequest("invalid exercise request: %v", err)
	}

	return run(ctx, t, pipeline[[]domain.GeneratedExercise]{
		name:        "generate_exercises",
		system:      exerciseSystemPrompt,
		prompt:      buildExercisePrompt(req),
		maxTokens:   exerciseMaxTokens,
		temperature: exerciseTemperature,
		parse: func(raw string) ([]domain.GeneratedExercise, error) {
			return parseExercises(raw, req)
		},
	})
}

// ExplainAnswer analyzes the user's answer to one exercise
func (t *Tutor) ExplainAnswer(ctx context.Context, req domain.ExplainRequest) (domain.Explanation, error) {
	if err := t.validate.Struct(req); err != nil {
		return domain.Explanation{}, domain.BadRequest("invalid explain request: %v", err)
	}

	return run(ctx, t, pipeline[domain.Explanation]{
		name:        "explain_answer",
		system:      explainSystemPrompt,
		prompt:      buildExplainPrompt(req),
		maxTokens:   explainMaxTokens,
		temperature: explainTemperature,
		parse:       parseExplanation,
		fallback: func(raw string) domain.Explanation {
			return fallbackExplanation(raw, req.UserAnswer, req.CorrectAnswer)
		},
	})
}

// GenerateFeedback produces personalized feedback for a finished practice
// round
func (t *Tutor) GenerateFeedback(ctx context.Context, req domain.FeedbackRequest) (domain.Feedback, error) {
	if err := t.validate.Struct(req); err != nil {
		return domain.Feedback{}, domain.BadRequest("invalid feedback request: %v", err)
	}

	return run(ctx, t, pipeline[domain.Feedback]{
		name:        "generate_feedback",
		system:      feedbackSystemPrompt,
		prompt:      buildFeedbackPrompt(req),
		maxTokens:   feedbackMaxTokens,
		temperature: feedbackTemperature,
		parse:       parseFeedback,
		fallback: func(raw string) domain.Feedback {
			return fallbackFeedback(raw, req.Progress)
		},
	})
}
