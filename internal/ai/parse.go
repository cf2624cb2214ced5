package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"lexibot/internal/domain"
)

// stripCodeFence removes a markdown code block wrapper, which models add
// around JSON despite instructions not to
func stripCodeFence(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

type exercisePayload struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Level         string   `json:"difficulty_level"`
}

// parseExercises validates the exercise-generation response. Fewer exercises
// than requested is acceptable; an empty array is acceptable only when zero
// were requested; one malformed exercise fails the whole response. Type and
// difficulty metadata the model merely misspells fall back to the requested
// values, so the exercises stay usable in follow-up requests.
func parseExercises(raw string, req domain.ExerciseRequest) ([]domain.GeneratedExercise, error) {
	var payload []exercisePayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}

	if len(payload) == 0 && req.Count > 0 {
		return nil, fmt.Errorf("response contains no exercises, %d requested", req.Count)
	}

	exercises := make([]domain.GeneratedExercise, 0, len(payload))
	for i, p := range payload {
		if p.Question == "" || p.CorrectAnswer == "" || p.Explanation == "" {
			return nil, fmt.Errorf("exercise %d is missing required fields", i)
		}
		exercises = append(exercises, domain.GeneratedExercise{
			Question:      p.Question,
			Type:          normalizeExerciseType(p.Type, req.Type),
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
			Explanation:   p.Explanation,
			Level:         normalizeLevel(p.Level, req.Level),
		})
	}

	return exercises, nil
}

// normalizeExerciseType canonicalizes the model's type label, falling back to
// the requested type when the label is unrecognizable
func normalizeExerciseType(raw string, fallback domain.ExerciseType) domain.ExerciseType {
	canonical := strings.NewReplacer("-", "_", " ", "_").
		Replace(strings.ToLower(strings.TrimSpace(raw)))

	switch t := domain.ExerciseType(canonical); t {
	case domain.ExerciseMultipleChoice, domain.ExerciseFillBlank,
		domain.ExerciseTranslation, domain.ExerciseListening:
		return t
	}
	return fallback
}

// normalizeLevel canonicalizes the model's difficulty label, falling back to
// the requested level when the label is unrecognizable
func normalizeLevel(raw string, fallback domain.Level) domain.Level {
	switch l := domain.Level(strings.ToLower(strings.TrimSpace(raw))); l {
	case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
		return l
	}
	return fallback
}

type explanationPayload struct {
	Explanation     string   `json:"explanation"`
	IsCorrect       *bool    `json:"isCorrect"`
	Tips            []string `json:"tips"`
	RelatedConcepts []string `json:"relatedConcepts"`
}

// parseExplanation validates the answer-explanation response. The
// correctness flag must be present, not merely default to false.
func parseExplanation(raw string) (domain.Explanation, error) {
	var payload explanationPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return domain.Explanation{}, fmt.Errorf("invalid JSON response: %w", err)
	}

	if payload.Explanation == "" || payload.IsCorrect == nil {
		return domain.Explanation{}, fmt.Errorf("explanation response is missing required fields")
	}

	explanation := domain.Explanation{
		Explanation:     payload.Explanation,
		IsCorrect:       *payload.IsCorrect,
		Tips:            payload.Tips,
		RelatedConcepts: payload.RelatedConcepts,
	}
	if explanation.Tips == nil {
		explanation.Tips = []string{}
	}
	if explanation.RelatedConcepts == nil {
		explanation.RelatedConcepts = []string{}
	}

	return explanation, nil
}

type feedbackPayload struct {
	MotivationalMessage string   `json:"motivationalMessage"`
	SpecificFeedback    string   `json:"specificFeedback"`
	NextSteps           []string `json:"nextSteps"`
	RecommendedTopics   []string `json:"recommendedTopics"`
	StudyTips           []string `json:"studyTips"`
}

// parseFeedback validates the progress-feedback response
func parseFeedback(raw string) (domain.Feedback, error) {
	var payload feedbackPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return domain.Feedback{}, fmt.Errorf("invalid JSON response: %w", err)
	}

	if payload.MotivationalMessage == "" || payload.SpecificFeedback == "" {
		return domain.Feedback{}, fmt.Errorf("feedback response is missing required fields")
	}

	feedback := domain.Feedback{
		MotivationalMessage: payload.MotivationalMessage,
		SpecificFeedback:    payload.SpecificFeedback,
		NextSteps:           payload.NextSteps,
		RecommendedTopics:   payload.RecommendedTopics,
		StudyTips:           payload.StudyTips,
	}
	if feedback.NextSteps == nil {
		feedback.NextSteps = []string{}
	}
	if feedback.RecommendedTopics == nil {
		feedback.RecommendedTopics = []string{}
	}
	if feedback.StudyTips == nil {
		feedback.StudyTips = []string{}
	}

	return feedback, nil
}
