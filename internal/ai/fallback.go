package ai

import (
	"fmt"
	"math"
	"strings"

	"lexibot/internal/domain"
)

// answersMatch compares answers ignoring case and surrounding whitespace
func answersMatch(userAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
}

// fallbackExplanation builds an explanation without the remote service. When
// the service answered but the response did not parse, raw carries that text
// and becomes the explanation; otherwise a canned explanation is used.
// Correctness is judged by case-insensitive, whitespace-trimmed equality.
func fallbackExplanation(raw, userAnswer, correctAnswer string) domain.Explanation {
	isCorrect := answersMatch(userAnswer, correctAnswer)

	explanation := strings.TrimSpace(raw)
	if explanation == "" {
		if isCorrect {
			explanation = fmt.Sprintf("Correct! %q is the right answer. Well done.", strings.TrimSpace(correctAnswer))
		} else {
			explanation = fmt.Sprintf("Not quite. The correct answer is %q. Compare it with your answer and try a similar exercise.", strings.TrimSpace(correctAnswer))
		}
	}

	return domain.Explanation{
		Explanation:     explanation,
		IsCorrect:       isCorrect,
		Tips:            []string{},
		RelatedConcepts: []string{},
	}
}

// completionPercent returns the whole-number completion percentage
func completionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// fallbackFeedback builds feedback without the remote service. When the
// service answered but the response did not parse, raw carries that text and
// becomes the specific feedback.
func fallbackFeedback(raw string, progress domain.LessonProgress) domain.Feedback {
	percent := completionPercent(progress.CompletedExercises, progress.TotalExercises)

	specific := strings.TrimSpace(raw)
	if specific == "" {
		specific = fmt.Sprintf(
			"You completed %d of %d exercises (%d%%). Regular practice is the fastest way to make new skills stick.",
			progress.CompletedExercises, progress.TotalExercises, percent,
		)
	}

	return domain.Feedback{
		MotivationalMessage: fmt.Sprintf("Great work on completing %d%% of this lesson! Keep practicing to improve your English skills.", percent),
		SpecificFeedback:    specific,
		NextSteps: []string{
			"Continue practicing with similar exercises",
			"Review any challenging concepts",
		},
		RecommendedTopics: []string{
			"Grammar fundamentals",
			"Vocabulary building",
		},
		StudyTips: []string{
			"Practice a little every day",
			"Review mistakes to learn from them",
		},
	}
}
