package ai

import (
	"testing"

	"lexibot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare JSON",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "plain fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripCodeFence(tt.input))
		})
	}
}

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		name          string
		userAnswer    string
		correctAnswer string
		expected      bool
	}{
		{"exact", "Paris", "Paris", true},
		{"case differs", "paris", "Paris", true},
		{"surrounding whitespace", "  Paris ", "Paris", true},
		{"different answer", "London", "Paris", false},
		{"inner whitespace differs", "Par is", "Paris", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, answersMatch(tt.userAnswer, tt.correctAnswer))
		})
	}
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{"seven of ten", 7, 10, 70},
		{"all done", 10, 10, 100},
		{"none done", 0, 10, 0},
		{"rounds up", 2, 3, 67},
		{"rounds half away from zero", 1, 8, 13},
		{"zero total", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, completionPercent(tt.completed, tt.total))
		})
	}
}

func TestNormalizeExerciseType(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.ExerciseType
	}{
		{"canonical", "multiple_choice", domain.ExerciseMultipleChoice},
		{"mixed case", "Multiple_Choice", domain.ExerciseMultipleChoice},
		{"hyphenated", "multiple-choice", domain.ExerciseMultipleChoice},
		{"spaced", "fill blank", domain.ExerciseFillBlank},
		{"unrecognizable falls back", "quiz", domain.ExerciseTranslation},
		{"empty falls back", "", domain.ExerciseTranslation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeExerciseType(tt.raw, domain.ExerciseTranslation))
		})
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.Level
	}{
		{"canonical", "advanced", domain.LevelAdvanced},
		{"mixed case", "Intermediate", domain.LevelIntermediate},
		{"padded", " beginner ", domain.LevelBeginner},
		{"unrecognizable falls back", "expert", domain.LevelBeginner},
		{"empty falls back", "", domain.LevelBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeLevel(tt.raw, domain.LevelBeginner))
		})
	}
}

func TestParseExplanation_MissingCorrectnessFlag(t *testing.T) {
	_, err := parseExplanation(`{"explanation": "Looks right."}`)
	assert.Error(t, err)
}
