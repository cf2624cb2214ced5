package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReviewDate_DateString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			date:     time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "20241212",
		},
		{
			name:     "date 2024-01-01",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "20240101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ReviewDate{Date: tt.date}
			assert.Equal(t, tt.expected, d.DateString())
		})
	}
}

func TestReviewDate_DisplayString(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "same day",
			date:     time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC),
			expected: "today",
		},
		{
			name:     "next day",
			date:     time.Date(2024, 6, 16, 1, 0, 0, 0, time.UTC),
			expected: "tomorrow",
		},
		{
			name:     "in the past",
			date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			expected: "overdue",
		},
		{
			name:     "three days ahead",
			date:     now.AddDate(0, 0, 3),
			expected: "in 3 days",
		},
		{
			name:     "ninety days ahead",
			date:     now.AddDate(0, 0, 90),
			expected: "in 90 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ReviewDate{Date: tt.date}
			assert.Equal(t, tt.expected, d.DisplayString(now))
		})
	}
}

func TestUserVocabularyEntry_IsDue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		nextReview time.Time
		expected   bool
	}{
		{
			name:       "past review date is due",
			nextReview: now.AddDate(0, 0, -1),
			expected:   true,
		},
		{
			name:       "exact review time is due",
			nextReview: now,
			expected:   true,
		},
		{
			name:       "future review date is not due",
			nextReview: now.Add(time.Minute),
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := UserVocabularyEntry{NextReview: tt.nextReview}
			assert.Equal(t, tt.expected, entry.IsDue(now))
		})
	}
}
