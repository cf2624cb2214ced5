package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateReviewing       UserState = "reviewing"
	StateWaitingTopic    UserState = "waiting_topic"
	StateAnswering       UserState = "answering"
	StateWaitingPassword UserState = "waiting_password"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState

	// Review session: entry IDs still to review, current position
	ReviewQueue []string
	ReviewPos   int
	Revealed    bool

	// Practice session
	Topic       string
	Exercises   []GeneratedExercise
	ExercisePos int
	Completed   int
	Correct     int

	MessageID int // For editing messages
	UpdatedAt time.Time
}
