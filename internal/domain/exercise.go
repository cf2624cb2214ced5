package domain

// ExerciseType identifies the kind of generated exercise
type ExerciseType string

const (
	ExerciseMultipleChoice ExerciseType = "multiple_choice"
	ExerciseFillBlank      ExerciseType = "fill_blank"
	ExerciseTranslation    ExerciseType = "translation"
	ExerciseListening      ExerciseType = "listening"
)

// GeneratedExercise is one AI-produced exercise. It is ephemeral: shown to
// the user and discarded, never persisted.
type GeneratedExercise struct {
	Question      string
	Type          ExerciseType
	Options       []string
	CorrectAnswer string
	Explanation   string
	Level         Level
}

// ExerciseRequest asks for Count exercises about Topic
type ExerciseRequest struct {
	Topic string       `validate:"required"`
	Level Level        `validate:"required,oneof=beginner intermediate advanced"`
	Type  ExerciseType `validate:"required,oneof=multiple_choice fill_blank translation listening"`
	Count int          `validate:"min=0,max=10"`
}

// ExplainRequest asks for an explanation of a user's answer
type ExplainRequest struct {
	Question      string       `validate:"required"`
	UserAnswer    string       `validate:"required"`
	CorrectAnswer string       `validate:"required"`
	ExerciseType  ExerciseType `validate:"required,oneof=multiple_choice fill_blank translation listening"`
	Level         Level        `validate:"required,oneof=beginner intermediate advanced"`
	Options       []string
}

// Explanation is the answer analysis returned to the user. Every field is
// populated even when the remote service fails.
type Explanation struct {
	Explanation     string
	IsCorrect       bool
	Tips            []string
	RelatedConcepts []string
}

// LessonProgress summarizes a finished practice round
type LessonProgress struct {
	CompletedExercises int `validate:"min=0"`
	TotalExercises     int `validate:"required,min=1"`
	AverageScore       float64
	WeakAreas          []string
	StrongAreas        []string
}

// FeedbackRequest asks for personalized feedback on a practice round
type FeedbackRequest struct {
	LessonTopic string `validate:"required"`
	Progress    LessonProgress
	UserLevel   Level `validate:"required,oneof=beginner intermediate advanced"`
}

// Feedback is the motivational summary returned to the user. Like
// Explanation, fallback construction guarantees every field is populated.
type Feedback struct {
	MotivationalMessage string
	SpecificFeedback    string
	NextSteps           []string
	RecommendedTopics   []string
	StudyTips           []string
}
