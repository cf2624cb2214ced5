package ai

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"
)

const (
	exerciseSystemPrompt = "You are an expert English language teacher. Generate high-quality, educational exercises that are appropriate for the specified level. Always respond with valid JSON format."

	explainSystemPrompt = "You are a patient and encouraging English teacher. Provide clear, helpful explanations that help students understand their mistakes and learn from them. Always be positive and constructive."

	feedbackSystemPrompt = "You are an encouraging and insightful English language teacher. Provide personalized, constructive feedback that motivates students and gives them clear direction for improvement. Always be positive while being honest about areas for growth."
)

var levelDescriptions = map[domain.Level]string{
	domain.LevelBeginner:     "simple vocabulary, basic grammar, common everyday situations",
	domain.LevelIntermediate: "moderate vocabulary, intermediate grammar structures, workplace and social situations",
	domain.LevelAdvanced:     "complex vocabulary, advanced grammar, academic and professional contexts",
}

var typeInstructions = map[domain.ExerciseType]string{
	domain.ExerciseMultipleChoice: `Generate multiple choice questions with 4 options each. Include the "options" field as an array of 4 strings.`,
	domain.ExerciseFillBlank:      `Generate fill-in-the-blank exercises with a single word or short phrase missing. The question should contain "___" where the answer goes.`,
	domain.ExerciseTranslation:    `Generate translation exercises from simple English to more complex English or vice versa, appropriate for the level.`,
	domain.ExerciseListening:      `Generate listening comprehension questions (note: actual audio not provided, but create questions as if audio exists).`,
}

// buildExercisePrompt constructs the exercise generation prompt. The prompt
// pins the exact JSON shape the parser expects.
func buildExercisePrompt(req domain.ExerciseRequest) string {
	kind := strings.ReplaceAll(string(req.Type), "_", " ")

	optionsLine := ""
	if req.Type == domain.ExerciseMultipleChoice {
		optionsLine = `"options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    `
	}

	return fmt.Sprintf(`Create %d high-quality English %s exercise(s) about "%s" for %s level students.

Level requirements: %s
Exercise type: %s

Requirements:
- Questions should be clear and unambiguous
- Appropriate difficulty for %s level
- Include detailed explanations that help students learn
- Focus on practical, useful English skills
- Avoid cultural references that might be confusing

Return ONLY a valid JSON array with this exact structure:
[
  {
    "question": "The exercise question text",
    "type": "%s",
    %s"correct_answer": "The correct answer",
    "explanation": "Clear explanation of why this is correct and what concept it teaches",
    "difficulty_level": "%s"
  }
]

Make sure the JSON is valid and properly formatted.`,
		req.Count, kind, req.Topic, req.Level,
		levelDescriptions[req.Level],
		typeInstructions[req.Type],
		req.Level,
		req.Type,
		optionsLine,
		req.Level,
	)
}

// buildExplainPrompt constructs the answer-analysis prompt
func buildExplainPrompt(req domain.ExplainRequest) string {
	isCorrect := answersMatch(req.UserAnswer, req.CorrectAnswer)

	optionsText := ""
	if len(req.Options) > 0 && req.ExerciseType == domain.ExerciseMultipleChoice {
		optionsText = fmt.Sprintf("\nAvailable options were: %s", strings.Join(req.Options, ", "))
	}

	translationNote := ""
	if req.ExerciseType == domain.ExerciseTranslation {
		translationNote = "For translation exercises, be flexible with variations that convey the same meaning."
	}

	return fmt.Sprintf(`Analyze this English exercise answer and provide a helpful explanation:

Exercise Type: %s
Student Level: %s
Question: "%s"%s
Student's Answer: "%s"
Correct Answer: "%s"
Is Correct: %t

Please provide a detailed explanation that:
1. Explains why the answer is correct or incorrect
2. Teaches the underlying grammar/vocabulary concept
3. Gives practical tips for similar questions
4. Is encouraging and constructive
5. Is appropriate for a %s level student

%s

Return your response as a JSON object with this structure:
{
  "explanation": "Main explanation of the answer (2-3 sentences)",
  "isCorrect": %t,
  "tips": ["Tip 1 for similar questions", "Tip 2 for improvement"],
  "relatedConcepts": ["Grammar concept 1", "Grammar concept 2"]
}

Keep the explanation clear, encouraging, and educational. Focus on helping the student learn and improve.`,
		strings.ReplaceAll(string(req.ExerciseType), "_", " "),
		req.Level,
		req.Question, optionsText,
		req.UserAnswer,
		req.CorrectAnswer,
		isCorrect,
		req.Level,
		translationNote,
		isCorrect,
	)
}

// buildFeedbackPrompt constructs the progress-feedback prompt
func buildFeedbackPrompt(req domain.FeedbackRequest) string {
	p := req.Progress

	areas := func(list []string) string {
		if len(list) == 0 {
			return "None identified yet"
		}
		return strings.Join(list, ", ")
	}

	return fmt.Sprintf(`Generate personalized feedback for an English language student:

Student Level: %s
Lesson Topic: "%s"
Progress Statistics:
- Completed: %d/%d exercises (%d%%)
- Average Score: %.0f%%
- Strong Areas: %s
- Weak Areas: %s

Please provide personalized feedback that:
1. Acknowledges their progress and effort
2. Highlights their strengths
3. Addresses areas for improvement constructively
4. Provides specific next steps
5. Recommends related topics to study
6. Gives practical study tips

Return your response as a JSON object with this structure:
{
  "motivationalMessage": "Encouraging message about their progress (1-2 sentences)",
  "specificFeedback": "Detailed feedback about their performance on this lesson (2-3 sentences)",
  "nextSteps": ["Specific action 1", "Specific action 2", "Specific action 3"],
  "recommendedTopics": ["Related topic 1", "Related topic 2", "Related topic 3"],
  "studyTips": ["Study tip 1", "Study tip 2", "Study tip 3"]
}

Keep the tone encouraging and constructive. Focus on growth and improvement rather than just pointing out mistakes.`,
		req.UserLevel,
		req.LessonTopic,
		p.CompletedExercises, p.TotalExercises, completionPercent(p.CompletedExercises, p.TotalExercises),
		p.AverageScore,
		areas(p.StrongAreas),
		areas(p.WeakAreas),
	)
}
