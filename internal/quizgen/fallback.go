package quizgen

import "github.com/arjun/quizgen/internal/quiz"

// fallbackQuestions returns the single placeholder question served when
// generation fails for any reason. The session state machine requires a
// non-empty question list, so this is the floor of the degradation path.
func fallbackQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:   1,
			Text: "Question generation failed. Would you like to try again with shorter content?",
			Options: []string{
				"Yes, retry with shorter content",
				"No, keep the current content",
			},
			Answer:      "Yes, retry with shorter content",
			Explanation: "The AI response could not be parsed. Shorter content usually produces a cleaner response.",
		},
	}
}
