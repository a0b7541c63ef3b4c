package history

import (
	"strconv"
	"time"

	"github.com/arjun/quizgen/internal/quiz"
)

// SavedQuiz is one completed session as persisted in the history collection.
// It embeds the full question and answer lists so a past quiz can be
// reviewed without recomputation. Never mutated after creation.
type SavedQuiz struct {
	ID             string          `json:"id"`
	Topic          string          `json:"topic"`
	CreatedAt      time.Time       `json:"date"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	Questions      []quiz.Question `json:"questions"`
	Answers        []quiz.Answer   `json:"answers"`
}

// NewRecord builds a SavedQuiz from a completed session's questions and
// answers. The ID is derived from the creation timestamp.
func NewRecord(topic string, questions []quiz.Question, answers []quiz.Answer, now time.Time) SavedQuiz {
	return SavedQuiz{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Topic:          topic,
		CreatedAt:      now,
		Score:          Score(answers, len(questions)),
		TotalQuestions: len(questions),
		Questions:      questions,
		Answers:        answers,
	}
}
