package history

import (
	"math"

	"github.com/arjun/quizgen/internal/quiz"
)

// Score computes the percentage score for a completed answer list:
// round(100 * correct / total), half away from zero. Returns 0 when total
// is zero.
func Score(answers []quiz.Answer, total int) int {
	if total <= 0 {
		return 0
	}
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
