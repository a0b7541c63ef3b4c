package quizgen

import (
	"fmt"
	"strings"

	"github.com/arjun/quizgen/internal/quiz"
)

const systemPrompt = `You are a quiz author. You generate multiple-choice quiz questions from a topic and optional source content.

Rules:
- Respond with STRICTLY a JSON array and nothing else. No prose, no markdown fences.
- Each element is an object with fields "question", "options" (array of strings), "answer", and "explanation".
- "answer" must exactly match one entry in "options".
- Questions must be answerable from the given topic/content alone.
- For "True/False" question type, options are exactly ["True", "False"].
- For "Mixed", alternate between multiple-choice (4 options) and true/false questions.
- Calibrate to the requested difficulty. "PhD" means expert-level depth.
- Keep explanations to one or two sentences.`

// buildUserMessage constructs the user message from the session
// configuration, truncating the content blob to the configured limit.
func buildUserMessage(cfg quiz.Config, gen Config) string {
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	if gen.MaxQuestions > 0 && count > gen.MaxQuestions {
		count = gen.MaxQuestions
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", cfg.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", cfg.Difficulty)
	fmt.Fprintf(&b, "Question type: %s\n", cfg.QuestionType)
	fmt.Fprintf(&b, "Number of questions: %d\n", count)

	if content := strings.TrimSpace(cfg.Content); content != "" {
		fmt.Fprintf(&b, "\nSource content:\n%s\n", truncate(content, gen.MaxContentChars))
	}

	return b.String()
}

// truncate cuts s to at most max characters, marking the cut.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n[content truncated]"
}
