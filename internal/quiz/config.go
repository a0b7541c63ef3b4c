package quiz

// Difficulty controls how hard the generated questions should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyPhD    Difficulty = "PhD"
)

// Difficulties lists all difficulty levels in display order.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyPhD,
}

// QuestionType controls the shape of the generated questions.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "Multiple Choice"
	TypeTrueFalse      QuestionType = "True/False"
	TypeMixed          QuestionType = "Mixed"
)

// QuestionTypes lists all question types in display order.
var QuestionTypes = []QuestionType{
	TypeMultipleChoice,
	TypeTrueFalse,
	TypeMixed,
}

// Config is the session configuration supplied once at setup and immutable
// for the session's lifetime.
type Config struct {
	// Topic is the subject of the quiz.
	Topic string

	// Content is an optional raw content blob the questions are drawn from.
	Content string

	// Difficulty is one of the fixed difficulty levels.
	Difficulty Difficulty

	// QuestionType is one of the fixed question shapes.
	QuestionType QuestionType

	// Count is the desired number of questions.
	Count int

	// TimerSeconds is the per-question countdown duration. Zero disables
	// the timer.
	TimerSeconds int
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() Config {
	return Config{
		Difficulty:   DifficultyMedium,
		QuestionType: TypeMultipleChoice,
		Count:        5,
		TimerSeconds: 0,
	}
}
