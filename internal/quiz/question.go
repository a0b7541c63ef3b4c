package quiz

// Question is a single generated quiz question, immutable once generated.
type Question struct {
	// ID is unique within a session, assigned in order starting at 1.
	ID int `json:"id"`

	// Text is the question prompt displayed to the user.
	Text string `json:"question"`

	// Options is the ordered list of answer choices.
	Options []string `json:"options"`

	// Answer is the correct option, equal to exactly one entry in Options.
	Answer string `json:"answer"`

	// Explanation is a short rationale shown after the question is answered.
	Explanation string `json:"explanation"`
}

// Answer records the user's response to one question. Created exactly once
// per question, append-only within a session.
type Answer struct {
	QuestionID int `json:"questionId"`

	// QuestionText is a denormalized copy of the question prompt for display.
	QuestionText string `json:"questionText"`

	// Selected is the option the user chose, or NoResponse on timeout.
	Selected string `json:"selected"`

	// CorrectAnswer is a denormalized copy of the correct option.
	CorrectAnswer string `json:"correctAnswer"`

	// Correct is computed at answer time by string equality.
	Correct bool `json:"isCorrect"`
}

// NoResponse is the sentinel recorded when the countdown expires before the
// user selects an option.
const NoResponse = "No response"
