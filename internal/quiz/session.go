package quiz

import "errors"

// Phase is the session state for the current question.
type Phase int

const (
	// PhaseAwaiting means the current question is displayed and no answer
	// has been recorded for it yet.
	PhaseAwaiting Phase = iota

	// PhaseAnswered means an answer (user selection or timeout) has been
	// recorded for the current question.
	PhaseAnswered

	// PhaseComplete is terminal: every question has exactly one answer.
	PhaseComplete
)

// ErrNoQuestions is returned when a session is started with an empty
// question list.
var ErrNoQuestions = errors.New("quiz: session requires at least one question")

// Session manages progression through an ordered list of questions.
//
// Transitions: AwaitingAnswer(i) --Select/Timeout--> Answered(i)
// --Advance--> AwaitingAnswer(i+1) or Complete. Back navigation is not
// supported; at most one Answer is ever recorded per question index.
type Session struct {
	questions []Question
	config    Config

	index   int
	phase   Phase
	answers []Answer
	streak  int

	remaining  int
	timerArmed bool
}

// NewSession creates a session in AwaitingAnswer(0). The question list must
// be non-empty.
func NewSession(questions []Question, cfg Config) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		questions: questions,
		config:    cfg,
		answers:   make([]Answer, 0, len(questions)),
	}
	s.armTimer()
	return s, nil
}

// Config returns the immutable session configuration.
func (s *Session) Config() Config { return s.config }

// Questions returns the ordered question list.
func (s *Session) Questions() []Question { return s.questions }

// Current returns the question at the current index.
func (s *Session) Current() Question { return s.questions[s.index] }

// Index returns the current question index (0-based).
func (s *Session) Index() int { return s.index }

// Phase returns the current session phase.
func (s *Session) Phase() Phase { return s.phase }

// Streak returns the count of consecutive correct answers ending at the
// most recent one.
func (s *Session) Streak() int { return s.streak }

// Answers returns the answers recorded so far, in question order.
func (s *Session) Answers() []Answer { return s.answers }

// Remaining returns the seconds left on the current question's countdown.
// Zero when no timer is configured or the countdown is disarmed.
func (s *Session) Remaining() int { return s.remaining }

// TimerArmed reports whether the countdown is running for the current
// question.
func (s *Session) TimerArmed() bool { return s.timerArmed }

// LastAnswer returns the most recently recorded answer. Only meaningful in
// PhaseAnswered or PhaseComplete.
func (s *Session) LastAnswer() Answer {
	return s.answers[len(s.answers)-1]
}

// Select records the user's choice for the current question and transitions
// to Answered. Returns false (no-op) unless the session is AwaitingAnswer:
// a click after a timeout for the same index records nothing.
func (s *Session) Select(option string) bool {
	if s.phase != PhaseAwaiting {
		return false
	}
	s.record(option, option == s.Current().Answer)
	return true
}

// Timeout records the no-response sentinel for the current question, always
// incorrect. Idempotent: returns false once any answer exists for the index.
func (s *Session) Timeout() bool {
	if s.phase != PhaseAwaiting {
		return false
	}
	s.record(NoResponse, false)
	return true
}

// Tick decrements the countdown by one second. When it reaches zero the
// timeout fires exactly once. Returns true if this tick fired the timeout.
// Ticks outside AwaitingAnswer, or with no timer configured, are ignored.
func (s *Session) Tick() bool {
	if !s.timerArmed || s.phase != PhaseAwaiting {
		return false
	}
	s.remaining--
	if s.remaining > 0 {
		return false
	}
	return s.Timeout()
}

// Advance moves from Answered(i) to AwaitingAnswer(i+1), or to Complete
// after the last question. Returns false in any other phase, so repeated
// advance actions neither duplicate nor skip questions.
func (s *Session) Advance() bool {
	if s.phase != PhaseAnswered {
		return false
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.phase = PhaseAwaiting
		s.armTimer()
		return true
	}
	s.phase = PhaseComplete
	return true
}

// record appends the answer, updates the streak, and disarms the countdown.
func (s *Session) record(selected string, correct bool) {
	q := s.Current()
	s.answers = append(s.answers, Answer{
		QuestionID:    q.ID,
		QuestionText:  q.Text,
		Selected:      selected,
		CorrectAnswer: q.Answer,
		Correct:       correct,
	})
	if correct {
		s.streak++
	} else {
		s.streak = 0
	}
	s.timerArmed = false
	s.remaining = 0
	s.phase = PhaseAnswered
}

func (s *Session) armTimer() {
	if s.config.TimerSeconds > 0 {
		s.remaining = s.config.TimerSeconds
		s.timerArmed = true
	}
}
