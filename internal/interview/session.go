package interview

import (
	"time"

	"github.com/spigell/talentscout/internal/questions"
)

// State is the position of a session in the interview lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateAwaitingAnswer
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// exhausted is the cursor value once no question is pending.
const exhausted = -1

// Speaker is the author of a transcript entry.
type Speaker string

const (
	SpeakerAssistant Speaker = "assistant"
	SpeakerUser      Speaker = "user"
)

// Entry is one line of the conversation as shown to the candidate.
type Entry struct {
	Speaker Speaker `json:"role"`
	Text    string  `json:"text"`
}

// Answer pairs a question with what the candidate replied.
type Answer struct {
	Question questions.Question `json:"question"`
	Text     string             `json:"answer"`
	Feedback string             `json:"feedback,omitempty"`
}

// Session is the state of one interview. It is owned by a single caller and
// only changed through an Interviewer.
type Session struct {
	ID        string
	Profile   Profile
	Questions []questions.Question
	Answers   []Answer
	StartedAt time.Time

	// Transcript is for display only; the state machine never reads it.
	Transcript []Entry

	state  State
	cursor int
}

// NewSession returns an empty session waiting to be started.
func NewSession() *Session {
	return &Session{cursor: exhausted}
}

func (s *Session) State() State { return s.state }

// Cursor returns the index of the pending question. ok is false when no
// question is pending.
func (s *Session) Cursor() (index int, ok bool) {
	if s.state != StateAwaitingAnswer || s.cursor == exhausted {
		return 0, false
	}
	return s.cursor, true
}

// Current returns the pending question, if any.
func (s *Session) Current() (questions.Question, bool) {
	i, ok := s.Cursor()
	if !ok || i >= len(s.Questions) {
		return questions.Question{}, false
	}
	return s.Questions[i], true
}

func (s *Session) Finished() bool { return s.state == StateFinished }

func (s *Session) say(text string) Entry {
	e := Entry{Speaker: SpeakerAssistant, Text: text}
	s.Transcript = append(s.Transcript, e)
	return e
}

func (s *Session) hear(text string) {
	s.Transcript = append(s.Transcript, Entry{Speaker: SpeakerUser, Text: text})
}

// Snapshot is the copy of a session handed to storage.
type Snapshot struct {
	SessionID string               `json:"session_id"`
	Candidate Profile              `json:"candidate"`
	Questions []questions.Question `json:"questions"`
	Answers   []Answer             `json:"answers"`
	StartedAt time.Time            `json:"started_at"`
	SavedAt   time.Time            `json:"saved_at"`

	// EndedEarly is set when the candidate left before the last question.
	EndedEarly bool `json:"ended_early"`
}

// Snapshot copies the session so later changes do not leak into storage.
func (s *Session) Snapshot(now time.Time) Snapshot {
	p := s.Profile
	p.Technologies = append([]string(nil), s.Profile.Technologies...)

	return Snapshot{
		SessionID:  s.ID,
		Candidate:  p,
		Questions:  append([]questions.Question(nil), s.Questions...),
		Answers:    append([]Answer(nil), s.Answers...),
		StartedAt:  s.StartedAt,
		SavedAt:    now,
		EndedEarly: len(s.Answers) < len(s.Questions),
	}
}
