package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/talentscout/internal/ai"
	"github.com/spigell/talentscout/internal/logger"
	"github.com/spigell/talentscout/internal/questions"
)

// ErrAlreadyStarted is returned by Start for a session that was not reset.
var ErrAlreadyStarted = errors.New("interview session already started")

// QuestionGenerator produces the ordered question list for a tech stack.
type QuestionGenerator interface {
	GenerateAll(ctx context.Context, technologies []string, years float64, perTech int) []questions.Question
}

// Store keeps finished interviews.
type Store interface {
	SaveCandidate(ctx context.Context, snapshot Snapshot) error
	LastSaved() (Snapshot, bool)
}

// Interviewer drives sessions through the interview. Every method leaves the
// session in a well-defined state; generation failures become notices.
type Interviewer struct {
	questions QuestionGenerator
	evaluator ai.Caller
	store     Store
	perTech   int
	logger    *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewInterviewer wires the collaborators. perTech is clamped to the supported range.
func NewInterviewer(gen QuestionGenerator, evaluator ai.Caller, store Store, perTech int, log *zap.Logger) *Interviewer {
	return &Interviewer{
		questions: gen,
		evaluator: evaluator,
		store:     store,
		perTech:   questions.ClampCount(perTech),
		logger:    logger.WithFields(log),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Start validates the profile, generates the questions and asks the first one.
// An invalid profile leaves the session untouched.
func (i *Interviewer) Start(ctx context.Context, s *Session, profile Profile) ([]Entry, error) {
	if s.state != StateNotStarted {
		return nil, ErrAlreadyStarted
	}

	profile = profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	s.ID = i.newID()
	s.Profile = profile
	s.StartedAt = i.now()
	s.Questions = nil
	s.Answers = nil

	log := logger.WithSession(i.logger, s.ID, profile.Name)
	log.Info("interview started",
		zap.Strings("technologies", profile.Technologies),
		zap.Float64("years_experience", profile.YearsExperience),
		zap.Int("questions_per_technology", i.perTech),
	)

	entries := []Entry{s.say(welcomeText(profile))}

	s.Questions = i.questions.GenerateAll(ctx, profile.Technologies, profile.YearsExperience, i.perTech)
	if len(s.Questions) == 0 {
		log.Warn("no questions generated, finishing interview")
		s.state = StateFinished
		s.cursor = exhausted
		return append(entries, s.say(NoticeNoQuestions)), nil
	}

	s.state = StateAwaitingAnswer
	s.cursor = 0
	log.Info("questions ready", zap.Int("count", len(s.Questions)))

	return append(entries, s.say(questionText(s.Questions[0]))), nil
}

// Handle processes one message from the candidate and returns what the
// assistant says in reply.
func (i *Interviewer) Handle(ctx context.Context, s *Session, message string) []Entry {
	switch s.state {
	case StateNotStarted:
		return []Entry{{Speaker: SpeakerAssistant, Text: NoticeNotStarted}}
	case StateFinished:
		return []Entry{{Speaker: SpeakerAssistant, Text: NoticeNoMoreQuestions}}
	}

	log := logger.WithSession(i.logger, s.ID, s.Profile.Name)
	text := strings.TrimSpace(message)
	s.hear(text)

	if IsExit(text) {
		log.Info("candidate ended the interview", zap.Int("answered", len(s.Answers)))
		entries := []Entry{s.say(NoticeGoodbye)}
		i.finish(ctx, s, log)
		return entries
	}

	current, ok := s.Current()
	if !ok {
		// Unreachable while the cursor is kept in bounds; finish rather than stall.
		log.Error("no pending question while awaiting an answer", zap.Int("cursor", s.cursor))
		i.finish(ctx, s, log)
		return []Entry{s.say(NoticeNoMoreQuestions)}
	}

	s.Answers = append(s.Answers, Answer{Question: current, Text: text})

	feedback := i.evaluate(ctx, s, current, text, log)
	s.Answers[len(s.Answers)-1].Feedback = feedback
	entries := []Entry{s.say(feedbackText(current, feedback))}

	next := s.cursor + 1
	if next < len(s.Questions) {
		s.cursor = next
		return append(entries, s.say(questionText(s.Questions[next])))
	}

	log.Info("all questions answered", zap.Int("answered", len(s.Answers)))
	entries = append(entries, s.say(NoticeClosing))
	i.finish(ctx, s, log)
	return entries
}

// Reset returns the session to NotStarted, dropping everything it held.
func (i *Interviewer) Reset(s *Session) {
	if s.ID != "" {
		logger.WithSession(i.logger, s.ID, s.Profile.Name).Info("interview reset", zap.String("state", s.state.String()))
	}
	*s = *NewSession()
}

func (i *Interviewer) evaluate(ctx context.Context, s *Session, q questions.Question, answer string, log *zap.Logger) string {
	log = log.With(zap.String(logger.FieldTechnology, q.Technology))

	out, err := i.evaluator.Call(ctx, EvaluationPrompt(s.Profile.YearsExperience, q, answer))
	if err != nil {
		log.Error("feedback generation failed", zap.Error(err))
		return NoticeFeedbackFailed
	}

	out = strings.TrimSpace(out)
	if out == "" {
		log.Warn("model returned empty feedback")
		return NoticeNoFeedback
	}
	return out
}

func (i *Interviewer) finish(ctx context.Context, s *Session, log *zap.Logger) {
	s.state = StateFinished
	s.cursor = exhausted

	if i.store == nil {
		return
	}
	if err := i.store.SaveCandidate(ctx, s.Snapshot(i.now())); err != nil {
		log.Error("saving candidate failed", zap.Error(fmt.Errorf("save session %s: %w", s.ID, err)))
		return
	}
	log.Info("candidate saved")
}
