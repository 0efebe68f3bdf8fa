package interview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/talentscout/internal/ai"
	"github.com/spigell/talentscout/internal/ai/aitest"
	"github.com/spigell/talentscout/internal/interview"
	"github.com/spigell/talentscout/internal/questions"
	"github.com/spigell/talentscout/internal/storage"
)

func TestInterviewWithUnavailableModel(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	log := zap.New(core)

	gen := aitest.Failing(errors.New("service unavailable"))
	caller := ai.NewRetrier(gen, ai.RetryConfig{Attempts: 3, BaseDelay: time.Microsecond}, log)
	store := storage.NewMemory(0, log)

	interviewer := interview.NewInterviewer(questions.NewPipeline(caller, log), caller, store, 3, log)

	s := interview.NewSession()
	_, err := interviewer.Start(context.Background(), s, interview.Profile{
		Name:            "Arpit Patel",
		Email:           "arpit@example.com",
		Phone:           "+91 9876543210",
		YearsExperience: 0.5,
		Technologies:    []string{"Python"},
	})
	require.NoError(t, err)

	require.Equal(t, questions.Fallback("Python", 3, 0.5), s.Questions)
	assert.Equal(t, 3, gen.Calls())
	assert.Equal(t, 1, observed.FilterMessage("question generation failed, using fallback questions").Len())

	for n := 0; n < 3; n++ {
		require.Equal(t, interview.StateAwaitingAnswer, s.State())
		entries := interviewer.Handle(context.Background(), s, "I am not sure.")
		assert.Equal(t, "Feedback (Python):\n> "+interview.NoticeFeedbackFailed, entries[0].Text)
	}

	assert.Equal(t, interview.StateFinished, s.State())
	assert.Equal(t, 3+3*3, gen.Calls())
	assert.Equal(t, 1, store.Len())

	saved, ok := store.LastSaved()
	require.True(t, ok)
	assert.Equal(t, s.ID, saved.SessionID)
	assert.Len(t, saved.Answers, 3)
	assert.Equal(t, []string{"Python"}, saved.Candidate.Technologies)

	entries := interviewer.Handle(context.Background(), s, "anything else?")
	assert.Equal(t, interview.NoticeNoMoreQuestions, entries[0].Text)
	assert.Equal(t, 1, store.Len())
}
