package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/talentscout/internal/interview"
	"github.com/spigell/talentscout/internal/questions"
)

func snapshot(id string) interview.Snapshot {
	return interview.Snapshot{
		SessionID: id,
		Candidate: interview.Profile{Name: "Ada", Technologies: []string{"Go"}},
		Questions: []questions.Question{{Technology: "Go", Text: "What is a slice?"}},
		Answers: []interview.Answer{{
			Question: questions.Question{Technology: "Go", Text: "What is a slice?"},
			Text:     "A view over an array.",
		}},
	}
}

func TestMemoryLastSaved(t *testing.T) {
	m := NewMemory(0, nil)

	_, ok := m.LastSaved()
	assert.False(t, ok)

	require.NoError(t, m.SaveCandidate(context.Background(), snapshot("a")))
	require.NoError(t, m.SaveCandidate(context.Background(), snapshot("b")))

	last, ok := m.LastSaved()
	require.True(t, ok)
	assert.Equal(t, "b", last.SessionID)

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.SessionID)
}

func TestMemoryStoresCopies(t *testing.T) {
	m := NewMemory(0, nil)
	s := snapshot("a")
	require.NoError(t, m.SaveCandidate(context.Background(), s))

	s.Candidate.Technologies[0] = "Rust"
	s.Answers[0].Text = "changed"

	last, _ := m.LastSaved()
	assert.Equal(t, "Go", last.Candidate.Technologies[0])
	assert.Equal(t, "A view over an array.", last.Answers[0].Text)

	last.Questions[0].Text = "mutated"
	again, _ := m.LastSaved()
	assert.Equal(t, "What is a slice?", again.Questions[0].Text)
}

func TestMemoryHistoryLimit(t *testing.T) {
	m := NewMemory(2, nil)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, m.SaveCandidate(context.Background(), snapshot(id)))
	}

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get("a")
	assert.False(t, ok)
}

func TestMemoryRejectsInvalidSnapshot(t *testing.T) {
	m := NewMemory(0, nil)
	assert.Error(t, m.SaveCandidate(context.Background(), interview.Snapshot{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SaveCandidate(ctx, snapshot("a")), context.Canceled)
	assert.Equal(t, 0, m.Len())
}
