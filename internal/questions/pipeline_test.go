package questions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// scriptedCaller answers by technology, matched against the prompt.
type scriptedCaller struct {
	replies map[string]string
	errs    map[string]error
	prompts []string
}

func (s *scriptedCaller) Call(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	for tech, err := range s.errs {
		if strings.Contains(prompt, "technology: "+tech+".") {
			return "", err
		}
	}
	for tech, reply := range s.replies {
		if strings.Contains(prompt, "technology: "+tech+".") {
			return reply, nil
		}
	}
	return "", nil
}

func TestGenerateAllMixedOutcomes(t *testing.T) {
	caller := &scriptedCaller{
		replies: map[string]string{
			"Go":     "1. What is a goroutine?\n2. What is a channel?\n3. What is defer?",
			"Django": "I cannot help with that.",
		},
		errs: map[string]error{
			"SQL": errors.New("provider down"),
		},
	}

	core, observed := observer.New(zapcore.DebugLevel)
	p := NewPipeline(caller, zap.New(core))

	got := p.GenerateAll(context.Background(), []string{"Go", "SQL", "Django"}, 2, 3)

	if len(got) != 9 {
		t.Fatalf("expected 9 questions, got %d: %+v", len(got), got)
	}

	wantTech := []string{"Go", "Go", "Go", "SQL", "SQL", "SQL", "Django", "Django", "Django"}
	for i, q := range got {
		if q.Technology != wantTech[i] {
			t.Fatalf("question %d: expected technology %q, got %q", i, wantTech[i], q.Technology)
		}
	}

	if got[0].Text != "What is a goroutine?" {
		t.Fatalf("expected parsed question first, got %q", got[0].Text)
	}
	if got[3] != Fallback("SQL", 3, 2)[0] {
		t.Fatalf("expected SQL fallback, got %+v", got[3])
	}

	if len(caller.prompts) != 3 {
		t.Fatalf("expected one call per technology, got %d", len(caller.prompts))
	}

	errorsLogged := observed.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errorsLogged) != 1 || errorsLogged[0].ContextMap()["technology"] != "SQL" {
		t.Fatalf("expected one error diagnostic for SQL, got %+v", errorsLogged)
	}

	warnings := observed.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 || warnings[0].ContextMap()["technology"] != "Django" {
		t.Fatalf("expected one warning diagnostic for Django, got %+v", warnings)
	}
}

func TestGenerateAllAssignsRequestedTechnology(t *testing.T) {
	caller := &scriptedCaller{replies: map[string]string{
		"Python": "Python Basics:\n1. What is a list?\n2. What is a dict?",
		"React":  "1. What is JSX?",
	}}

	got := NewPipeline(caller, nil).GenerateAll(context.Background(), []string{"Python", "React"}, 0.5, 3)

	want := []Question{
		{Technology: "Python", Text: "What is a list?"},
		{Technology: "Python", Text: "What is a dict?"},
		{Technology: "React", Text: "What is JSX?"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("question %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestGenerateAllDuplicatesAndEmptyStack(t *testing.T) {
	caller := &scriptedCaller{errs: map[string]error{"Rust": errors.New("down")}}
	p := NewPipeline(caller, nil)

	if got := p.GenerateAll(context.Background(), nil, 1, 3); len(got) != 0 {
		t.Fatalf("expected no questions for empty stack, got %d", len(got))
	}

	got := p.GenerateAll(context.Background(), []string{"Rust", "Rust"}, 1, 4)
	if len(got) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(got))
	}
}

func TestGenerateBlocksReportsSource(t *testing.T) {
	boom := errors.New("down")
	caller := &scriptedCaller{
		replies: map[string]string{"Go": "1. What is an interface?"},
		errs:    map[string]error{"Java": boom},
	}

	blocks := NewPipeline(caller, nil).GenerateBlocks(context.Background(), []string{"Go", "Java", "Kotlin"}, 4, 3)

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].Source != SourceModel || blocks[0].Err != nil {
		t.Fatalf("unexpected Go block: %+v", blocks[0])
	}
	if blocks[1].Source != SourceFallback || !errors.Is(blocks[1].Err, boom) {
		t.Fatalf("unexpected Java block: %+v", blocks[1])
	}
	if blocks[2].Source != SourceFallback || blocks[2].Err != nil {
		t.Fatalf("unexpected Kotlin block: %+v", blocks[2])
	}
	if !strings.Contains(caller.prompts[0], LevelMid) {
		t.Fatalf("expected mid-level prompt, got %q", caller.prompts[0])
	}
}
