package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/phoebegrace/NoFilterNaevis/internal/problemgen"
	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
	"github.com/phoebegrace/NoFilterNaevis/internal/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/store"
)

type bankGenerator struct {
	recs []quiz.QuestionRecord
	next int
}

func (g *bankGenerator) GenerateUnique(_ context.Context, topic quiz.Topic, difficulty quiz.Difficulty, state problemgen.SessionState) (quiz.QuestionRecord, error) {
	if g.next >= len(g.recs) {
		return quiz.QuestionRecord{}, &problemgen.ErrGenerationExhausted{Attempts: 5, Duplicates: 5}
	}
	rec := g.recs[g.next]
	g.next++
	state.StartQuestion(rec, topic, difficulty, false)
	return rec, nil
}

func runAsker(t *testing.T, input string) (*session.Machine, string) {
	t.Helper()
	gen := &bankGenerator{recs: []quiz.QuestionRecord{
		{Question: "What is the capital of France?", Hint: "City of lights.", Answer: "Paris"},
		{Question: "What is 7 x 8?", Hint: "Think 7 x 7 + 7.", Answer: "56"},
	}}
	m := session.NewMachine(session.Options{Generator: gen})
	var out bytes.Buffer
	if err := newAsker(m, strings.NewReader(input), &out).run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return m, out.String()
}

func TestAsker_AnswerAndNext(t *testing.T) {
	m, out := runAsker(t, "paris\n/next\n42\n/quit\n")

	for _, want := range []string{
		"Question: What is the capital of France?",
		"Correct! +1",
		"Question: What is 7 x 8?",
		"Incorrect! The correct answer was: 56",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	snap := m.Snapshot()
	if snap.Score != 1 || snap.Asked != 2 || snap.NumRight != 1 {
		t.Errorf("score=%d asked=%d right=%d, want 1/2/1", snap.Score, snap.Asked, snap.NumRight)
	}
}

func TestAsker_HintAndOverride(t *testing.T) {
	m, out := runAsker(t, "/hint\nlondon\n/override\n/override\n")

	if !strings.Contains(out, "Hint: City of lights.") {
		t.Errorf("missing hint:\n%s", out)
	}
	if !strings.Contains(out, "You confirmed your answer as correct! +1 (score 1)") {
		t.Errorf("missing override confirmation:\n%s", out)
	}
	if !strings.Contains(out, "You confirmed your answer as correct! +1 (score 2)") {
		t.Errorf("second override should count again:\n%s", out)
	}
	if snap := m.Snapshot(); snap.Overrides != 2 || snap.Score != 2 {
		t.Errorf("overrides=%d score=%d, want 2/2", snap.Overrides, snap.Score)
	}
}

func TestAsker_Guards(t *testing.T) {
	_, out := runAsker(t, "/next\nparis\nagain\n/bogus\n")

	if !strings.Contains(out, "Answer the current question first.") {
		t.Errorf("/next during a question should be refused:\n%s", out)
	}
	if !strings.Contains(out, "Already answered.") {
		t.Errorf("second answer should be refused:\n%s", out)
	}
	if !strings.Contains(out, "Unknown command /bogus") {
		t.Errorf("unknown command not reported:\n%s", out)
	}
}

func TestAsker_Selection(t *testing.T) {
	m, out := runAsker(t, "/topic earth science\n/difficulty hard\n/topic astrology\n/topic\n")

	snap := m.Snapshot()
	if snap.SelectedTopic != "Earth Science" || snap.SelectedDifficulty != quiz.DifficultyHard {
		t.Errorf("selection = %s/%s, want Earth Science/hard", snap.SelectedTopic, snap.SelectedDifficulty)
	}
	if snap.Difficulty != quiz.DifficultyEasy {
		t.Error("selection must not change the open question")
	}
	if !strings.Contains(out, "invalid selection") {
		t.Errorf("unknown topic not reported:\n%s", out)
	}
	if !strings.Contains(out, "Topics: ") {
		t.Errorf("bare /topic should list topics:\n%s", out)
	}
}

func TestAsker_Exhausted(t *testing.T) {
	m, out := runAsker(t, "paris\n/next\n42\n/next\n/score\n")

	if !strings.Contains(out, "ran out of fresh questions after 5 tries") {
		t.Errorf("exhaustion not reported:\n%s", out)
	}
	if m.Phase() != session.PhaseAnswered {
		t.Errorf("phase = %s, want answered after a failed generate", m.Phase())
	}
	if !strings.Contains(out, "Score: 1 pts | asked 2 | correct 1 | overrides 0") {
		t.Errorf("score line wrong:\n%s", out)
	}
}

func TestResolveDBPath(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("db", "", "")
		return c
	}

	t.Setenv("NAEVIS_DB", "")
	got, err := resolveDBPath(newCmd(), false)
	if err != nil || got != store.MemoryDSN {
		t.Errorf("default = %q, %v; want in-memory", got, err)
	}

	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	got, _ = resolveDBPath(newCmd(), true)
	if got != "/tmp/xdg/naevis/naevis.db" {
		t.Errorf("persistent default = %q", got)
	}

	t.Setenv("NAEVIS_DB", "/tmp/env.db")
	got, _ = resolveDBPath(newCmd(), false)
	if got != "/tmp/env.db" {
		t.Errorf("env = %q, want /tmp/env.db", got)
	}

	c := newCmd()
	if err := c.Flags().Set("db", "/tmp/flag.db"); err != nil {
		t.Fatal(err)
	}
	got, _ = resolveDBPath(c, true)
	if got != "/tmp/flag.db" {
		t.Errorf("flag = %q, want /tmp/flag.db", got)
	}
}

func TestDefaultLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := defaultLogFile(); got != "/tmp/state/naevis/naevis.log" {
		t.Errorf("defaultLogFile() = %q", got)
	}
}
