package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
	if s.EventRepo() == nil {
		t.Fatal("expected non-nil event repo")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "naevis.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event after reopen, got %d", len(events))
	}

	// The sequence keeps counting across reopen.
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "commentary"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	events, _ = s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequence did not advance: %d then %d", events[1].Sequence, events[0].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev := int64(0)
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestLLMEvents_AppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	inputs := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 120, OutputTokens: 40, LatencyMs: 800, Success: true,
			RequestBody: "[user]\nTopic: Math", ResponseBody: "Question: 2+2? Hint: even Answer: 4"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "commentary", InputTokens: 30, OutputTokens: 20, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
	}
	for _, in := range inputs {
		if err := repo.AppendLLMRequest(ctx, in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].ErrorMessage != "rate limited" {
		t.Errorf("expected newest first, got %+v", all[0])
	}

	gen, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen", Limit: 1})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(gen) != 1 || gen[0].Purpose != "question-gen" {
		t.Fatalf("purpose filter returned %+v", gen)
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 {
		t.Fatalf("expected 1 event after sequence %d, got %d", all[1].Sequence, len(after))
	}

	first := all[2]
	got, err := repo.GetLLMEvent(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != inputs[0].ResponseBody || !got.Success {
		t.Fatalf("get returned %+v", got)
	}
	if time.Since(got.Timestamp) > time.Minute {
		t.Errorf("timestamp %v not recent", got.Timestamp)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, in := range []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 10, LatencyMs: 100, Success: true},
		{Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 50, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Model: "claude-haiku-4-5-20251001", Purpose: "commentary", InputTokens: 20, OutputTokens: 8, LatencyMs: 50, Success: true},
		{Model: "gpt-4o-mini", Purpose: "commentary", LatencyMs: 10, Success: false},
	} {
		if err := repo.AppendLLMRequest(ctx, in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	gen := byPurpose[1]
	if gen.Purpose != "question-gen" || gen.Calls != 2 || gen.InputTokens != 150 || gen.OutputTokens != 15 || gen.AvgLatencyMs != 200 {
		t.Errorf("question-gen usage = %+v", gen)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[1].Model != "gpt-4o-mini" || byModel[1].Calls != 2 {
		t.Errorf("failed calls should not count toward model usage: %+v", byModel[1])
	}
}

func TestAnswerAndSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionStart}); err != nil {
		t.Fatalf("append session start: %v", err)
	}
	answers := []AnswerEventData{
		{SessionID: "s1", Kind: AnswerSubmit, Topic: "Math", Difficulty: "easy", Question: "2+2?", CorrectAnswer: "4", UserAnswer: "4", Correct: true, Points: 1},
		{SessionID: "s2", Kind: AnswerSubmit, Topic: "Trivia", Difficulty: "hard", Question: "Q", CorrectAnswer: "A", UserAnswer: "B"},
		{SessionID: "s1", Kind: AnswerSubmit, Topic: "K-POP", Difficulty: "medium", Question: "Dynamite?", CorrectAnswer: "BTS", UserAnswer: "Bangtan"},
		{SessionID: "s1", Kind: AnswerOverride, Topic: "K-POP", Difficulty: "medium", Question: "Dynamite?", CorrectAnswer: "BTS", UserAnswer: "Bangtan", Points: 2},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionEnd, QuestionsAsked: 2, CorrectAnswers: 1, Score: 3, DurationSecs: 42}); err != nil {
		t.Fatalf("append session end: %v", err)
	}

	got, err := repo.SessionAnswers(ctx, "s1")
	if err != nil {
		t.Fatalf("session answers: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 answers for s1, got %d", len(got))
	}
	if got[0].Question != "2+2?" || !got[0].Correct || got[0].Points != 1 {
		t.Errorf("first answer = %+v", got[0])
	}
	if got[2].Kind != AnswerOverride || got[2].Correct || got[2].Points != 2 {
		t.Errorf("override answer = %+v", got[2])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sequence <= got[i-1].Sequence {
			t.Errorf("answers out of order at %d", i)
		}
	}

	var ends int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM session_events WHERE session_id = 's1' AND action = 'end'`).Scan(&ends); err != nil {
		t.Fatalf("count session events: %v", err)
	}
	if ends != 1 {
		t.Errorf("expected 1 end event, got %d", ends)
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("NAEVIS_DB", "/tmp/custom.db")
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != "/tmp/custom.db" {
		t.Errorf("path = %q", p)
	}

	t.Setenv("NAEVIS_DB", "")
	t.Setenv("XDG_DATA_HOME", "/data")
	p, _ = DefaultDBPath()
	if p != filepath.Join("/data", "naevis", "naevis.db") {
		t.Errorf("path = %q", p)
	}
}
