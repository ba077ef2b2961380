package session

import (
	"context"
	"time"

	"github.com/phoebegrace/NoFilterNaevis/internal/commentary"
	"github.com/phoebegrace/NoFilterNaevis/internal/logger"
	"github.com/phoebegrace/NoFilterNaevis/internal/problemgen"
	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
	"github.com/phoebegrace/NoFilterNaevis/internal/store"
)

// Generator produces a question the session has not seen and installs it
// via state.StartQuestion. *problemgen.Pipeline implements it.
type Generator interface {
	GenerateUnique(ctx context.Context, topic quiz.Topic, difficulty quiz.Difficulty, state problemgen.SessionState) (quiz.QuestionRecord, error)
}

// Options wires a Machine to its collaborators.
type Options struct {
	Generator Generator

	// Commentary defaults to commentary.Nop.
	Commentary commentary.Service

	// Events receives the audit trail. Nil disables recording.
	Events store.EventRepo

	Log *logger.Logger

	// Topics accepted by Select. Defaults to quiz.DefaultTopics.
	Topics []quiz.Topic

	// Initial selection. Defaults to the first topic and easy.
	Topic      quiz.Topic
	Difficulty quiz.Difficulty
}

// Machine drives a QuizSession through its phases. It is not safe for
// concurrent use; every presentation surface serializes commands.
type Machine struct {
	session *QuizSession
	phase   Phase

	topic      quiz.Topic
	difficulty quiz.Difficulty
	topics     []quiz.Topic

	generator  Generator
	commentary commentary.Service
	events     store.EventRepo
	log        *logger.Logger

	started bool
	ended   bool
	now     func() time.Time
}

// NewMachine returns a Machine in PhaseIdle with an empty session.
func NewMachine(opts Options) *Machine {
	m := &Machine{
		session:    NewQuizSession(),
		phase:      PhaseIdle,
		topics:     opts.Topics,
		generator:  opts.Generator,
		commentary: opts.Commentary,
		events:     opts.Events,
		log:        opts.Log,
		topic:      opts.Topic,
		difficulty: opts.Difficulty,
		now:        time.Now,
	}
	if len(m.topics) == 0 {
		m.topics = quiz.DefaultTopics
	}
	if m.commentary == nil {
		m.commentary = commentary.Nop{}
	}
	if m.log == nil {
		m.log = logger.Nop()
	}
	if m.topic == "" {
		m.topic = m.topics[0]
	}
	if !m.difficulty.Valid() {
		m.difficulty = quiz.DifficultyEasy
	}
	m.log = m.log.With("session_id", m.session.ID)
	return m
}

func (m *Machine) Phase() Phase { return m.phase }

func (m *Machine) Topics() []quiz.Topic {
	out := make([]quiz.Topic, len(m.topics))
	copy(out, m.topics)
	return out
}

// Select sets the topic and difficulty used for the next generated
// question. It is allowed in any phase and does not touch the question
// on screen.
func (m *Machine) Select(topic string, difficulty string) error {
	t, err := quiz.ParseTopic(topic, m.topics)
	if err != nil {
		return &ErrInvalidSelection{Err: err}
	}
	d, err := quiz.ParseDifficulty(difficulty)
	if err != nil {
		return &ErrInvalidSelection{Err: err}
	}
	m.topic, m.difficulty = t, d
	return nil
}

// Generate fetches a new question for the current selection. Allowed in
// PhaseIdle and PhaseAnswered. On failure the session is unchanged and
// the error is the generator's (*problemgen.ErrGeneration or
// *problemgen.ErrGenerationExhausted).
func (m *Machine) Generate(ctx context.Context) (Snapshot, error) {
	if m.phase == PhaseQuestion {
		return m.Snapshot(), &ErrInvalidTransition{
			Command: CmdGenerate, Phase: m.phase,
			Reason: "the current question has not been answered",
		}
	}

	if _, err := m.generator.GenerateUnique(ctx, m.topic, m.difficulty, m.session); err != nil {
		m.log.Warn("question generation failed",
			"topic", m.topic, "difficulty", m.difficulty, "error", err)
		return m.Snapshot(), err
	}

	m.ensureStarted(ctx)
	m.phase = PhaseQuestion
	m.log.Info("question displayed",
		"topic", m.session.Topic, "difficulty", m.session.Difficulty,
		"degraded", m.session.Degraded, "asked", m.session.Asked)
	return m.Snapshot(), nil
}

// Next is Generate restricted to PhaseAnswered.
func (m *Machine) Next(ctx context.Context) (Snapshot, error) {
	if m.phase != PhaseAnswered {
		return m.Snapshot(), &ErrInvalidTransition{Command: CmdNext, Phase: m.phase}
	}
	return m.Generate(ctx)
}

// Submit checks answer against the current question, awards points when
// correct and asks for a comment on the result. Allowed in PhaseQuestion.
// A commentary failure is logged and leaves Commentary empty; the
// verdict stands either way.
func (m *Machine) Submit(ctx context.Context, answer string) (Snapshot, error) {
	if m.phase != PhaseQuestion {
		return m.Snapshot(), &ErrInvalidTransition{Command: CmdSubmit, Phase: m.phase}
	}

	s := m.session
	correct := quiz.Verify(answer, s.Current.Answer)

	s.LastUserAnswer = answer
	s.Checked = true
	s.AnswerCorrect = &correct
	s.Answered++

	points := 0
	if correct {
		before := s.Score.Total()
		points = s.Score.Award(s.Difficulty) - before
		s.Correct++
	}
	m.phase = PhaseAnswered

	m.log.Info("answer checked",
		"topic", s.Topic, "difficulty", s.Difficulty,
		"correct", correct, "points", points, "score", s.Score.Total())
	m.recordAnswer(ctx, store.AnswerSubmit, correct, points)

	comment, err := m.commentary.Comment(ctx, correct)
	if err != nil {
		m.log.Warn("commentary unavailable", "error", err)
		comment = ""
	}
	s.Commentary = comment

	return m.Snapshot(), nil
}

// Hint returns the current question's hint. Allowed whenever a question
// is on screen; it never changes state.
func (m *Machine) Hint() (string, error) {
	if m.session.Current == nil {
		return "", &ErrInvalidTransition{Command: CmdShowHint, Phase: m.phase}
	}
	return m.session.Current.Hint, nil
}

// Override lets the player claim an answer marked wrong was right. Each
// call adds the question's points to the score; the recorded verdict
// stays false.
func (m *Machine) Override(ctx context.Context) (Snapshot, error) {
	if reason := m.canOverride(); reason != "" {
		return m.Snapshot(), &ErrInvalidTransition{Command: CmdOverride, Phase: m.phase, Reason: reason}
	}

	s := m.session
	before := s.Score.Total()
	points := s.Score.Award(s.Difficulty) - before
	s.Overridden = true
	s.Overrides++

	m.log.Info("verdict overridden",
		"topic", s.Topic, "difficulty", s.Difficulty,
		"points", points, "score", s.Score.Total())
	m.recordAnswer(ctx, store.AnswerOverride, false, points)

	return m.Snapshot(), nil
}

// canOverride returns why an override is not allowed, or "" if it is.
func (m *Machine) canOverride() string {
	s := m.session
	switch {
	case m.phase != PhaseAnswered:
		return "no answer has been checked"
	case s.AnswerCorrect != nil && *s.AnswerCorrect:
		return "the answer was already marked correct"
	}
	return ""
}

func (m *Machine) ensureStarted(ctx context.Context) {
	if m.started {
		return
	}
	m.started = true
	m.session.StartTime = m.now()
	m.log.Info("session started")
	if m.events == nil {
		return
	}
	err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: m.session.ID,
		Action:    store.SessionStart,
	})
	if err != nil {
		m.log.Warn("failed to record session start", "error", err)
	}
}

func (m *Machine) recordAnswer(ctx context.Context, kind string, correct bool, points int) {
	if m.events == nil {
		return
	}
	s := m.session
	err := m.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     s.ID,
		Kind:          kind,
		Topic:         s.Topic.String(),
		Difficulty:    s.Difficulty.String(),
		Question:      s.Current.Question,
		CorrectAnswer: s.Current.Answer,
		UserAnswer:    s.LastUserAnswer,
		Correct:       correct,
		Points:        points,
	})
	if err != nil {
		m.log.Warn("failed to record answer", "kind", kind, "error", err)
	}
}
