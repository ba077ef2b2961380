package problemgen

import (
	"context"

	"github.com/phoebegrace/NoFilterNaevis/internal/logger"
	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// Pipeline turns a Source into unique, parsed questions for one session.
type Pipeline struct {
	source Source
	config Config
	log    *logger.Logger
}

// NewPipeline creates a Pipeline. A nil log discards output.
func NewPipeline(source Source, cfg Config, log *logger.Logger) *Pipeline {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{source: source, config: cfg, log: log}
}

// MaxAttempts returns the retry bound in effect.
func (p *Pipeline) MaxAttempts() int {
	return p.config.MaxAttempts
}

// GenerateUnique calls the source until it yields a question the session
// has not seen, installs it with state.StartQuestion and returns it.
//
// Empty, rejected and duplicate questions are retried up to MaxAttempts
// times in total, then *ErrGenerationExhausted is returned. A source
// error aborts immediately as *ErrGeneration. On any error state is left
// untouched.
func (p *Pipeline) GenerateUnique(ctx context.Context, topic quiz.Topic, difficulty quiz.Difficulty, state SessionState) (quiz.QuestionRecord, error) {
	exhausted := &ErrGenerationExhausted{}

	for attempt := 1; attempt <= p.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return quiz.QuestionRecord{}, &ErrGeneration{Attempt: attempt, Err: err}
		}

		req := Request{
			Topic:      topic,
			Difficulty: difficulty,
			Avoid:      state.RecentQuestions(p.config.MaxPriorQuestions),
		}
		raw, err := p.source.Generate(ctx, req)
		if err != nil {
			return quiz.QuestionRecord{}, &ErrGeneration{Attempt: attempt, Err: err}
		}
		exhausted.Attempts = attempt

		res := quiz.Parse(raw)
		rec := res.Record
		if res.Degraded() {
			p.log.Warn("question response did not follow the expected format",
				"topic", topic, "difficulty", difficulty, "attempt", attempt)
		}

		if rec.Question == "" {
			exhausted.Empty++
			p.log.Debug("empty question, retrying", "attempt", attempt)
			continue
		}

		if verr := p.validate(rec, res.Degraded(), req); verr != nil {
			if !verr.Retryable {
				return quiz.QuestionRecord{}, &ErrGeneration{Attempt: attempt, Err: verr}
			}
			exhausted.Rejected++
			p.log.Debug("question rejected, retrying",
				"attempt", attempt, "validator", verr.Validator, "reason", verr.Message)
			continue
		}

		if state.HasSeen(rec.Question) {
			exhausted.Duplicates++
			p.log.Debug("duplicate question, retrying", "attempt", attempt)
			continue
		}

		state.StartQuestion(rec, topic, difficulty, res.Degraded())
		p.log.Info("question generated",
			"topic", topic, "difficulty", difficulty, "attempts", attempt, "degraded", res.Degraded())
		return rec, nil
	}

	p.log.Warn("question generation exhausted",
		"topic", topic, "difficulty", difficulty,
		"attempts", exhausted.Attempts, "duplicates", exhausted.Duplicates,
		"empty", exhausted.Empty, "rejected", exhausted.Rejected)
	return quiz.QuestionRecord{}, exhausted
}

func (p *Pipeline) validate(rec quiz.QuestionRecord, degraded bool, req Request) *ValidationError {
	for _, v := range p.config.Validators {
		if verr := v.Validate(rec, degraded, req); verr != nil {
			return verr
		}
	}
	return nil
}
