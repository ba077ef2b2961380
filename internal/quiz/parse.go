package quiz

import (
	"fmt"
	"strings"
)

// Markers the generator is asked to embed in its output, in this order.
const (
	questionMarker = "Question:"
	hintMarker     = "Hint:"
	answerMarker   = "Answer:"
)

// ParseOutcome tags how a ParseResult was produced.
type ParseOutcome int

const (
	// Parsed means all three fields were extracted from their markers.
	Parsed ParseOutcome = iota

	// Degraded means a marker was missing and the sentinel fallback was used.
	Degraded
)

func (o ParseOutcome) String() string {
	if o == Degraded {
		return "degraded"
	}
	return "parsed"
}

// ParseResult is the outcome of Parse.
type ParseResult struct {
	Record  QuestionRecord
	Outcome ParseOutcome
}

// Degraded reports whether the fallback record was used.
func (r ParseResult) Degraded() bool {
	return r.Outcome == Degraded
}

// Parse extracts question, hint, and answer from generator output of the form
// "Question: <q> Hint: <h> Answer: <a>". It never fails: when a marker is
// missing, the whole text becomes the question and hint and answer get the
// NoHint and UnknownAnswer sentinels.
//
// Only the segment between a marker and the next occurrence of the same
// marker is kept, so a stray second "Answer:" truncates the answer.
func Parse(raw string) ParseResult {
	preAnswer, answer, ok := splitMarker(raw, answerMarker)
	if !ok {
		return degraded(raw)
	}
	preHint, hint, ok := splitMarker(preAnswer, hintMarker)
	if !ok {
		return degraded(raw)
	}

	question := strings.ReplaceAll(preHint, questionMarker, "")

	return ParseResult{
		Record: QuestionRecord{
			Question: strings.TrimSpace(question),
			Hint:     strings.TrimSpace(hint),
			Answer:   strings.TrimSpace(answer),
		},
		Outcome: Parsed,
	}
}

// splitMarker returns the text before the first marker and the text between
// the first and second markers.
func splitMarker(s, marker string) (before, after string, ok bool) {
	parts := strings.Split(s, marker)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func degraded(raw string) ParseResult {
	return ParseResult{
		Record: QuestionRecord{
			Question: strings.TrimSpace(raw),
			Hint:     NoHint,
			Answer:   UnknownAnswer,
		},
		Outcome: Degraded,
	}
}

// FormatRecord renders rec in the marker layout understood by Parse.
func FormatRecord(rec QuestionRecord) string {
	return fmt.Sprintf("%s %s %s %s %s %s",
		questionMarker, rec.Question,
		hintMarker, rec.Hint,
		answerMarker, rec.Answer)
}
