package problemgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

// ArithmeticValidator recomputes the answer of bare binary arithmetic
// questions ("What is 7 x 8?") and rejects records whose numeric answer is
// wrong. Word-form answers ("forty-two") and anything else pass through.
type ArithmeticValidator struct{}

func (v *ArithmeticValidator) Name() string { return "arithmetic" }

// arithQuestionRe only matches a question that is nothing but one binary
// operation, so word problems and chained expressions are never judged.
var arithQuestionRe = regexp.MustCompile(
	`(?i)^(?:what\s+is|what's|compute|calculate|evaluate|solve)?:?\s*` +
		`(-?\d+(?:\.\d+)?)\s*([+\-*x×/÷])\s*(-?\d+(?:\.\d+)?)\s*(?:=\s*)?\??$`)

func (v *ArithmeticValidator) Validate(rec quiz.QuestionRecord, degraded bool, _ Request) *ValidationError {
	if degraded || !quiz.IsNumeric(rec.Answer) {
		return nil
	}
	computed, err := computeArithmetic(rec.Question)
	if err != nil {
		return nil
	}
	if !quiz.Verify(rec.Answer, computed) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but the answer says %q", computed, rec.Answer),
			Retryable: true,
		}
	}
	return nil
}

// computeArithmetic evaluates a bare binary arithmetic question.
func computeArithmetic(question string) (string, error) {
	m := arithQuestionRe.FindStringSubmatch(strings.TrimSpace(question))
	if m == nil {
		return "", fmt.Errorf("not computable")
	}

	a, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", err
	}
	b, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return "", err
	}

	var result float64
	switch strings.ToLower(m[2]) {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*", "x", "×":
		result = a * b
	case "/", "÷":
		if b == 0 {
			return "", fmt.Errorf("division by zero")
		}
		result = a / b
		// Inexact quotients depend on how the answer was rounded.
		if result != math.Trunc(result) {
			return "", fmt.Errorf("inexact division")
		}
	default:
		return "", fmt.Errorf("unsupported operator: %s", m[2])
	}

	return strconv.FormatFloat(result, 'f', -1, 64), nil
}
