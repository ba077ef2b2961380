package quiz

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// NumericTolerance absorbs floating point representation noise when
	// both answers are numbers. It is not a grading margin.
	NumericTolerance = 1e-6

	// SimilarityThreshold is the ratio a text answer must exceed to count.
	SimilarityThreshold = 0.8
)

// Verify reports whether userAnswer matches referenceAnswer.
//
// When both strings parse as numbers they must be within NumericTolerance.
// Otherwise both are lowercased and trimmed and their Similarity must exceed
// SimilarityThreshold. Two empty answers have a ratio of 1.0 and match.
func Verify(userAnswer, referenceAnswer string) bool {
	u, uErr := parseNumber(userAnswer)
	r, rErr := parseNumber(referenceAnswer)
	if uErr == nil && rErr == nil {
		return math.Abs(u-r) < NumericTolerance
	}

	return Similarity(normalize(userAnswer), normalize(referenceAnswer)) > SimilarityThreshold
}

// Similarity returns the matching-blocks ratio 2*M/T of a and b, where M is
// the number of runes in matching blocks and T the total rune count.
// It returns 1.0 when both strings are empty.
func Similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

var errHexFloat = errors.New("hex float")

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsNumeric reports whether s is an answer Verify compares numerically.
func IsNumeric(s string) bool {
	_, err := parseNumber(s)
	return err == nil
}

// parseNumber parses s as a decimal float64 after trimming whitespace. Out
// of range values are accepted as +/-Inf. Hex floats ("0x1p4") are not
// numbers here and fall through to the text comparison.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if digits := strings.TrimLeft(s, "+-"); len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, errHexFloat
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}
