package quiz

import (
	"fmt"
	"strings"
)

// Difficulty is the difficulty level requested from the generator.
// It also determines how many points a correct answer is worth.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a case-insensitive name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", s)
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	_, ok := pointValues[d]
	return ok
}

func (d Difficulty) String() string {
	return string(d)
}

// Topic is a question category, e.g. "Earth Science".
type Topic string

func (t Topic) String() string {
	return string(t)
}

// DefaultTopics is the built-in topic list. The config file may replace it.
var DefaultTopics = []Topic{
	"Trivia",
	"Math",
	"General Knowledge",
	"Earth Science",
	"K-POP",
	"Philippine History",
	"Riddles",
	"Philippine Knowledge",
	"K-Drama",
	"Philippine Entertainment",
}

// ParseTopic finds s in topics, ignoring case and surrounding whitespace.
// The returned Topic uses the spelling from the list.
func ParseTopic(s string, topics []Topic) (Topic, error) {
	s = strings.TrimSpace(s)
	for _, t := range topics {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q", s)
}

// Sentinels used when a generated question cannot be split into its parts.
const (
	NoHint        = "No hint available"
	UnknownAnswer = "Unknown"
)

// QuestionRecord is a single generated question split into its parts.
type QuestionRecord struct {
	Question string
	Hint     string
	Answer   string
}
