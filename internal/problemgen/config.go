package problemgen

// DefaultMaxAttempts bounds source calls per GenerateUnique.
const DefaultMaxAttempts = 5

// Config controls question generation.
type Config struct {
	// MaxAttempts is the number of source calls before giving up with
	// ErrGenerationExhausted.
	MaxAttempts int `yaml:"max_attempts"`

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64 `yaml:"temperature"`

	// MaxPriorQuestions caps how many already-asked questions go into the
	// prompt.
	MaxPriorQuestions int `yaml:"max_prior_questions"`

	// Structured requests JSON output validated against QuestionSchema
	// instead of the plain marker layout.
	Structured bool `yaml:"structured"`

	// Validators run in order on every parsed record; the first failure
	// rejects it.
	Validators []Validator `yaml:"-"`
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       DefaultMaxAttempts,
		MaxTokens:         300,
		Temperature:       0.9,
		MaxPriorQuestions: 8,
		Validators: []Validator{
			&StructuralValidator{},
			&ArithmeticValidator{},
		},
	}
}
