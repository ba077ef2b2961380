package problemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are Naevis, the host of a quiz game called "Naevis Asks".

Rules:
- Create exactly one quiz question for the given topic and difficulty.
- The question must have a single, short, unambiguous answer.
- Include a hint that helps without giving the answer away.
- Numeric answers are plain numbers without units or words.
- Do not repeat any question from the "already asked" list.`

const textFormatRule = `Format the response as 'Question: <question> Hint: <hint> Answer: <answer>' and nothing else.`

// buildSystemPrompt appends the output format rule for plain-text mode.
func buildSystemPrompt(cfg Config) string {
	if cfg.Structured {
		return systemPrompt
	}
	return systemPrompt + "\n- " + textFormatRule
}

// buildUserMessage constructs the user message for one generation request.
func buildUserMessage(req Request, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create one %s quiz question about %s.\n", req.Difficulty, req.Topic)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(req.Avoid, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, keeping the most
// recent max. Returns "None" if there are none.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
