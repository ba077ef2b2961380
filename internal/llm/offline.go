package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

type offlineQuestion struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
	Answer   string `json:"answer"`
}

// offlineQuestions back the "mock" provider so the game is playable
// without an API key.
var offlineQuestions = []offlineQuestion{
	{"What is 7 multiplied by 8?", "Think 7 x 7, plus one more 7.", "56"},
	{"What is the capital of the Philippines?", "It sits on the eastern shore of a bay with the same name.", "Manila"},
	{"Who is the national hero of the Philippines?", "He wrote Noli Me Tangere.", "Jose Rizal"},
	{"Which K-pop group released the song Dynamite?", "Seven members, also known as Bangtan.", "BTS"},
	{"What gas do plants absorb from the air for photosynthesis?", "You breathe it out.", "Carbon dioxide"},
	{"What is the square root of 144?", "It is a dozen.", "12"},
	{"What has keys but cannot open locks?", "You might be typing on one.", "A keyboard"},
	{"What is the largest planet in the solar system?", "Named after the king of the Roman gods.", "Jupiter"},
	{"In what year did the EDSA People Power Revolution happen?", "Mid-1980s.", "1986"},
	{"What is the national language of South Korea?", "Its alphabet is called Hangul.", "Korean"},
}

var offlineComments = []string{
	"Ay, grabe ka talaga. Naevis is taking notes, bestie.",
	"Hmm, okay lang yan. Kahit ako nagulat sa sagot mo.",
	"Wow, may utak pala. Charot!",
	"Sige, next na tayo bago pa ako ma-stress.",
}

// NewOfflineProvider returns a MockProvider that cycles through a small
// built-in question bank and canned commentary.
func NewOfflineProvider() *MockProvider {
	m := NewMockProvider()
	var questions, comments int
	m.Fallback = func(ctx context.Context, req Request) MockResponse {
		if PurposeFrom(ctx) == PurposeCommentary {
			c := offlineComments[comments%len(offlineComments)]
			comments++
			return TextResponse(c)
		}

		q := offlineQuestions[questions%len(offlineQuestions)]
		if lap := questions / len(offlineQuestions); lap > 0 {
			q.Question = fmt.Sprintf("%s (round %d)", q.Question, lap+1)
		}
		questions++

		if req.Schema != nil {
			b, _ := json.Marshal(q)
			return MockResponse{Content: b}
		}
		return TextResponse(fmt.Sprintf("Question: %s\nHint: %s\nAnswer: %s", q.Question, q.Hint, q.Answer))
	}
	return m
}
