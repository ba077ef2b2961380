package llm

import "context"

// Purpose labels recorded with every logged call.
const (
	PurposeQuestionGen = "question-gen"
	PurposeCommentary  = "commentary"

	purposeUnknown = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx so the logging middleware and the offline
// provider know what a call is for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return purposeUnknown
}
