package llm

import "context"

// Purpose labels why a request was made, for logs.
type Purpose string

const (
	PurposeUnknown    Purpose = "unknown"
	PurposeConceptGen Purpose = "concept-gen"
)

type purposeKey struct{}

// WithPurpose tags ctx with a request purpose.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the purpose tag on ctx.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
