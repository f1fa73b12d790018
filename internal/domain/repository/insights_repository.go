package repository

import "context"

// InsightsRepository calls the external text-understanding service. It
// returns the raw model text; schema validation happens in the use case.
type InsightsRepository interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
