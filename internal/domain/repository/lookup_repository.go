package repository

import "context"

// LookupRepository serves the fixed city list and treatment vocabulary
type LookupRepository interface {
	Cities(ctx context.Context) []string
	TreatmentNames(ctx context.Context) []string
}
