package repository

import "context"

// RegistrySource lists the top-level location identifiers (slug-like
// directory names) of the scene store. It is read-only: the registry never
// writes to storage.
type RegistrySource interface {
	ListLocationSlugs(ctx context.Context) ([]string, error)
}
