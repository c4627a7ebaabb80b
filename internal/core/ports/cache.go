package ports

import (
	"context"

	"go.trai.ch/six/internal/core/domain"
)

// ModelCache produces a valid model for a source path as cheaply as
// correctness allows: it reuses an on-disk snapshot when fresh and rebuilds
// from source otherwise.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ModelCache interface {
	// ObtainModel returns the model for sourcePath, rebuilding when the cache
	// is absent, stale, corrupt, or force is set. The caller cannot tell reuse
	// from rebuild except through side effects.
	ObtainModel(ctx context.Context, sourcePath string, force bool) (*domain.Model, error)
}
