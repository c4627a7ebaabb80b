package ports

import "go.trai.ch/six/internal/core/domain"

// ModelBuilder accumulates blocks into a model. The protocol has three phases:
// feed every block with ParseBlock, complete with FinishParsing, then release
// with Finalise. Finalise must be called on every exit path, including after a
// ParseBlock or FinishParsing error, and is safe to call exactly once.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ModelBuilder interface {
	// ParseBlock consumes one block.
	ParseBlock(b domain.Block) error

	// FinishParsing resolves forward references and returns the finished model.
	FinishParsing() (*domain.Model, error)

	// Finalise releases builder state.
	Finalise()
}

// BuilderFactory produces a fresh builder per rebuild.
type BuilderFactory interface {
	NewBuilder() ModelBuilder
}

// BuilderFactoryFunc adapts a function to BuilderFactory.
type BuilderFactoryFunc func() ModelBuilder

// NewBuilder calls f.
func (f BuilderFactoryFunc) NewBuilder() ModelBuilder { return f() }
