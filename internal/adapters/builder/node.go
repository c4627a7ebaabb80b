package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/six/internal/core/ports"
)

// NodeID is the unique identifier for the builder factory Graft node.
const NodeID graft.ID = "adapter.builder_factory"

func init() {
	graft.Register(graft.Node[ports.BuilderFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuilderFactory, error) {
			return ports.BuilderFactoryFunc(func() ports.ModelBuilder {
				return New()
			}), nil
		},
	})
}
