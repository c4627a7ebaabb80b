package query

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/six/internal/core/ports"
)

// NodeID is the unique identifier for the predicate compiler Graft node.
const NodeID graft.ID = "adapter.predicate_compiler"

func init() {
	graft.Register(graft.Node[ports.PredicateCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PredicateCompiler, error) {
			return New(), nil
		},
	})
}
