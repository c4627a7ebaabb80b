package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/six/internal/core/ports"
)

// NodeID is the unique identifier for the source reader Graft node.
const NodeID graft.ID = "adapter.source_reader"

func init() {
	graft.Register(graft.Node[ports.SourceReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceReader, error) {
			return &Reader{}, nil
		},
	})
}
