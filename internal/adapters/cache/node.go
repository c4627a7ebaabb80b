package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/six/internal/adapters/builder"
	"go.trai.ch/six/internal/adapters/logger"
	"go.trai.ch/six/internal/adapters/source"
	"go.trai.ch/six/internal/core/ports"
)

// NodeID is the unique identifier for the model cache Graft node.
const NodeID graft.ID = "adapter.model_cache"

func init() {
	graft.Register(graft.Node[ports.ModelCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			source.NodeID,
			builder.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ModelCache, error) {
			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[ports.BuilderFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(reader, factory, log), nil
		},
	})
}
