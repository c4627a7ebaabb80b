package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/six/internal/adapters/cache"
	"go.trai.ch/six/internal/adapters/config"
	"go.trai.ch/six/internal/adapters/logger"
	"go.trai.ch/six/internal/adapters/query"
	"go.trai.ch/six/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings ports.SettingsLoader
	Cache    ports.ModelCache
	Compiler ports.PredicateCompiler
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			query.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			settings, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			modelCache, err := graft.Dep[ports.ModelCache](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.PredicateCompiler](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings, modelCache, compiler, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			cache.NodeID,
			query.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}
	modelCache, err := graft.Dep[ports.ModelCache](ctx)
	if err != nil {
		return nil, err
	}
	compiler, err := graft.Dep[ports.PredicateCompiler](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:      a,
		Logger:   log,
		Settings: settings,
		Cache:    modelCache,
		Compiler: compiler,
	}, nil
}
