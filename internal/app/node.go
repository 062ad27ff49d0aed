package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/adapters/bundle"
	"go.trai.ch/crate/internal/adapters/config"
	"go.trai.ch/crate/internal/adapters/index"
	"go.trai.ch/crate/internal/adapters/logger"
	"go.trai.ch/crate/internal/adapters/modrinth"
	"go.trai.ch/crate/internal/adapters/telemetry"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/engine/resolver"
)

// NodeID is the unique identifier for the main application Graft node.
const NodeID graft.ID = "app.main"

// ComponentsNodeID is the unique identifier for the components Graft node.
const ComponentsNodeID graft.ID = "app.components"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			modrinth.NodeID,
			index.NodeID,
			resolver.NodeID,
			bundle.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			catalog, err := graft.Dep[ports.Catalog](ctx)
			if err != nil {
				return nil, err
			}

			idx, err := graft.Dep[ports.ProjectIndex](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			assembler, err := graft.Dep[ports.Assembler](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(catalog, idx, res, assembler, log, tracer, cfg), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
