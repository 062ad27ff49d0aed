package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/adapters/index"
	"go.trai.ch/crate/internal/adapters/logger"
	"go.trai.ch/crate/internal/adapters/modrinth"
	"go.trai.ch/crate/internal/adapters/telemetry"
	"go.trai.ch/crate/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			modrinth.NodeID,
			index.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			catalog, err := graft.Dep[ports.Catalog](ctx)
			if err != nil {
				return nil, err
			}

			idx, err := graft.Dep[ports.ProjectIndex](ctx)
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

			return New(catalog, idx, log, tracer), nil
		},
	})
}
