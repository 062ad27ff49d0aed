package bundle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/adapters/config"
	"go.trai.ch/crate/internal/adapters/logger"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

// NodeID is the unique identifier for the bundle assembler Graft node.
const NodeID graft.ID = "adapter.assembler"

func init() {
	graft.Register(graft.Node[ports.Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Assembler, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewAssembler(cfg.BundleDir, cfg.Retention, log), nil
		},
	})
}
