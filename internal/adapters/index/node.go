package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/core/ports"
)

// NodeID is the unique identifier for the project index Graft node.
const NodeID graft.ID = "adapter.project_index"

func init() {
	graft.Register(graft.Node[ports.ProjectIndex]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectIndex, error) {
			return NewStore(), nil
		},
	})
}
