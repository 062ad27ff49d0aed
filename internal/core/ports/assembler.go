package ports

import (
	"context"

	"go.trai.ch/crate/internal/core/domain"
)

// Assembler streams resolved files into a compressed bundle archive on
// durable storage and schedules its deferred removal.
//
//go:generate mockgen -source=assembler.go -destination=mocks/mock_assembler.go -package=mocks
type Assembler interface {
	// Assemble writes one archive entry per file, in the order given, and
	// returns the finished bundle. On failure or cancellation no partial
	// archive is left behind.
	Assemble(ctx context.Context, collectionName string, files []domain.BundleFile) (*domain.Bundle, error)
}
