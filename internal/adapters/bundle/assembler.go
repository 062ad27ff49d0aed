// Package bundle implements archive assembly and deferred cleanup for
// bundle artifacts.
package bundle

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// Assembler implements ports.Assembler, writing zip archives into a single
// bundle directory. Cleanup runs on a detached timer so an archive outlives
// the request that created it, but never the retention window.
type Assembler struct {
	dir       string
	retention time.Duration
	logger    ports.Logger

	// now and schedule are injection points for tests.
	now      func() time.Time
	schedule func(d time.Duration, fn func())
}

// NewAssembler creates an Assembler writing into dir with the given
// retention window. A non-positive retention falls back to the default.
func NewAssembler(dir string, retention time.Duration, logger ports.Logger) *Assembler {
	if retention <= 0 {
		retention = domain.DefaultRetention
	}
	return &Assembler{
		dir:       dir,
		retention: retention,
		logger:    logger,
		now:       time.Now,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Assemble writes one Deflate entry per file, in the order given, closes the
// archive and schedules its removal after the retention window. On any
// failure, including context cancellation, the partial archive is removed
// and no bundle is returned.
func (a *Assembler) Assemble(ctx context.Context, collectionName string, files []domain.BundleFile) (*domain.Bundle, error) {
	if err := os.MkdirAll(a.dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrBundleCreateFailed.Error())
	}

	createdAt := a.now()
	name := domain.BundleFilename(collectionName, createdAt)
	path := filepath.Join(a.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrBundleCreateFailed.Error()),
			"path", path,
		)
	}

	if err := a.writeEntries(ctx, out, files); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return nil, err
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(path)
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrBundleCloseFailed.Error()),
			"path", path,
		)
	}

	bundle := &domain.Bundle{
		Name:      name,
		Path:      path,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(a.retention),
	}

	// Cleanup is keyed by path and detached from the request context: the
	// requester may disconnect long before the window elapses.
	a.schedule(a.retention, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			a.logger.Warn("failed to remove expired bundle " + path)
			return
		}
		a.logger.Debug("removed expired bundle " + name)
	})

	return bundle, nil
}

func (a *Assembler) writeEntries(ctx context.Context, out *os.File, files []domain.BundleFile) error {
	zw := zip.NewWriter(out)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   f.Name,
			Method: zip.Deflate,
		})
		if err != nil {
			return zerr.With(
				zerr.Wrap(err, domain.ErrBundleWriteFailed.Error()),
				"entry", f.Name,
			)
		}
		if _, err := w.Write(f.Data); err != nil {
			return zerr.With(
				zerr.Wrap(err, domain.ErrBundleWriteFailed.Error()),
				"entry", f.Name,
			)
		}
	}

	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrBundleCloseFailed.Error())
	}
	return nil
}
