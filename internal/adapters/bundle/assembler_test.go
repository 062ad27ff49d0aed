package bundle

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := NewAssembler(t.TempDir(), time.Minute, log)
	a.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return a
}

func someFiles() []domain.BundleFile {
	return []domain.BundleFile{
		{Name: "sodium.jar", Data: []byte("sodium-bytes")},
		{Name: "lithium.jar", Data: []byte("lithium-bytes")},
	}
}

func TestAssemble_WritesEntriesInOrder(t *testing.T) {
	a := newTestAssembler(t)
	a.schedule = func(time.Duration, func()) {}

	bundle, err := a.Assemble(context.Background(), "winter-pack", someFiles())
	require.NoError(t, err)

	assert.Equal(t, "winter-pack-1700000000000.zip", bundle.Name)
	assert.Equal(t, bundle.CreatedAt.Add(time.Minute), bundle.ExpiresAt)

	zr, err := zip.OpenReader(bundle.Path)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 2)
	assert.Equal(t, "sodium.jar", zr.File[0].Name)
	assert.Equal(t, "lithium.jar", zr.File[1].Name)
	assert.Equal(t, uint16(zip.Deflate), zr.File[0].Method)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("sodium-bytes"), data)
}

func TestAssemble_EmptyFileListStillProducesArchive(t *testing.T) {
	a := newTestAssembler(t)
	a.schedule = func(time.Duration, func()) {}

	bundle, err := a.Assemble(context.Background(), "empty", nil)
	require.NoError(t, err)

	zr, err := zip.OpenReader(bundle.Path)
	require.NoError(t, err)
	defer zr.Close()
	assert.Empty(t, zr.File)
}

func TestAssemble_SchedulesRemovalAfterRetention(t *testing.T) {
	a := newTestAssembler(t)

	var gotDelay time.Duration
	var cleanup func()
	a.schedule = func(d time.Duration, fn func()) {
		gotDelay = d
		cleanup = fn
	}

	bundle, err := a.Assemble(context.Background(), "winter-pack", someFiles())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, gotDelay)

	_, err = os.Stat(bundle.Path)
	require.NoError(t, err)

	cleanup()
	_, err = os.Stat(bundle.Path)
	assert.True(t, os.IsNotExist(err))

	// Idempotent when the file is already gone.
	cleanup()
}

func TestAssemble_CancelledContextRemovesPartial(t *testing.T) {
	a := newTestAssembler(t)
	a.schedule = func(time.Duration, func()) {}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Assemble(ctx, "winter-pack", someFiles())
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(a.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAssemble_CreatesBundleDir(t *testing.T) {
	a := newTestAssembler(t)
	a.schedule = func(time.Duration, func()) {}
	a.dir = filepath.Join(a.dir, "nested", "bundles")

	bundle, err := a.Assemble(context.Background(), "winter-pack", someFiles())
	require.NoError(t, err)
	assert.Equal(t, a.dir, filepath.Dir(bundle.Path))
}

func TestNewAssembler_DefaultRetention(t *testing.T) {
	a := NewAssembler(t.TempDir(), 0, nil)
	assert.Equal(t, domain.DefaultRetention, a.retention)
}
