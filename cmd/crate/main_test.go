package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crate/internal/adapters/index"
	"go.trai.ch/crate/internal/adapters/telemetry"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.trai.ch/crate/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func testComponents(t *testing.T) *app.Components {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	assembler := mocks.NewMockAssembler(ctrl)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	idx := index.NewStore()
	res := resolver.New(catalog, idx, log, telemetry.Noop{})
	application := app.New(catalog, idx, res, assembler, log, telemetry.Noop{}, domain.DefaultConfig())

	return &app.Components{App: application, Logger: log}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components := testComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	})
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	components := testComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"frobnicate"}, stderr, func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	})
	assert.Equal(t, 1, exitCode)
}
