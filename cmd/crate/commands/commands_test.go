package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/cmd/crate/commands"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/build"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.trai.ch/crate/internal/engine/matrix"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	matrixFunc func(ctx context.Context, collectionID string) (*app.CollectionMatrix, error)
	bundleFunc func(ctx context.Context, collectionID string, gameVersion domain.GameVersion) (*domain.Bundle, error)
}

func (m *mockApp) Matrix(ctx context.Context, collectionID string) (*app.CollectionMatrix, error) {
	if m.matrixFunc != nil {
		return m.matrixFunc(ctx, collectionID)
	}
	return nil, errors.New("unexpected Matrix call")
}

func (m *mockApp) Bundle(ctx context.Context, collectionID string, gameVersion domain.GameVersion) (*domain.Bundle, error) {
	if m.bundleFunc != nil {
		return m.bundleFunc(ctx, collectionID, gameVersion)
	}
	return nil, errors.New("unexpected Bundle call")
}

func (m *mockApp) Config() *domain.Config {
	return domain.DefaultConfig()
}

func newCLI(t *testing.T, a commands.Application) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	cli := commands.New(a, log)
	out := &bytes.Buffer{}
	cli.SetOutput(out, out)
	return cli, out
}

func TestCommands_Matrix(t *testing.T) {
	sodium := &domain.Project{ID: "AANobbMI", Slug: "sodium", Title: "Sodium", GameVersions: []string{"1.20.1"}}
	entries := []matrix.Entry{{Key: 0, Project: sodium}}

	var captured string
	mock := &mockApp{
		matrixFunc: func(_ context.Context, id string) (*app.CollectionMatrix, error) {
			captured = id
			return &app.CollectionMatrix{
				Collection: &domain.Collection{ID: "abc123", Name: "winter-pack"},
				Entries:    entries,
				Groups:     matrix.Build(entries),
			}, nil
		},
	}

	cli, out := newCLI(t, mock)
	cli.SetArgs([]string{"matrix", "abc123"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "abc123", captured)
	assert.Contains(t, out.String(), "winter-pack")
	assert.Contains(t, out.String(), "1.20.1")
	assert.Contains(t, out.String(), "sodium")
}

func TestCommands_Matrix_Render(t *testing.T) {
	sodium := &domain.Project{ID: "AANobbMI", Slug: "sodium", Title: "Sodium", GameVersions: []string{"1.20.1", "1.20.4"}}
	lithium := &domain.Project{ID: "gvQqBUqZ", Slug: "lithium", Title: "Lithium", GameVersions: []string{"1.20.1"}}
	entries := []matrix.Entry{{Key: 0, Project: sodium}, {Key: 1, Project: lithium}}

	mock := &mockApp{
		matrixFunc: func(context.Context, string) (*app.CollectionMatrix, error) {
			return &app.CollectionMatrix{
				Collection: &domain.Collection{ID: "abc123", Name: "winter-pack"},
				Entries:    entries,
				Groups:     matrix.Build(entries),
			}, nil
		},
	}

	cli, out := newCLI(t, mock)
	cli.SetArgs([]string{"matrix", "abc123"})
	require.NoError(t, cli.Execute(context.Background()))

	g := goldie.New(t)
	g.Assert(t, "matrix_render", out.Bytes())
}

func TestCommands_Matrix_RequiresCollectionID(t *testing.T) {
	cli, _ := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"matrix"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Bundle(t *testing.T) {
	var gotVersion domain.GameVersion
	mock := &mockApp{
		bundleFunc: func(_ context.Context, id string, gv domain.GameVersion) (*domain.Bundle, error) {
			assert.Equal(t, "abc123", id)
			gotVersion = gv
			return &domain.Bundle{Name: "winter-pack-1.zip", Path: "bundles/winter-pack-1.zip"}, nil
		},
	}

	cli, out := newCLI(t, mock)
	cli.SetArgs([]string{"bundle", "abc123", "1.20.1"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, domain.GameVersion{Major: 1, Minor: 20, Patch: 1}, gotVersion)
	assert.Contains(t, out.String(), "bundles/winter-pack-1.zip")
}

func TestCommands_Bundle_InvalidVersion(t *testing.T) {
	cli, _ := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"bundle", "abc123", "fabric"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrVersionNoMajor)
}

func TestCommands_Bundle_PropagatesError(t *testing.T) {
	mock := &mockApp{
		bundleFunc: func(context.Context, string, domain.GameVersion) (*domain.Bundle, error) {
			return nil, domain.ErrVersionNotAvailable
		},
	}

	cli, _ := newCLI(t, mock)
	cli.SetArgs([]string{"bundle", "abc123", "1.7.10"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrVersionNotAvailable)
}

func TestCommands_Version(t *testing.T) {
	cli, out := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, strings.HasPrefix(out.String(), "crate version "+build.Version))
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli, _ := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"frobnicate"})

	require.Error(t, cli.Execute(context.Background()))
}
