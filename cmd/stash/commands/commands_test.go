package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/cmd/stash/commands"
	"go.trai.ch/stash/internal/adapters/hashing"
	"go.trai.ch/stash/internal/app"
	"go.trai.ch/stash/internal/build"
	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli    *commands.CLI
	loader *mocks.MockManifestLoader
	store  *mocks.MockIdentityStore
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockManifestLoader(ctrl)
	store := mocks.NewMockIdentityStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f := &cliFixture{
		cli:    commands.New(app.New(loader, hashing.NewSHA256(), store, logger)),
		loader: loader,
		store:  store,
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	f.cli.SetOutput(f.out, f.errOut)
	return f
}

func testInput(t *testing.T) *domain.BuildInput {
	t.Helper()

	ref, err := domain.ParseComponentRef("zlib/1.2.11")
	require.NoError(t, err)

	settings := domain.NewSettingsValues()
	settings.Set("os", "Linux")

	return &domain.BuildInput{
		Settings: settings,
		Options:  domain.NewOptionsValues(),
		Requires: []domain.ComponentRef{ref},
	}
}

func TestComputeCmd(t *testing.T) {
	f := newCLIFixture(t)
	f.loader.EXPECT().Load("stash.yaml").Return(testInput(t), nil)

	f.cli.SetArgs([]string{"compute"})
	require.NoError(t, f.cli.Execute(context.Background()))

	line := strings.TrimSuffix(f.out.String(), "\n")
	fields := strings.Fields(line)
	require.Len(t, fields, 2)
	assert.Len(t, fields[0], 64)
	assert.Equal(t, "stash.yaml", fields[1])
}

func TestComputeCmd_MultipleManifests(t *testing.T) {
	f := newCLIFixture(t)
	f.loader.EXPECT().Load("a/stash.yaml").Return(testInput(t), nil)
	f.loader.EXPECT().Load("b/stash.yaml").Return(testInput(t), nil)

	f.cli.SetArgs([]string{"compute", "a/stash.yaml", "b/stash.yaml"})
	require.NoError(t, f.cli.Execute(context.Background()))

	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a/stash.yaml")
	assert.Contains(t, lines[1], "b/stash.yaml")
}

func TestComputeCmd_Write(t *testing.T) {
	f := newCLIFixture(t)
	f.loader.EXPECT().Load("stash.yaml").Return(testInput(t), nil)
	f.store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(".stash/abc/stashinfo.txt", nil)

	f.cli.SetArgs([]string{"compute", "--write"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestComputeCmd_LoadError(t *testing.T) {
	f := newCLIFixture(t)
	wantErr := zerr.New("failed to read build manifest")
	f.loader.EXPECT().Load("nope.yaml").Return(nil, wantErr)

	f.cli.SetArgs([]string{"compute", "nope.yaml"})
	err := f.cli.Execute(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestShowCmd(t *testing.T) {
	f := newCLIFixture(t)
	identity := testInput(t).Identity()
	f.store.EXPECT().Load("stashinfo.txt").Return(identity, nil)

	f.cli.SetArgs([]string{"show", "stashinfo.txt"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Contains(t, f.out.String(), identity.PackageID(hashing.NewSHA256()))
	assert.Contains(t, f.out.String(), "[full_requires]")
}

func TestShowCmd_IDOnly(t *testing.T) {
	f := newCLIFixture(t)
	identity := testInput(t).Identity()
	f.store.EXPECT().Load("stashinfo.txt").Return(identity, nil)

	f.cli.SetArgs([]string{"show", "--id", "stashinfo.txt"})
	require.NoError(t, f.cli.Execute(context.Background()))

	want := identity.PackageID(hashing.NewSHA256()) + "\n"
	assert.Equal(t, want, f.out.String())
}

func TestShowCmd_MissingFile(t *testing.T) {
	f := newCLIFixture(t)
	f.store.EXPECT().
		Load("nope.txt").
		Return(nil, zerr.With(zerr.Wrap(domain.ErrMissingIdentityFile, "failed to read identity file"), "path", "nope.txt"))

	f.cli.SetArgs([]string{"show", "nope.txt"})
	err := f.cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingIdentityFile)
}

func TestVersionCmd(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, build.Version+"\n", f.out.String())
}
