package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func fixtureSettings() *domain.SettingsValues {
	v := domain.NewSettingsValues()
	v.Set("os", "Linux")
	v.Set("arch", "x86_64")
	v.Set("compiler", "gcc")
	v.Set("compiler.version", "9")
	return v
}

func fixtureOptions() *domain.OptionsValues {
	v := domain.NewOptionsValues()
	v.Set("shared", "True")
	v.Set("fPIC", "False")
	v.Set("zlib:shared", "False")
	return v
}

// fixtureIdentity builds an identity with a direct, an indirect and a dev
// requirement, exercising every dump feature at once.
func fixtureIdentity(t *testing.T) *domain.BuildIdentity {
	t.Helper()
	return domain.NewBuildIdentity(
		fixtureSettings(),
		fixtureOptions(),
		[]domain.ComponentRef{
			mustRef(t, "zlib/1.2.11@acme/stable"),
			mustRef(t, "boost/1.70.0-rc1@acme/testing"),
		},
		[]domain.ComponentRef{mustRef(t, "bzip2/1.0.8")},
		domain.NewRelevanceFilter([]string{"zlib", "bzip2"}),
	)
}

func TestNewBuildIdentity_Snapshots(t *testing.T) {
	identity := fixtureIdentity(t)

	// The pruned options snapshot lost its dependency-scoped values; the
	// full snapshot keeps them.
	assert.Equal(t, "fPIC=False\nshared=True", identity.Options.Dumps())
	assert.Equal(t, "fPIC=False\nshared=True\nzlib:shared=False", identity.FullOptions.Dumps())

	// The settings snapshot is an independent copy: pruning it does not
	// touch the full snapshot.
	identity.Settings.Remove("os")
	assert.Equal(t, "arch=x86_64\ncompiler=gcc\ncompiler.version=9", identity.Settings.Dumps())
	assert.Equal(t, "arch=x86_64\ncompiler=gcc\ncompiler.version=9\nos=Linux", identity.FullSettings.Dumps())

	// The manifest holds the complete closure.
	assert.Equal(t,
		"boost/1.70.0-rc1@acme/testing\nbzip2/1.0.8\nzlib/1.2.11@acme/stable",
		identity.FullRequires.Dumps())
}

func TestBuildIdentity_Dumps_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "identity_dump", []byte(fixtureIdentity(t).Dumps()))
}

func TestBuildIdentity_PackageID_Deterministic(t *testing.T) {
	h := &captureHasher{}
	first := fixtureIdentity(t).PackageID(h)
	second := fixtureIdentity(t).PackageID(h)
	assert.Equal(t, first, second)
}

func TestBuildIdentity_PackageID_Memoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := mocks.NewMockContentHasher(ctrl)
	// Three sub-hashes plus the final reduction, then never again.
	hasher.EXPECT().Sum(gomock.Any()).Return("deadbeef").Times(4)

	identity := fixtureIdentity(t)
	first := identity.PackageID(hasher)
	second := identity.PackageID(hasher)
	assert.Equal(t, first, second)
}

func TestBuildIdentity_PackageID_IgnoresProvenance(t *testing.T) {
	settings := fixtureSettings()
	options := fixtureOptions()
	direct := []domain.ComponentRef{mustRef(t, "boost/1.0")}

	older := domain.NewBuildIdentity(settings.Copy(), options.Copy(), direct,
		[]domain.ComponentRef{mustRef(t, "zlib/2.0")}, nil)
	newer := domain.NewBuildIdentity(settings.Copy(), options.Copy(), direct,
		[]domain.ComponentRef{mustRef(t, "zlib/3.0")}, nil)

	h := &captureHasher{}
	assert.Equal(t, older.PackageID(h), newer.PackageID(h),
		"an indirect version bump keeps the package ID stable")
	assert.False(t, older.Equal(newer),
		"but the canonical dumps differ in full_requires, so equality is textual, not hash-based")
}

func TestBuildIdentity_Equal_IsTextual(t *testing.T) {
	plain := fixtureIdentity(t)
	scoped := fixtureIdentity(t)
	scoped.Scope = domain.NewScopeValues()
	scoped.Scope.Set("dev", "True")

	h := &captureHasher{}
	assert.Equal(t, plain.PackageID(h), scoped.PackageID(h), "scope never feeds the hash")
	assert.False(t, plain.Equal(scoped), "yet the dumps differ, so the identities compare unequal")
}

func TestBuildIdentity_DumpParseRoundTrip(t *testing.T) {
	// Direct-only, unfiltered identities round-trip byte for byte.
	identity := domain.NewBuildIdentity(
		fixtureSettings(),
		fixtureOptions(),
		[]domain.ComponentRef{
			mustRef(t, "zlib/1.2.11@acme/stable"),
			mustRef(t, "boost/1.70.0-rc1@acme/testing"),
		},
		nil,
		nil,
	)

	text := identity.Dumps()
	parsed, err := domain.ParseBuildIdentity(text)
	require.NoError(t, err)
	assert.Equal(t, text, parsed.Dumps())
	assert.True(t, identity.Equal(parsed))
}

func TestBuildIdentity_DumpParseIdempotent(t *testing.T) {
	// With indirect or dev requirements the first re-parse loses the
	// direct/indirect split and the relevance filter; from then on the text
	// is stable.
	first, err := domain.ParseBuildIdentity(fixtureIdentity(t).Dumps())
	require.NoError(t, err)

	text := first.Dumps()
	second, err := domain.ParseBuildIdentity(text)
	require.NoError(t, err)
	assert.Equal(t, text, second.Dumps())
}

func TestParseBuildIdentity_MissingSection(t *testing.T) {
	text := fixtureIdentity(t).Dumps()
	truncated := strings.Replace(text, "[scope]", "", 1)

	_, err := domain.ParseBuildIdentity(truncated)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedIdentityFile))
}

func TestParseBuildIdentity_UnknownSection(t *testing.T) {
	_, err := domain.ParseBuildIdentity("[bogus]\n    key=value")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedIdentityFile))
}

func TestBuildIdentity_StructuredRoundTrip(t *testing.T) {
	identity := domain.NewBuildIdentity(
		fixtureSettings(),
		fixtureOptions(),
		[]domain.ComponentRef{mustRef(t, "zlib/1.2.11@acme/stable")},
		nil,
		nil,
	)

	rebuilt, err := domain.DeserializeBuildIdentity(identity.Serialize())
	require.NoError(t, err)
	assert.True(t, identity.Equal(rebuilt))
}

func TestBuildIdentity_StructuredFormOmitsScope(t *testing.T) {
	identity := domain.NewBuildIdentity(
		fixtureSettings(), fixtureOptions(),
		[]domain.ComponentRef{mustRef(t, "zlib/1.2.11")}, nil, nil)
	identity.Scope = domain.NewScopeValues()
	identity.Scope.Set("dev", "True")

	rebuilt, err := domain.DeserializeBuildIdentity(identity.Serialize())
	require.NoError(t, err)
	assert.Nil(t, rebuilt.Scope)
	assert.False(t, identity.Equal(rebuilt),
		"scope survives the canonical dump but not the structured form")
}
