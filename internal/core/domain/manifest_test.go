package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/internal/core/domain"
)

func TestRequirementManifest_ParseAndDumps(t *testing.T) {
	m, err := domain.ParseRequirementManifest("zlib/1.2.11@acme/stable\n\nboost/1.70.0-rc1\n")
	require.NoError(t, err)
	require.Len(t, m, 2)

	// Full fidelity, sorted on serialization.
	assert.Equal(t, "boost/1.70.0-rc1\nzlib/1.2.11@acme/stable", m.Dumps())
}

func TestRequirementManifest_ParseMalformedLine(t *testing.T) {
	_, err := domain.ParseRequirementManifest("zlib/1.2.11\nbroken\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedReference))
}

func TestRequirementManifest_Extend(t *testing.T) {
	m := domain.RequirementManifest{mustRef(t, "zlib/1.2.11")}
	m.Extend([]domain.ComponentRef{mustRef(t, "bzip2/1.0.8")})

	assert.Equal(t, []string{"bzip2/1.0.8", "zlib/1.2.11"}, m.Serialize())
}
