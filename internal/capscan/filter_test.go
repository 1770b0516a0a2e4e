package capscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureResult builds a small in-memory result: one exported and one
// unexported adoption, plus an orphan capability nobody adopts.
func fixtureResult() *Result {
	caps := []Capability{
		{Name: "Speaker", PkgPath: "example.com/zoo", PkgName: "zoo"},
		{Name: "quiet", PkgPath: "example.com/zoo", PkgName: "zoo"},
		{Name: "Orphan", PkgPath: "example.com/zoo", PkgName: "zoo"},
	}
	adopters := []Adopter{
		{Name: "Dog", PkgPath: "example.com/zoo", PkgName: "zoo"},
		{Name: "mouse", PkgPath: "example.com/other", PkgName: "other"},
	}
	return &Result{
		Capabilities: caps,
		Adopters:     adopters,
		Adoptions: []Adoption{
			{Adopter: &adopters[0], Capability: &caps[0]},
			{Adopter: &adopters[1], Capability: &caps[1]},
		},
	}
}

func TestFilter_DropsUnexportedByDefault(t *testing.T) {
	got := Filter(fixtureResult(), Options{})

	require.Len(t, got.Adoptions, 1)
	assert.Equal(t, "Dog", got.Adoptions[0].Adopter.Name)
	require.Len(t, got.Capabilities, 1)
	assert.Equal(t, "Speaker", got.Capabilities[0].Name)
}

func TestFilter_IncludeUnexportedKeepsEverything(t *testing.T) {
	got := Filter(fixtureResult(), Options{IncludeUnexported: true})

	assert.Len(t, got.Adoptions, 2)
	assert.Len(t, got.Adopters, 2)
}

func TestFilter_PrunesOrphanCapabilities(t *testing.T) {
	got := Filter(fixtureResult(), Options{IncludeUnexported: true})

	for _, c := range got.Capabilities {
		assert.NotEqual(t, "Orphan", c.Name)
	}
}

func TestFilter_PackagePrefix(t *testing.T) {
	got := Filter(fixtureResult(), Options{Filter: "example.com/other", IncludeUnexported: true})

	require.Len(t, got.Adoptions, 1)
	assert.Equal(t, "mouse", got.Adoptions[0].Adopter.Name)
}

func TestFilter_PrefixMatchesEitherSide(t *testing.T) {
	// The adoption survives when either the capability's or the adopter's
	// package matches the prefix.
	got := Filter(fixtureResult(), Options{Filter: "example.com/zoo", IncludeUnexported: true})
	assert.Len(t, got.Adoptions, 2)
}
