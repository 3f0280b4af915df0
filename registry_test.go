package moldyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleTypeRegistry_AddGet(t *testing.T) {
	registry := NewParticleTypeRegistry()
	registry.Add(0, "argon", 66.335, 0.15)

	pt, err := registry.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "argon", pt.Name)
	assert.Equal(t, 66.335, pt.Mass)
	assert.Equal(t, 0.15, pt.Radius)
}

func TestParticleTypeRegistry_UnknownId(t *testing.T) {
	registry := NewParticleTypeRegistry()

	_, err := registry.Get(5)
	assert.ErrorIs(t, err, ErrParticleIdUnknown)

	_, err = registry.GetMass(5)
	assert.ErrorIs(t, err, ErrParticleIdUnknown)

	_, err = registry.GetRadius(5)
	assert.ErrorIs(t, err, ErrParticleIdUnknown)

	_, err = registry.GetName(5)
	assert.ErrorIs(t, err, ErrParticleIdUnknown)
}

func TestParticleTypeRegistry_Clear(t *testing.T) {
	registry := NewParticleTypeRegistry()
	registry.Add(0, "argon", 66.335, 0.15)
	registry.Clear()

	assert.False(t, registry.Has(0))
}

func TestParticleTypeRegistry_ExportImportRoundTrip(t *testing.T) {
	registry := NewParticleTypeRegistry()
	registry.Add(0, "argon", 66.335, 0.15)
	registry.Add(1, "neon", 20.18, 0.1)

	snapshot := registry.Export()

	fresh := NewParticleTypeRegistry()
	fresh.Import(snapshot)

	for id := range snapshot {
		want, err := registry.Get(id)
		require.NoError(t, err)
		got, err := fresh.Get(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
