package moldyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticle_UnknownId(t *testing.T) {
	registry := NewParticleTypeRegistry()
	_, err := NewParticle(registry, 0, Vec3{}, Vec3{})
	assert.ErrorIs(t, err, ErrParticleIdUnknown)
}

func TestNewParticle_CopiesMassAndRadius(t *testing.T) {
	registry := NewParticleTypeRegistry()
	registry.Add(0, "argon", 66.335, 0.15)

	particle, err := NewParticle(registry, 0, Vec3{1, 2, 3}, Vec3{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 66.335, particle.Mass)
	assert.Equal(t, 0.15, particle.Radius)
	assert.Equal(t, uint16(0), particle.Id)
}

func TestState_WrapComponent(t *testing.T) {
	assert.InDelta(t, 0.5, WrapComponent(2.5, 2), 1e-12)
	assert.InDelta(t, 1.5, WrapComponent(-0.5, 2), 1e-12)
	assert.InDelta(t, 1.0, WrapComponent(1.0, 2), 1e-12)
}

func TestState_WrapTwiceEqualsWrapOnce(t *testing.T) {
	registry := NewParticleTypeRegistry()
	registry.Add(0, "argon", 66.335, 0.15)

	state := NewState(Vec3{2, 2, 2})
	particle, err := NewParticle(registry, 0, Vec3{2.5, -0.5, 3.1}, Vec3{})
	require.NoError(t, err)
	state.AddParticle(particle)

	state.Wrap()
	once := particle.Position

	state.Wrap()
	assert.Equal(t, once, particle.Position)

	assert.True(t, once.X() >= 0 && once.X() < 2)
	assert.True(t, once.Y() >= 0 && once.Y() < 2)
	assert.True(t, once.Z() >= 0 && once.Z() < 2)
}

func TestMinimumImage_ComponentsWithinHalfBox(t *testing.T) {
	boundary := Vec3{2, 2, 2}
	from := Vec3{0.1, 0.1, 0.1}
	to := Vec3{1.9, 1.9, 1.9}

	d := MinimumImage(from, to, boundary)

	for _, c := range []float64{d.X(), d.Y(), d.Z()} {
		assert.True(t, c >= -1 && c <= 1, "component %f outside [-L/2, L/2]", c)
	}
}

func TestState_VelocityRange(t *testing.T) {
	registry := NewParticleTypeRegistry()
	registry.Add(0, "argon", 66.335, 0.15)

	state := NewState(Vec3{2, 2, 2})
	p1, _ := NewParticle(registry, 0, Vec3{}, Vec3{1, 0, 0})
	p2, _ := NewParticle(registry, 0, Vec3{}, Vec3{3, 0, 0})
	state.AddParticle(p1)
	state.AddParticle(p2)

	min, max, ok := state.VelocityRange(0)
	require.True(t, ok)
	assert.InDelta(t, 1, min, 1e-12)
	assert.InDelta(t, 3, max, 1e-12)

	_, _, ok = state.VelocityRange(1)
	assert.False(t, ok)
}

func TestState_TypeIdsAscending(t *testing.T) {
	registry := NewParticleTypeRegistry()
	registry.Add(2, "a", 1, 1)
	registry.Add(0, "b", 1, 1)
	registry.Add(1, "c", 1, 1)

	state := NewState(Vec3{1, 1, 1})
	for _, id := range []uint16{2, 0, 1} {
		p, _ := NewParticle(registry, id, Vec3{}, Vec3{})
		state.AddParticle(p)
	}

	assert.Equal(t, []uint16{0, 1, 2}, state.TypeIds())
}
