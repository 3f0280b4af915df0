package moldyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPotentialRegistry_DefaultIsArgonLennardJones(t *testing.T) {
	registry := NewPotentialRegistry()
	d := registry.Get(0, 1)

	assert.Equal(t, PotentialLennardJones, d.Kind)
	assert.InDelta(t, 0.3418, d.LennardJones.Sigma, 1e-12)
	assert.InDelta(t, 1.712, d.LennardJones.Epsilon, 1e-12)
}

func TestPotentialRegistry_SetGetCanonicalOrder(t *testing.T) {
	registry := NewPotentialRegistry()
	custom := NewCustomPotential("morse", []float64{1, 2, 3})
	registry.Set(3, 1, custom)

	got := registry.Get(1, 3)
	assert.Equal(t, PotentialCustom, got.Kind)
	assert.Equal(t, "morse", got.Custom.Name)
}

func TestPotentialRegistry_ExportImportRoundTrip(t *testing.T) {
	registry := NewPotentialRegistry()
	registry.Set(0, 1, NewLennardJones(0.5, 2.0))
	registry.Set(2, 2, NewCustomPotential("x", nil))

	snapshot := registry.Export()

	fresh := NewPotentialRegistry()
	fresh.Import(snapshot)

	assert.Equal(t, registry.Get(0, 1), fresh.Get(0, 1))
	assert.Equal(t, registry.Get(2, 2), fresh.Get(2, 2))
}

func TestPotentialDescriptor_Evaluate_CustomNotImplemented(t *testing.T) {
	d := NewCustomPotential("morse", nil)
	_, _, err := d.Evaluate(1.0)
	assert.ErrorIs(t, err, ErrPotentialNotImplemented)
}

func TestPotentialDescriptor_RCut(t *testing.T) {
	d := NewLennardJones(0.3418, 1.712)
	assert.InDelta(t, 2.5*0.3418, d.RCut(), 1e-12)
}
