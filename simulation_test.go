package moldyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulation_FluentBuild(t *testing.T) {
	sim := NewSimulation(Vec3{4, 4, 4}).UseLogger(NewNopLogger())
	sim.Types().Add(0, "argon", 66.335, 0.15)

	placed, err := sim.PlaceSimpleCubic(LatticeSpec{TypeId: 0, Grid: [3]int{2, 2, 2}, CellSize: 2.0, Capacity: 8})
	require.NoError(t, err)
	assert.Len(t, placed, 8)
	assert.Equal(t, 8, sim.State().TotalCount())

	require.NoError(t, sim.UpdateForces())
	require.NoError(t, sim.Run(0.001, 2))
}

func TestSimulation_PotentialsHandle(t *testing.T) {
	sim := NewSimulation(Vec3{4, 4, 4})
	sim.Types().Add(0, "argon", 66.335, 0.15)
	sim.Types().Add(1, "neon", 20.18, 0.1)

	sim.Potentials().Set(0, 1, NewLennardJones(0.5, 1.0))

	p1, _ := NewParticle(sim.Types(), 0, Vec3{1, 1, 1}, Vec3{})
	p2, _ := NewParticle(sim.Types(), 1, Vec3{1.3, 1, 1}, Vec3{})
	sim.State().AddParticle(p1)
	sim.State().AddParticle(p2)

	require.NoError(t, sim.UpdateForces())
	assert.NotEqual(t, 0.0, p1.Potential)
}

func TestSimulation_UseParallelForces(t *testing.T) {
	sim := NewSimulation(Vec3{4, 4, 4}).UseParallelForces()
	sim.Types().Add(0, "argon", 66.335, 0.15)

	_, err := sim.PlaceSimpleCubic(LatticeSpec{TypeId: 0, Grid: [3]int{2, 2, 2}, CellSize: 1.0, Capacity: 8})
	require.NoError(t, err)

	require.NoError(t, sim.UpdateForces())
}
