package moldyn

import (
	"math"
	"math/rand"
)

// InitializeVelocities draws Maxwell–Boltzmann velocities for every
// particle of typeId in state at targetKelvin, pairing particle i with
// particle i+N/2 so their velocities are negatives of one another
// (spec §4.8). This guarantees zero total momentum for the type
// without an explicit correction pass. For odd N the last particle
// (index N-1) has no partner and is left at zero velocity (spec §4.8,
// documented choice). rng seeds
// the per-call sampler; pass rand.New(rand.NewSource(seed)) for a
// reproducible draw, mirroring the teacher's per-worker seeded
// rand.Rand pattern.
func InitializeVelocities(state *State, registry *ParticleTypeRegistry, typeId uint16, targetKelvin float64, rng *rand.Rand) error {
	mass, err := registry.GetMass(typeId)
	if err != nil {
		return err
	}

	particles := state.Particles[typeId]
	n := len(particles)
	if n == 0 {
		return nil
	}

	tInternal := kelvinToInternal(targetKelvin)
	sigma := math.Sqrt(KB * tInternal / mass)

	half := n / 2
	for i := 0; i < half; i++ {
		x := rng.NormFloat64() * sigma
		y := rng.NormFloat64() * sigma
		z := rng.NormFloat64() * sigma
		particles[i].Velocity = Vec3{x, y, z}
		particles[i+half].Velocity = Vec3{-x, -y, -z}
	}
	if n%2 == 1 {
		particles[n-1].Velocity = Vec3{}
	}
	return nil
}
