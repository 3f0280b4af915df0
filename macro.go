package moldyn

import "math"

// MacroState is one type's reduced quantities (spec §3, §4.7, C3).
// Every sum ranges over state.Particles[typeId] only.
type MacroState struct {
	ComVelocity     Vec3
	Momentum        Vec3
	KineticEnergy   float64
	ThermalEnergy   float64
	PotentialEnergy float64
	Temperature     float64
	Pressure        float64
}

// ComputeMomentum returns Σ m_i * v_i over the given type. The sum is
// compensated (Neumaier), so contributions that cancel exactly, such as
// the ±v pairs drawn by InitializeVelocities, sum to zero.
func ComputeMomentum(state *State, typeId uint16) Vec3 {
	var p, c Vec3
	for _, particle := range state.Particles[typeId] {
		x := particle.Velocity.Mul(particle.Mass)
		for k := 0; k < 3; k++ {
			s := p[k] + x[k]
			if math.Abs(p[k]) >= math.Abs(x[k]) {
				c[k] += (p[k] - s) + x[k]
			} else {
				c[k] += (x[k] - s) + p[k]
			}
			p[k] = s
		}
	}
	return p.Add(c)
}

// ComputeComVelocity returns the center-of-mass velocity v̄ = (Σ m_i
// v_i) / (Σ m_i) for the given type (spec §4.7).
func ComputeComVelocity(state *State, typeId uint16) Vec3 {
	particles := state.Particles[typeId]
	totalMass := 0.0
	var p Vec3
	for _, particle := range particles {
		p = p.Add(particle.Velocity.Mul(particle.Mass))
		totalMass += particle.Mass
	}
	if totalMass == 0 {
		return Vec3{}
	}
	return p.Mul(1 / totalMass)
}

// ComputeKineticEnergy returns K = Σ ½ m_i |v_i|² for the given type
// (spec §4.7).
func ComputeKineticEnergy(state *State, typeId uint16) float64 {
	e := 0.0
	for _, particle := range state.Particles[typeId] {
		v := particle.Velocity.Len()
		e += 0.5 * particle.Mass * v * v
	}
	return e
}

// ComputeThermalEnergy returns T_E = Σ ½ m_i |v_i − v̄|² for the given
// type, the kinetic energy measured in the center-of-mass frame (spec
// §4.7).
func ComputeThermalEnergy(state *State, typeId uint16) float64 {
	particles := state.Particles[typeId]
	comVelocity := ComputeComVelocity(state, typeId)
	e := 0.0
	for _, particle := range particles {
		rel := particle.Velocity.Sub(comVelocity)
		v := rel.Len()
		e += 0.5 * particle.Mass * v * v
	}
	return e
}

// ComputePotentialEnergy returns U = (Σ particle.Potential) / 2 for
// the given type; the division by 2 corrects for §4.4's
// double-accumulation onto both partners of a pair.
func ComputePotentialEnergy(state *State, typeId uint16) float64 {
	e := 0.0
	for _, particle := range state.Particles[typeId] {
		e += particle.Potential
	}
	return e / 2
}

// ComputeTemperature returns the instantaneous temperature in kelvin,
// T = (2·T_E) / (3·N·k_B) · 100, for the given type (spec §4.7, §3
// unit conversion).
func ComputeTemperature(state *State, typeId uint16) float64 {
	n := state.Count(typeId)
	if n == 0 {
		return 0
	}
	thermal := ComputeThermalEnergy(state, typeId)
	tInternal := (2 * thermal) / (3 * float64(n) * KB)
	return internalToKelvin(tInternal)
}

// ComputePressure returns P = (Σ_i [m_i (v_i−v̄)·(v_i−v̄) −
// particle.Temp]) / (3·V) for the given type (spec §4.7); the bracketed
// sum is twice the thermal energy minus the accumulated virial.
func ComputePressure(state *State, typeId uint16) float64 {
	volume := state.BoundaryBox.X() * state.BoundaryBox.Y() * state.BoundaryBox.Z()
	if volume <= 0 {
		return 0
	}
	thermal := ComputeThermalEnergy(state, typeId)
	virial := 0.0
	for _, particle := range state.Particles[typeId] {
		virial += particle.Temp
	}
	return (2*thermal - virial) / (3 * volume)
}

// ComputeMacroState reduces every per-type quantity in one pass over
// typeId's population (spec §3, §4.7).
func ComputeMacroState(state *State, typeId uint16) MacroState {
	particles := state.Particles[typeId]
	n := len(particles)

	comVelocity := ComputeComVelocity(state, typeId)

	var momentum Vec3
	kinetic := 0.0
	thermal := 0.0
	potential := 0.0
	virial := 0.0
	for _, particle := range particles {
		momentum = momentum.Add(particle.Velocity.Mul(particle.Mass))

		v := particle.Velocity.Len()
		kinetic += 0.5 * particle.Mass * v * v

		rel := particle.Velocity.Sub(comVelocity)
		relV := rel.Len()
		thermal += 0.5 * particle.Mass * relV * relV

		potential += particle.Potential
		virial += particle.Temp
	}
	potential /= 2

	tInternal := 0.0
	if n > 0 {
		tInternal = (2 * thermal) / (3 * float64(n) * KB)
	}

	volume := state.BoundaryBox.X() * state.BoundaryBox.Y() * state.BoundaryBox.Z()
	pressure := 0.0
	if volume > 0 {
		pressure = (2*thermal - virial) / (3 * volume)
	}

	return MacroState{
		ComVelocity:     comVelocity,
		Momentum:        momentum,
		KineticEnergy:   kinetic,
		ThermalEnergy:   thermal,
		PotentialEnergy: potential,
		Temperature:     internalToKelvin(tInternal),
		Pressure:        pressure,
	}
}
