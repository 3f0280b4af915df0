package moldyn

// Integrator advances a State by one velocity-Verlet step, optionally
// composed with a thermostat and/or barostat coupling (spec §4.5,
// C2). A zero-value Integrator uses a sequential ForceEngine.
type Integrator struct {
	Forces     *ForceEngine
	Thermostat *Thermostat
	Barostat   *Barostat
}

// NewIntegrator returns an Integrator driven by a sequential force
// engine, with no couplings attached.
func NewIntegrator() *Integrator {
	return &Integrator{Forces: NewForceEngine()}
}

// Step advances state by dt under registry, following the exact
// nine-phase sequence of spec §4.5:
//
//  1. barostat recomputes μ from the pre-kick state (if attached)
//  2. thermostat recomputes λ from the pre-kick state (if attached)
//  3. first half-kick: v += (dt / 2m) * F
//  4. thermostat applies λ (if attached)
//  5. drift: p += dt * v
//  6. wrap positions into the box
//  7. update_forces refreshes F, potential, virial
//  8. second half-kick: v += (dt / 2m) * F
//  9. barostat applies μ to box and positions (if attached)
//
// Configuration errors (a coupling attached without its target) are
// surfaced here, before any mutation (spec §4.5, §7).
func (integrator *Integrator) Step(state *State, registry *PotentialRegistry, dt float64) error {
	if integrator.Thermostat != nil && !integrator.Thermostat.HasTarget() {
		return ErrThermostatUsedWithoutTemperature
	}
	if integrator.Barostat != nil && !integrator.Barostat.HasTarget() {
		return ErrBarostatUsedWithoutPressure
	}

	// A Custom potential on any type pair with at least one particle pair
	// fails before any mutation, rather than inside UpdateForces.
	typeIds := state.TypeIds()
	for ti, t1 := range typeIds {
		for _, t2 := range typeIds[ti:] {
			if registry.Get(t1, t2).Kind != PotentialCustom {
				continue
			}
			n1, n2 := state.Count(t1), state.Count(t2)
			if (t1 != t2 && n1 > 0 && n2 > 0) || (t1 == t2 && n1 > 1) {
				return ErrPotentialNotImplemented
			}
		}
	}

	var mu float64
	haveMu := false
	if integrator.Barostat != nil {
		m, err := integrator.Barostat.Mu(state, dt)
		if err != nil {
			return err
		}
		mu = m
		haveMu = true
	}

	var lambda float64
	haveLambda := false
	if integrator.Thermostat != nil {
		l, err := integrator.Thermostat.Lambda(state, dt)
		if err != nil {
			return err
		}
		lambda = l
		haveLambda = true
	}

	halfKick(state, dt)

	if haveLambda {
		integrator.Thermostat.Apply(state, lambda)
		integrator.Thermostat.AdvancePostKick(dt)
	}

	drift(state, dt)
	state.Wrap()

	forces := integrator.Forces
	if forces == nil {
		forces = NewForceEngine()
	}
	if err := forces.UpdateForces(state, registry); err != nil {
		return err
	}

	halfKick(state, dt)

	if haveMu {
		integrator.Barostat.Apply(state, mu)
	}

	return nil
}

// halfKick applies v += (dt / 2m) * F to every particle (spec §4.5
// steps 3 and 8).
func halfKick(state *State, dt float64) {
	for _, id := range state.TypeIds() {
		for _, particle := range state.Particles[id] {
			particle.Velocity = particle.Velocity.Add(particle.Force.Mul(dt / (2 * particle.Mass)))
		}
	}
}

// drift applies p += dt * v to every particle (spec §4.5 step 5).
func drift(state *State, dt float64) {
	for _, id := range state.TypeIds() {
		for _, particle := range state.Particles[id] {
			particle.Position = particle.Position.Add(particle.Velocity.Mul(dt))
		}
	}
}
