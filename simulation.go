package moldyn

// Simulation wires a State, the type and potential registries, and
// the integrator's couplings into one host-facing handle, built with
// a fluent constructor in the teacher's builder style.
type Simulation struct {
	state      *State
	types      *ParticleTypeRegistry
	potentials *PotentialRegistry
	integrator *Integrator
	logger     Logger
}

// NewSimulation returns a Simulation over boundary with empty type and
// potential registries, a sequential force engine, and no couplings.
func NewSimulation(boundary Vec3) *Simulation {
	return &Simulation{
		state:      NewState(boundary),
		types:      NewParticleTypeRegistry(),
		potentials: NewPotentialRegistry(),
		integrator: NewIntegrator(),
		logger:     NewNopLogger(),
	}
}

// UseLogger attaches logger to the simulation and its force engine.
func (sim *Simulation) UseLogger(logger Logger) *Simulation {
	sim.logger = logger
	sim.integrator.Forces.Logger = logger
	return sim
}

// UseParallelForces switches the force engine to a worker-pool
// evaluation path (spec §4.4 Parallelism). Trades the reference
// sequential reduction order for throughput; spec §8 scenario
// reproducibility requires the sequential engine instead.
func (sim *Simulation) UseParallelForces() *Simulation {
	sim.integrator.Forces = NewParallelForceEngine()
	sim.integrator.Forces.Logger = sim.logger
	return sim
}

// UseThermostat attaches a thermostat coupling.
func (sim *Simulation) UseThermostat(thermostat *Thermostat) *Simulation {
	sim.integrator.Thermostat = thermostat
	return sim
}

// UseBarostat attaches a barostat coupling.
func (sim *Simulation) UseBarostat(barostat *Barostat) *Simulation {
	sim.integrator.Barostat = barostat
	return sim
}

// Types returns the simulation's particle-type registry for the host
// to populate before placing particles.
func (sim *Simulation) Types() *ParticleTypeRegistry {
	return sim.types
}

// Potentials returns the simulation's potential registry for the host
// to populate before the first force evaluation.
func (sim *Simulation) Potentials() *PotentialRegistryHandle {
	return &PotentialRegistryHandle{registry: sim.potentials}
}

// PotentialRegistryHandle is a thin view over a *PotentialRegistry
// exposed to hosts that should register descriptors without reaching
// into Simulation internals.
type PotentialRegistryHandle struct {
	registry *PotentialRegistry
}

// Set registers the descriptor to use for the unordered pair (i, j).
func (h *PotentialRegistryHandle) Set(i, j uint16, descriptor PotentialDescriptor) {
	h.registry.Set(i, j, descriptor)
}

// State returns the simulation's live state.
func (sim *Simulation) State() *State {
	return sim.state
}

// PlaceSimpleCubic places particles per spec onto the simulation's
// state (spec §4.8).
func (sim *Simulation) PlaceSimpleCubic(spec LatticeSpec) ([]*Particle, error) {
	return PlaceSimpleCubic(sim.state, sim.types, spec)
}

// PlaceFCC places particles per spec onto the simulation's state
// (spec §4.8).
func (sim *Simulation) PlaceFCC(spec LatticeSpec) ([]*Particle, error) {
	return PlaceFCC(sim.state, sim.types, spec)
}

// UpdateForces refreshes force, potential, and virial on every
// particle (spec §4.4).
func (sim *Simulation) UpdateForces() error {
	return sim.integrator.Forces.UpdateForces(sim.state, sim.potentials)
}

// Step advances the simulation by dt under its attached couplings
// (spec §4.5).
func (sim *Simulation) Step(dt float64) error {
	return sim.integrator.Step(sim.state, sim.potentials, dt)
}

// Run calls Step steps times in sequence, stopping at the first
// error.
func (sim *Simulation) Run(dt float64, steps int) error {
	for i := 0; i < steps; i++ {
		if err := sim.Step(dt); err != nil {
			return err
		}
	}
	return nil
}

// Macro returns the reduced observables for typeId (spec §4.7).
func (sim *Simulation) Macro(typeId uint16) MacroState {
	return ComputeMacroState(sim.state, typeId)
}

// Momentum returns the total momentum of typeId, for diagnostic use
// (spec §4.7, §6).
func (sim *Simulation) Momentum(typeId uint16) Vec3 {
	return ComputeMomentum(sim.state, typeId)
}
