package moldyn

import "math"

// Particle is a single point mass (spec §3). Mass and Radius are
// copied from the ParticleTypeRegistry at construction and are
// treated as immutable for the particle's lifetime; Force, Potential,
// and Temp (the virial accumulator) are meaningful only after a force
// evaluation and are reset at the start of each pass (spec §4.4).
type Particle struct {
	Position  Vec3
	Velocity  Vec3
	Force     Vec3
	Potential float64
	Temp      float64
	Mass      float64
	Radius    float64
	Id        uint16
}

// NewParticle constructs a particle of type id, resolving mass and
// radius from registry once so hot loops never consult the registry
// again (spec §9). Fails with ErrParticleIdUnknown if id is not
// registered.
func NewParticle(registry *ParticleTypeRegistry, id uint16, position, velocity Vec3) (*Particle, error) {
	pt, err := registry.Get(id)
	if err != nil {
		return nil, err
	}
	return &Particle{
		Position: position,
		Velocity: velocity,
		Mass:     pt.Mass,
		Radius:   pt.Radius,
		Id:       id,
	}, nil
}

// Speed returns the particle's instantaneous speed.
func (p *Particle) Speed() float64 {
	return p.Velocity.Len()
}

// State owns the particle population and the cubic periodic box
// (spec §3). Particles are grouped by type id so that force-engine and
// macro-reduction passes can iterate a single type's population
// without a filter. Mutated only by the force engine, the integrator,
// couplings, L2's own wrap, and the initializers (spec §3 Lifecycle).
type State struct {
	Particles   map[uint16][]*Particle
	BoundaryBox Vec3
}

// NewState returns an empty State with the given strictly-positive box
// side lengths.
func NewState(boundary Vec3) *State {
	return &State{
		Particles:   make(map[uint16][]*Particle),
		BoundaryBox: boundary,
	}
}

// TypeIds returns the set of type ids currently populated in the
// state, in ascending order, for callers that want a deterministic
// iteration order across types.
func (s *State) TypeIds() []uint16 {
	ids := make([]uint16, 0, len(s.Particles))
	for id := range s.Particles {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

// AddParticle appends p to its type's population. p.Id must already
// have been resolved (e.g. via NewParticle); AddParticle does not
// consult the registry.
func (s *State) AddParticle(p *Particle) {
	s.Particles[p.Id] = append(s.Particles[p.Id], p)
}

// Count returns the number of particles of type id.
func (s *State) Count(id uint16) int {
	return len(s.Particles[id])
}

// TotalCount returns the number of particles across all types.
func (s *State) TotalCount() int {
	n := 0
	for _, ps := range s.Particles {
		n += len(ps)
	}
	return n
}

// WrapComponent folds a single coordinate back into [0, side) (spec
// §4.2). Called by Wrap for each axis.
func WrapComponent(x, side float64) float64 {
	if side <= 0 {
		return x
	}
	// Euclidean remainder handles |x| >= side robustly (spec §4.2
	// permits this in place of the single-shot add/subtract form).
	r := math.Mod(x, side)
	if r < 0 {
		r += side
	}
	return r
}

// Wrap folds every particle's position back into the box (spec §4.2).
// Must be called after any position mutation that can escape the box.
func (s *State) Wrap() {
	bx, by, bz := s.BoundaryBox.X(), s.BoundaryBox.Y(), s.BoundaryBox.Z()
	for _, particles := range s.Particles {
		for _, p := range particles {
			p.Position = Vec3{
				WrapComponent(p.Position.X(), bx),
				WrapComponent(p.Position.Y(), by),
				WrapComponent(p.Position.Z(), bz),
			}
		}
	}
}

// MinimumImage returns the displacement from `from` to `to`, with
// each component independently folded into [-side/2, side/2] under
// periodic boundary conditions (spec §4.2). This is the pair vector
// used throughout the force engine.
func MinimumImage(from, to, boundary Vec3) Vec3 {
	return Vec3{
		minimumImageComponent(to.X()-from.X(), boundary.X()),
		minimumImageComponent(to.Y()-from.Y(), boundary.Y()),
		minimumImageComponent(to.Z()-from.Z(), boundary.Z()),
	}
}

func minimumImageComponent(d, side float64) float64 {
	if side <= 0 {
		return d
	}
	half := side / 2
	if d > half {
		return d - side
	}
	if d < -half {
		return d + side
	}
	return d
}

// VelocityRange returns the minimum and maximum particle speed for
// type id. O(N); intended for diagnostic/visualizer consumption (spec
// §4.2). Returns (0, 0, false) if the type has no particles.
func (s *State) VelocityRange(id uint16) (min, max float64, ok bool) {
	particles := s.Particles[id]
	if len(particles) == 0 {
		return 0, 0, false
	}
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range particles {
		v := p.Speed()
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, true
}
