package moldyn

import "math"

// BarostatKind tags the Barostat variant (spec §4.6, §6).
type BarostatKind int

const (
	BarostatBerendsen BarostatKind = iota
	BarostatCustom
)

// Barostat couples the integrator to a target pressure (spec §4.6).
// TypeId selects which type's pressure drives the coupling.
type Barostat struct {
	Kind           BarostatKind
	TypeId         uint16
	TargetPressure float64
	Beta           float64
	Tau            float64
	CustomName     string

	hasTarget bool
}

// NewBerendsenBarostat returns a Berendsen weak-coupling barostat
// targeting typeId at targetPressure with compressibility beta and
// relaxation time tau.
func NewBerendsenBarostat(typeId uint16, targetPressure, beta, tau float64) *Barostat {
	return &Barostat{Kind: BarostatBerendsen, TypeId: typeId, TargetPressure: targetPressure, Beta: beta, Tau: tau, hasTarget: true}
}

// NewCustomBarostat returns a named, not-implemented barostat variant
// (spec §4.6, §7).
func NewCustomBarostat(name string) *Barostat {
	return &Barostat{Kind: BarostatCustom, CustomName: name, hasTarget: true}
}

// HasTarget reports whether a target pressure was supplied at
// construction. A barostat attached without one fails at step entry
// with ErrBarostatUsedWithoutPressure (spec §4.5, §6, §7) — modelled
// by building the zero-value *Barostat rather than using one of the
// New* constructors.
func (b *Barostat) HasTarget() bool {
	return b.hasTarget
}

// Mu computes this step's box/position scaling factor μ (spec §4.5
// step 1, §4.6). Fails with ErrBarostatNotImplemented for a Custom
// variant.
func (b *Barostat) Mu(state *State, dt float64) (float64, error) {
	switch b.Kind {
	case BarostatBerendsen:
		pCurrent := ComputePressure(state, b.TypeId)
		muCubed := 1 + (dt*b.Beta/b.Tau)*(pCurrent-b.TargetPressure)
		if muCubed < 0 {
			muCubed = 0
		}
		return math.Cbrt(muCubed), nil
	default:
		return 0, ErrBarostatNotImplemented
	}
}

// Apply rescales the box and every particle's position by mu (spec
// §4.5 step 9, §4.6). Scales the whole state, not just the
// barostat's own type, because the box is shared.
func (b *Barostat) Apply(state *State, mu float64) {
	state.BoundaryBox = state.BoundaryBox.Mul(mu)
	for _, id := range state.TypeIds() {
		for _, particle := range state.Particles[id] {
			particle.Position = particle.Position.Mul(mu)
		}
	}
}
