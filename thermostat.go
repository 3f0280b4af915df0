package moldyn

import "math"

// ThermostatKind tags the Thermostat variant (spec §4.6, §6).
type ThermostatKind int

const (
	ThermostatBerendsen ThermostatKind = iota
	ThermostatNoseHoover
	ThermostatCustom
)

// Thermostat couples the integrator to a target temperature (spec
// §4.6). TargetKelvin is the host-facing target; TypeId selects which
// type's temperature drives the coupling. Psi is Nosé–Hoover's
// auxiliary friction variable, persisted across steps and otherwise
// unused by the other variants.
type Thermostat struct {
	Kind         ThermostatKind
	TypeId       uint16
	TargetKelvin float64
	Tau          float64
	CustomName   string
	Psi          float64

	hasTarget      bool
	postKickPsiDot float64
}

// NewBerendsenThermostat returns a Berendsen weak-coupling thermostat
// targeting typeId at targetKelvin with relaxation time tau.
func NewBerendsenThermostat(typeId uint16, targetKelvin, tau float64) *Thermostat {
	return &Thermostat{Kind: ThermostatBerendsen, TypeId: typeId, TargetKelvin: targetKelvin, Tau: tau, hasTarget: true}
}

// NewNoseHooverThermostat returns a single-chain Nosé–Hoover thermostat
// targeting typeId at targetKelvin with relaxation time tau. Psi starts
// at 0 (spec §4.6).
func NewNoseHooverThermostat(typeId uint16, targetKelvin, tau float64) *Thermostat {
	return &Thermostat{Kind: ThermostatNoseHoover, TypeId: typeId, TargetKelvin: targetKelvin, Tau: tau, hasTarget: true}
}

// NewCustomThermostat returns a named, not-implemented thermostat
// variant (spec §4.6, §7).
func NewCustomThermostat(name string) *Thermostat {
	return &Thermostat{Kind: ThermostatCustom, CustomName: name, hasTarget: true}
}

// HasTarget reports whether a target temperature was supplied at
// construction. A thermostat attached without one fails at step entry
// with ErrThermostatUsedWithoutTemperature (spec §4.5, §6, §7) —
// modelled by building the zero-value *Thermostat rather than using
// one of the New* constructors.
func (t *Thermostat) HasTarget() bool {
	return t.hasTarget
}

// targetInternal returns the thermostat's target temperature in
// internal units (spec §3 unit conversion).
func (t *Thermostat) targetInternal() float64 {
	return kelvinToInternal(t.TargetKelvin)
}

// currentInternal reads the current internal temperature of the
// thermostat's type from state.
func (t *Thermostat) currentInternal(state *State) float64 {
	return kelvinToInternal(ComputeTemperature(state, t.TypeId))
}

// berendsenLambda computes the Berendsen velocity-scaling factor λ from dt and
// the current/target internal temperatures (spec §4.6).
func berendsenLambda(dt, tau, tCurrent, tTarget float64) float64 {
	lambdaSq := 1 + (dt/tau)*(tTarget/tCurrent-1)
	if lambdaSq < 0 {
		lambdaSq = 0
	}
	return math.Sqrt(lambdaSq)
}

// Lambda computes this step's velocity-scaling factor λ (spec §4.5
// step 2, §4.6). For Berendsen it is a pure function of the current
// state. For Nosé–Hoover it also advances Psi by the first ½Δt using
// the pre-kick temperature, per the straddled half-step advance of
// §4.5 step 2 / §4.6. Fails with ErrThermostatNotImplemented for a
// Custom variant.
func (t *Thermostat) Lambda(state *State, dt float64) (float64, error) {
	switch t.Kind {
	case ThermostatBerendsen:
		tCurrent := t.currentInternal(state)
		tTarget := t.targetInternal()
		if tCurrent == 0 {
			return 1, nil
		}
		return berendsenLambda(dt, t.Tau, tCurrent, tTarget), nil
	case ThermostatNoseHoover:
		tCurrent := t.currentInternal(state)
		tTarget := t.targetInternal()
		psiDot := 0.0
		if tCurrent != 0 {
			psiDot = -(tTarget/tCurrent - 1) / t.Tau
		}
		t.Psi += psiDot * (dt / 2)
		lambda := math.Exp(-t.Psi * dt / 2)
		t.postKickPsiDot = psiDot
		return lambda, nil
	default:
		return 0, ErrThermostatNotImplemented
	}
}

// AdvancePostKick performs Nosé–Hoover's second ½Δt advance of Psi,
// using the same pre-scaling ψ_dot computed in the preceding Lambda
// call (spec §4.5 step 4, §4.6). A no-op for Berendsen and Custom.
func (t *Thermostat) AdvancePostKick(dt float64) {
	if t.Kind == ThermostatNoseHoover {
		t.Psi += t.postKickPsiDot * (dt / 2)
	}
}

// Apply multiplies every velocity of the thermostat's type by lambda
// (spec §4.5 step 4, §4.6).
func (t *Thermostat) Apply(state *State, lambda float64) {
	for _, particle := range state.Particles[t.TypeId] {
		particle.Velocity = particle.Velocity.Mul(lambda)
	}
}
