// Package moldyn is a classical molecular-dynamics engine: it advances
// a population of point particles through time under pairwise
// conservative forces subject to periodic boundary conditions, and
// derives macroscopic observables (energies, temperature, pressure)
// from the resulting trajectories.
//
// The package is organized as four leaf concerns and four composite
// ones. ParticleTypeRegistry (L1) and PotentialRegistry (L3) are the
// two process-wide, read-mostly lookup tables; State (L2) owns the
// particle population and the periodic box; the Lennard-Jones kernel
// (L4) is a pure function from distance to (potential, force).
// ForceEngine (C1), Integrator (C2) with its Thermostat/Barostat
// couplings, the macro reductions in macro.go (C3), and the lattice
// and velocity initializers (C4) compose those into a runnable
// simulation step, tied together by Simulation's fluent builder.
package moldyn
