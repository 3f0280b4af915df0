package moldyn

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the kernel's 3-component double-precision vector, used for
// position, velocity, force, and box side lengths alike.
type Vec3 = mgl64.Vec3

// KB is the Boltzmann constant in the kernel's internal unit system
// (length in nm, mass in 10^-27 kg); it fixes the time and temperature
// units (spec §3).
const KB = 1.380648528

// kelvinToInternal converts a temperature crossing the API boundary
// from kelvin into the internal unit system (spec §3).
func kelvinToInternal(tKelvin float64) float64 {
	return tKelvin * 0.01
}

// internalToKelvin converts an internal-unit temperature back to
// kelvin for values crossing the API boundary (spec §3).
func internalToKelvin(tInternal float64) float64 {
	return tInternal * 100.0
}
