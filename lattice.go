package moldyn

// LatticeSpec describes one unit-cell placement request (spec §4.8,
// §6 lattice_spec).
type LatticeSpec struct {
	TypeId   uint16
	Origin   Vec3
	Grid     [3]int
	CellSize float64
	// Capacity bounds how many particles of TypeId the host is willing
	// to pre-allocate for this placement; exceeding it fails with
	// ErrPopulationTooSmall (spec §4.8).
	Capacity int
}

func (spec LatticeSpec) required(particlesPerCell int) int {
	return particlesPerCell * spec.Grid[0] * spec.Grid[1] * spec.Grid[2]
}

func (spec LatticeSpec) checkPreconditions(registry *ParticleTypeRegistry, particlesPerCell int, state *State) error {
	if !registry.Has(spec.TypeId) {
		return ErrParticleIdUnknown
	}
	if spec.required(particlesPerCell) > spec.Capacity {
		return ErrPopulationTooSmall
	}
	bx, by, bz := state.BoundaryBox.X(), state.BoundaryBox.Y(), state.BoundaryBox.Z()
	if float64(spec.Grid[0])*spec.CellSize > bx ||
		float64(spec.Grid[1])*spec.CellSize > by ||
		float64(spec.Grid[2])*spec.CellSize > bz {
		return ErrOutsideBox
	}
	return nil
}

// PlaceSimpleCubic places one particle per cell at the cell's origin
// (spec §4.8). Particle k at (x, y, z) receives linear index
// x*ny*nz + y*nz + z, matching the indexing order used to iterate the
// result.
func PlaceSimpleCubic(state *State, registry *ParticleTypeRegistry, spec LatticeSpec) ([]*Particle, error) {
	if err := spec.checkPreconditions(registry, 1, state); err != nil {
		return nil, err
	}

	nx, ny, nz := spec.Grid[0], spec.Grid[1], spec.Grid[2]
	placed := make([]*Particle, nx*ny*nz)

	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				position := Vec3{
					spec.Origin.X() + float64(x)*spec.CellSize,
					spec.Origin.Y() + float64(y)*spec.CellSize,
					spec.Origin.Z() + float64(z)*spec.CellSize,
				}
				particle, err := NewParticle(registry, spec.TypeId, position, Vec3{})
				if err != nil {
					return nil, err
				}
				state.AddParticle(particle)
				placed[x*ny*nz+y*nz+z] = particle
			}
		}
	}
	return placed, nil
}

// fccBasis holds the four relative offsets of an FCC unit cell's
// particles, in the order particle indices 0..3 occupy within a cell
// (spec §4.8).
func fccBasis(a float64) [4]Vec3 {
	half := a / 2
	return [4]Vec3{
		{0, 0, 0},
		{0, half, half},
		{half, 0, half},
		{half, half, 0},
	}
}

// PlaceFCC places four particles per cell at the face-centered-cubic
// basis positions (spec §4.8). Within a cell the four particles
// occupy four consecutive indices in the basis order returned by
// fccBasis.
func PlaceFCC(state *State, registry *ParticleTypeRegistry, spec LatticeSpec) ([]*Particle, error) {
	if err := spec.checkPreconditions(registry, 4, state); err != nil {
		return nil, err
	}

	nx, ny, nz := spec.Grid[0], spec.Grid[1], spec.Grid[2]
	basis := fccBasis(spec.CellSize)
	placed := make([]*Particle, 4*nx*ny*nz)

	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				cellOrigin := Vec3{
					spec.Origin.X() + float64(x)*spec.CellSize,
					spec.Origin.Y() + float64(y)*spec.CellSize,
					spec.Origin.Z() + float64(z)*spec.CellSize,
				}
				cellIndex := x*ny*nz + y*nz + z
				for b := 0; b < 4; b++ {
					position := cellOrigin.Add(basis[b])
					particle, err := NewParticle(registry, spec.TypeId, position, Vec3{})
					if err != nil {
						return nil, err
					}
					state.AddParticle(particle)
					placed[cellIndex*4+b] = particle
				}
			}
		}
	}
	return placed, nil
}
