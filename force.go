package moldyn

import (
	"runtime"
	"sync"
)

// ForceEngine evaluates pairwise forces under minimum-image + cutoff
// pruning (spec §4.4, C1). Workers controls the degree of
// parallelism: 1 (the default) runs the reference sequential
// reduction order (outer loop over i, inner loop over j ascending,
// per spec §9's determinism note) and reproduces the scenarios of
// spec §8 bit-for-bit; >1 partitions work across goroutines with a
// private per-worker accumulator reduced in worker-ascending order,
// trading the exact reference reduction order for throughput (spec
// §4.4 Parallelism, §9 Floating-point determinism).
type ForceEngine struct {
	Workers int
	Logger  Logger
}

// NewForceEngine returns a sequential (Workers=1) force engine with a
// no-op logger.
func NewForceEngine() *ForceEngine {
	return &ForceEngine{Workers: 1, Logger: NewNopLogger()}
}

// NewParallelForceEngine returns a force engine that spreads pair
// evaluation across a worker pool sized like the teacher's particle
// emitter (runtime.GOMAXPROCS, capped). Use NewForceEngine instead
// when spec §8 scenario reproducibility is required.
func NewParallelForceEngine() *ForceEngine {
	return &ForceEngine{Workers: defaultWorkerCount(), Logger: NewNopLogger()}
}

type pairDelta struct {
	iForce, jForce Vec3
	iPot, jPot     float64
	iTemp          float64
}

// UpdateForces overwrites Force, Potential, and Temp on every particle
// in state using only the current positions and registry (spec §4.4).
// Returns ErrPotentialNotImplemented if any exercised type-pair
// resolves to a Custom descriptor.
func (e *ForceEngine) UpdateForces(state *State, registry *PotentialRegistry) error {
	logger := e.Logger
	if logger == nil {
		logger = NewNopLogger()
	}

	typeIds := state.TypeIds()

	for _, id := range typeIds {
		for _, p := range state.Particles[id] {
			p.Force = Vec3{}
			p.Potential = 0
			p.Temp = 0
		}
	}

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	for ti, t1 := range typeIds {
		for _, t2 := range typeIds[ti:] {
			descriptor := registry.Get(t1, t2)
			rCut := descriptor.RCut()

			particles1 := state.Particles[t1]
			particles2 := state.Particles[t2]
			sameType := t1 == t2

			if workers == 1 || len(particles1) < 2 {
				if err := evaluateTypePairSequential(state, particles1, particles2, sameType, descriptor, rCut); err != nil {
					return err
				}
				continue
			}

			if err := evaluateTypePairParallel(state, particles1, particles2, sameType, descriptor, rCut, workers); err != nil {
				return err
			}
		}
	}

	logger.Debugf("update_forces: %d types, %d particles", len(typeIds), state.TotalCount())
	return nil
}

// evaluateTypePairSequential walks every unordered pair (i in
// particles1, j in particles2) exactly once, in ascending (i, j)
// order, matching the reference reduction order.
func evaluateTypePairSequential(state *State, particles1, particles2 []*Particle, sameType bool, descriptor PotentialDescriptor, rCut float64) error {
	for i, pi := range particles1 {
		jStart := 0
		if sameType {
			jStart = i + 1
		}
		for j := jStart; j < len(particles2); j++ {
			pj := particles2[j]
			if err := accumulatePair(state, pi, pj, descriptor, rCut); err != nil {
				return err
			}
		}
	}
	return nil
}

// evaluateTypePairParallel partitions the outer index i across
// workers goroutines. Each worker owns a private delta slice so no
// two goroutines ever write the same memory; deltas are folded back
// into the particles in worker-ascending order once every worker has
// finished, keeping the reduction deterministic for a fixed worker
// count (spec §4.4 Parallelism).
func evaluateTypePairParallel(state *State, particles1, particles2 []*Particle, sameType bool, descriptor PotentialDescriptor, rCut float64, workers int) error {
	n := len(particles1)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	type workerResult struct {
		iDeltas map[*Particle]pairDelta
		jDeltas map[*Particle]pairDelta
		err     error
	}

	results := make([]workerResult, workers)
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			iDeltas := make(map[*Particle]pairDelta, end-start)
			jDeltas := make(map[*Particle]pairDelta)
			for i := start; i < end; i++ {
				pi := particles1[i]
				jStart := 0
				if sameType {
					jStart = i + 1
				}
				for j := jStart; j < len(particles2); j++ {
					pj := particles2[j]
					u, f, ok, err := evaluatePairDelta(state, pi, pj, descriptor, rCut)
					if err != nil {
						results[w].err = err
						return
					}
					if !ok {
						continue
					}
					id := iDeltas[pi]
					id.iForce = id.iForce.Add(f)
					id.iPot += u
					id.iTemp += f.Dot(state.pairVector(pi, pj))
					iDeltas[pi] = id

					jd := jDeltas[pj]
					jd.jForce = jd.jForce.Sub(f)
					jd.jPot += u
					jDeltas[pj] = jd
				}
			}
			results[w].iDeltas = iDeltas
			results[w].jDeltas = jDeltas
		}(w, start, end)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return r.err
		}
	}
	for _, r := range results {
		for p, d := range r.iDeltas {
			p.Force = p.Force.Add(d.iForce)
			p.Potential += d.iPot
			p.Temp += d.iTemp
		}
		for p, d := range r.jDeltas {
			p.Force = p.Force.Add(d.jForce)
			p.Potential += d.jPot
		}
	}
	return nil
}

// pairVector returns the minimum-image displacement from pi to pj
// under state's box.
func (s *State) pairVector(pi, pj *Particle) Vec3 {
	return MinimumImage(pi.Position, pj.Position, s.BoundaryBox)
}

// evaluatePairDelta computes the (potential, force-on-i) contribution
// of one pair, or ok=false if the pair is beyond cutoff.
func evaluatePairDelta(state *State, pi, pj *Particle, descriptor PotentialDescriptor, rCut float64) (u float64, forceOnI Vec3, ok bool, err error) {
	r := state.pairVector(pi, pj)
	dist := r.Len()
	if dist > rCut {
		return 0, Vec3{}, false, nil
	}
	uVal, fScalar, evalErr := descriptor.Evaluate(dist)
	if evalErr != nil {
		return 0, Vec3{}, false, evalErr
	}
	if dist == 0 {
		return uVal, Vec3{}, true, nil
	}
	forceOnI = r.Mul(fScalar / dist)
	return uVal, forceOnI, true, nil
}

// accumulatePair applies one pair's contribution directly onto both
// particles (sequential path, no aliasing concerns).
func accumulatePair(state *State, pi, pj *Particle, descriptor PotentialDescriptor, rCut float64) error {
	u, f, ok, err := evaluatePairDelta(state, pi, pj, descriptor, rCut)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	r := state.pairVector(pi, pj)
	pi.Force = pi.Force.Add(f)
	pj.Force = pj.Force.Sub(f)
	pi.Potential += u
	pj.Potential += u
	pi.Temp += f.Dot(r)
	return nil
}

// defaultWorkerCount mirrors the teacher's particle-emitter worker
// pool sizing (particles_ecs.go): GOMAXPROCS, capped at 8.
// evaluateTypePairParallel further caps it at the number of outer
// particles.
func defaultWorkerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n > 8 {
		n = 8
	}
	if n < 1 {
		n = 1
	}
	return n
}
