package engine

import "fmt"

// maxCascadeIterations bounds a single resolution. Random refills make an
// endless cascade vanishingly unlikely; hitting the bound is reported.
const maxCascadeIterations = 1024

// StepKind identifies a resolution snapshot.
type StepKind uint8

const (
	StepDestroyed StepKind = iota
	StepSpawned
	StepSettled
)

func (k StepKind) String() string {
	switch k {
	case StepDestroyed:
		return "Destroyed"
	case StepSpawned:
		return "Spawned"
	case StepSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// Step is one observable stage of a cascade iteration. Grid is a private
// snapshot taken after the stage was applied.
type Step struct {
	Kind      StepKind
	Iteration int
	Chain     int
	Grid      *Grid

	// Destroyed steps only.
	Matches   []MatchSet
	Destroyed []Position
	Awarded   int

	// Spawned steps only.
	Spawn Spawn
}

// Resolution is the full record of one swap's cascade.
type Resolution struct {
	steps      []Step
	Awarded    int
	Iterations int
	FinalChain int
}

// Len returns the number of recorded steps.
func (r *Resolution) Len() int {
	return len(r.steps)
}

// Steps returns a fresh iterator positioned before the first step.
func (r *Resolution) Steps() *StepIterator {
	return &StepIterator{steps: r.steps}
}

func (r *Resolution) record(s Step) {
	r.steps = append(r.steps, s)
}

// StepIterator walks a resolution at the consumer's pace.
type StepIterator struct {
	steps []Step
	pos   int
}

// Next returns the next step, or false once the sequence is exhausted.
func (it *StepIterator) Next() (Step, bool) {
	if it.pos >= len(it.steps) {
		return Step{}, false
	}
	s := it.steps[it.pos]
	it.pos++
	return s, true
}

// Reset rewinds the iterator to the first step.
func (it *StepIterator) Reset() {
	it.pos = 0
}

// Remaining returns how many steps have not been consumed.
func (it *StepIterator) Remaining() int {
	return len(it.steps) - it.pos
}

// Resolve runs the cascade loop on g until no match remains:
// scan, destroy with special propagation, spawn, settle, raise the chain.
// The chain starts at 1 for the first iteration. g is mutated in place and
// ends settled and full.
func Resolve(g *Grid, f *TileFactory) (*Resolution, error) {
	res := &Resolution{FinalChain: 1}
	chain := 1

	for iter := 1; ; iter++ {
		if gaps := g.Gaps(); len(gaps) > 0 {
			return res, &InvariantViolation{
				Op:     "resolve",
				Detail: fmt.Sprintf("%d empty cells before scan in iteration %d", len(gaps), iter),
			}
		}
		if iter > maxCascadeIterations {
			return res, &InvariantViolation{
				Op:     "resolve",
				Detail: fmt.Sprintf("cascade did not stabilize after %d iterations", maxCascadeIterations),
			}
		}

		sets := Scan(g)
		if len(sets) == 0 {
			break
		}

		matched := Union(sets)
		destroy := Expand(g, matched)
		awarded := Award(len(matched), len(destroy), chain)
		for p := range destroy {
			g.Clear(p)
		}
		res.Awarded += awarded
		res.record(Step{
			Kind:      StepDestroyed,
			Iteration: iter,
			Chain:     chain,
			Grid:      g.Clone(),
			Matches:   sets,
			Destroyed: destroy.Sorted(),
			Awarded:   awarded,
		})

		if sp, ok := PlanSpawn(matched, f); ok {
			g.Set(sp.Target, sp.Tile)
			res.record(Step{
				Kind:      StepSpawned,
				Iteration: iter,
				Chain:     chain,
				Grid:      g.Clone(),
				Spawn:     sp,
			})
		}

		g.Settle(f)
		res.record(Step{
			Kind:      StepSettled,
			Iteration: iter,
			Chain:     chain,
			Grid:      g.Clone(),
		})

		chain = nextChain(chain)
		res.Iterations = iter
		res.FinalChain = chain
	}
	return res, nil
}
