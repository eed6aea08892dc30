package mdp

import (
	"fmt"
	"math"
)

// rows are allowed to drift from 1 by float summation error
const probSumTolerance = 1e-9

// Validate checks a model and discount factor before any solver touches them.
// The solvers themselves trust their inputs; this is the fail-fast boundary
// for models assembled from external configuration.
func Validate(m Model, gamma float64) error {
	if gamma < 0 || gamma >= 1 {
		return fmt.Errorf("discount factor must be in [0,1), got %v", gamma)
	}
	numStates := m.NumStates()
	numActions := m.NumActions()
	if numStates <= 0 {
		return fmt.Errorf("model must have at least one state, got %d", numStates)
	}
	if numActions <= 0 {
		return fmt.Errorf("model must have at least one action, got %d", numActions)
	}
	for s := 0; s < numStates; s++ {
		for a := 0; a < numActions; a++ {
			outcomes := m.Outcomes(s, a)
			if len(outcomes) == 0 {
				return fmt.Errorf("state %d action %d has no outcomes", s, a)
			}
			sum := 0.0
			for i, o := range outcomes {
				if o.Prob < 0 || o.Prob > 1 {
					return fmt.Errorf("state %d action %d outcome %d: probability %v out of range", s, a, i, o.Prob)
				}
				if o.NextState < 0 || o.NextState >= numStates {
					return fmt.Errorf("state %d action %d outcome %d: next state %d out of range [0,%d)", s, a, i, o.NextState, numStates)
				}
				sum += o.Prob
			}
			if math.Abs(sum-1) > probSumTolerance {
				return fmt.Errorf("state %d action %d: outcome probabilities sum to %v, want 1", s, a, sum)
			}
		}
	}
	return nil
}
