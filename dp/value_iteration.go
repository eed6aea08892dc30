package dp

import (
	"math"

	"github.com/mdpsolve/mdpsolve/mdp"
	"gonum.org/v1/gonum/floats"
)

// ValueIterationConfig tunes behavior outside the Bellman backup itself.
type ValueIterationConfig struct {
	// ZeroStates lists state indices whose value is forced to zero after the
	// sweep loop finishes. Absorbing states accumulate the reward of their
	// self-loop entry during the sweeps even though no further return can be
	// collected from them; listing them here pins their reported value.
	// Empty means no state is touched.
	ZeroStates []int
}

// LastStateOnly zeroes only the final state index, the layout convention of
// environments that place the goal in the last cell.
func LastStateOnly(m mdp.Model) ValueIterationConfig {
	return ValueIterationConfig{ZeroStates: []int{m.NumStates() - 1}}
}

// ValueIteration iterates the value function toward the Bellman optimality
// fixed point: each sweep replaces every state's value with the maximum
// one-step expected return over all actions, in place and in increasing state
// order. The loop stops once the largest per-state change falls below tol or
// after maxIterations sweeps, then the states in cfg.ZeroStates are zeroed.
// Convert the result to a policy with GreedyPolicy.
func ValueIteration(m mdp.Model, gamma float64, maxIterations int, tol float64, cfg ValueIterationConfig) (mdp.ValueFunction, int) {
	numStates := m.NumStates()
	numActions := m.NumActions()
	v := mdp.NewValueFunction(numStates)
	deltas := make([]float64, numStates)
	iterations := 0
	for iterations < maxIterations {
		iterations++
		for s := 0; s < numStates; s++ {
			best := mdp.ExpectedReturn(m, s, 0, gamma, v)
			for a := 1; a < numActions; a++ {
				expected := mdp.ExpectedReturn(m, s, a, gamma, v)
				if best < expected {
					best = expected
				}
			}
			deltas[s] = math.Abs(best - v[s])
			v[s] = best
		}
		if floats.Max(deltas) < tol {
			break
		}
	}
	for _, s := range cfg.ZeroStates {
		v[s] = 0
	}
	return v, iterations
}
