// Package dp solves finite MDPs with the classical dynamic-programming
// procedures: iterative policy evaluation, greedy policy extraction, policy
// iteration, and value iteration. All procedures are deterministic and
// single-threaded; distinct solves share no state.
package dp

import (
	"math"

	"github.com/mdpsolve/mdpsolve/mdp"
	"gonum.org/v1/gonum/floats"
)

// EvaluatePolicy computes the value function of a fixed policy by repeated
// synchronous sweeps. Updates are applied in place in increasing state order,
// so later states in a sweep see values already updated this sweep. The sweep
// loop stops once the largest per-state change falls below tol or after
// maxIterations sweeps; hitting the cap is not an error, callers compare the
// returned sweep count against maxIterations to detect non-convergence.
//
// v is mutated in place and returned.
func EvaluatePolicy(m mdp.Model, gamma float64, policy mdp.Policy, v mdp.ValueFunction, maxIterations int, tol float64) (mdp.ValueFunction, int) {
	numStates := m.NumStates()
	deltas := make([]float64, numStates)
	iterations := 0
	for iterations < maxIterations {
		iterations++
		for s := 0; s < numStates; s++ {
			expected := mdp.ExpectedReturn(m, s, policy[s], gamma, v)
			deltas[s] = math.Abs(expected - v[s])
			v[s] = expected
		}
		if floats.Max(deltas) < tol {
			break
		}
	}
	return v, iterations
}
