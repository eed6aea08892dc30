package dp

import (
	"github.com/mdpsolve/mdpsolve/mdp"
)

// PolicyIteration alternates policy evaluation and greedy improvement from
// the all-zero-action policy until the policy stops changing or maxIterations
// improvement rounds have run. It returns the final policy and value
// function, the number of improvement rounds, and the total number of
// evaluation sweeps across all rounds. As with EvaluatePolicy, exhausting the
// round budget is not an error.
func PolicyIteration(m mdp.Model, gamma float64, maxIterations int, tol float64) (mdp.Policy, mdp.ValueFunction, int, int) {
	policy := mdp.NewPolicy(m.NumStates())
	v := mdp.NewValueFunction(m.NumStates())
	improveIterations := 0
	evalIterations := 0
	for i := 0; i < maxIterations; i++ {
		var sweeps int
		v, sweeps = EvaluatePolicy(m, gamma, policy, v, maxIterations, tol)
		evalIterations += sweeps
		var changed bool
		changed, policy = ImprovePolicy(m, gamma, v, policy)
		improveIterations++
		if !changed {
			break
		}
	}
	return policy, v, improveIterations, evalIterations
}
