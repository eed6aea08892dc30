package dp

import (
	"github.com/mdpsolve/mdpsolve/mdp"
)

// GreedyPolicy extracts the greedy policy with respect to v: in each state
// the action with the highest one-step expected return. Ties keep the lowest
// action index, so the extraction is deterministic for a given model and
// value function.
func GreedyPolicy(m mdp.Model, gamma float64, v mdp.ValueFunction) mdp.Policy {
	policy := mdp.NewPolicy(m.NumStates())
	numActions := m.NumActions()
	for s := range policy {
		best := mdp.ExpectedReturn(m, s, 0, gamma, v)
		for a := 1; a < numActions; a++ {
			expected := mdp.ExpectedReturn(m, s, a, gamma, v)
			if best < expected {
				best = expected
				policy[s] = a
			}
		}
	}
	return policy
}

// ImprovePolicy replaces old with the greedy policy for v and reports whether
// any state's action changed. old is not modified.
func ImprovePolicy(m mdp.Model, gamma float64, v mdp.ValueFunction, old mdp.Policy) (bool, mdp.Policy) {
	improved := GreedyPolicy(m, gamma, v)
	return !improved.Eq(old), improved
}
