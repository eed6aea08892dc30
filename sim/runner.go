// Package sim replays a solved policy against a model by sampling transitions
// from the declared outcome distributions. It estimates nothing; the solver
// already computed the values, sim shows what the policy does.
package sim

import (
	"github.com/mdpsolve/mdpsolve/mdp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

type Runner struct {
	model mdp.Model
	rng   *rand.Rand
}

// NewRunner creates a runner over the model. The seed fixes the sampling
// sequence, so repeated runs with the same seed produce identical traces.
func NewRunner(m mdp.Model, seed uint64) *Runner {
	return &Runner{
		model: m,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// RunEpisode follows policy from the start state for at most horizon steps,
// sampling each transition from the model's outcome row. It returns the trace
// and the discounted return collected along it. The episode ends early when a
// terminal outcome is drawn.
func (r *Runner) RunEpisode(policy mdp.Policy, start, horizon int, gamma float64) (*Trace, float64) {
	trace := NewTrace()
	state := start
	ret := 0.0
	discount := 1.0
	for step := 0; step < horizon; step++ {
		action := policy[state]
		outcomes := r.model.Outcomes(state, action)
		weights := make([]float64, len(outcomes))
		for i, o := range outcomes {
			weights[i] = o.Prob
		}
		i, ok := sampleuv.NewWeighted(weights, r.rng).Take()
		if !ok {
			break
		}
		o := outcomes[i]
		trace.Append(state, action, o.Reward)
		ret += discount * o.Reward
		discount *= gamma
		if o.Terminal {
			break
		}
		state = o.NextState
	}
	return trace, ret
}

// MeanReturn runs episodes rollouts and averages their discounted returns.
func (r *Runner) MeanReturn(policy mdp.Policy, start, episodes, horizon int, gamma float64) float64 {
	total := 0.0
	for i := 0; i < episodes; i++ {
		_, ret := r.RunEpisode(policy, start, horizon, gamma)
		total += ret
	}
	return total / float64(episodes)
}
