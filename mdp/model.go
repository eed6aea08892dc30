package mdp

// Outcome is one entry of the transition table for a (state, action) pair:
// with probability Prob the agent lands in NextState and collects Reward.
// Terminal marks outcomes that end the episode.
type Outcome struct {
	Prob      float64 `json:"prob"`
	NextState int     `json:"next_state"`
	Reward    float64 `json:"reward"`
	Terminal  bool    `json:"terminal"`
}

// Model is the full dynamics of a finite MDP. States and actions are dense
// integer indices. Implementations are read-only for the duration of a solve.
type Model interface {
	NumStates() int
	NumActions() int
	// Outcomes lists the possible transitions for taking action in state.
	// The order of the returned slice is fixed for a given model.
	Outcomes(state, action int) []Outcome
}

// Policy maps each state index to the action taken there.
type Policy []int

// ValueFunction maps each state index to its estimated discounted return.
type ValueFunction []float64

// NewPolicy returns the all-zero-action policy over numStates states.
func NewPolicy(numStates int) Policy {
	return make(Policy, numStates)
}

// NewValueFunction returns the all-zero value function over numStates states.
func NewValueFunction(numStates int) ValueFunction {
	return make(ValueFunction, numStates)
}

// Eq reports whether two policies pick the same action in every state.
func (p Policy) Eq(other Policy) bool {
	if len(p) != len(other) {
		return false
	}
	for s, a := range p {
		if other[s] != a {
			return false
		}
	}
	return true
}

// Copy returns a policy that can be mutated independently.
func (p Policy) Copy() Policy {
	c := make(Policy, len(p))
	copy(c, p)
	return c
}

// Copy returns a value function that can be mutated independently.
func (v ValueFunction) Copy() ValueFunction {
	c := make(ValueFunction, len(v))
	copy(c, v)
	return c
}

// ExpectedReturn is the one-step Bellman backup: the probability-weighted sum
// of reward plus discounted continuation value over all outcomes of taking
// action in state. Terminal outcomes contribute no continuation value,
// whatever v holds for their next state.
func ExpectedReturn(m Model, state, action int, gamma float64, v ValueFunction) float64 {
	expected := 0.0
	for _, o := range m.Outcomes(state, action) {
		if o.Terminal {
			expected += o.Prob * o.Reward
		} else {
			expected += o.Prob * (o.Reward + gamma*v[o.NextState])
		}
	}
	return expected
}
