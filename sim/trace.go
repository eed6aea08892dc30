package sim

// Trace of an episode as parallel slices of (state, action, reward) per step.
type Trace struct {
	states  []int
	actions []int
	rewards []float64
}

func NewTrace() *Trace {
	return &Trace{
		states:  make([]int, 0),
		actions: make([]int, 0),
		rewards: make([]float64, 0),
	}
}

func (t *Trace) Append(state, action int, reward float64) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.rewards = append(t.rewards, reward)
}

func (t *Trace) Len() int {
	return len(t.states)
}

func (t *Trace) Get(i int) (int, int, float64, bool) {
	if i >= len(t.states) {
		return 0, 0, 0, false
	}
	return t.states[i], t.actions[i], t.rewards[i], true
}

func (t *Trace) Last() (int, int, float64, bool) {
	if len(t.states) < 1 {
		return 0, 0, 0, false
	}
	last := len(t.states) - 1
	return t.states[last], t.actions[last], t.rewards[last], true
}
