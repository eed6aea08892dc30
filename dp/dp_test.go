package dp

import (
	"math"
	"testing"

	"github.com/mdpsolve/mdpsolve/lake"
	"github.com/mdpsolve/mdpsolve/mdp"
	"github.com/stretchr/testify/require"
)

// tableModel is a literal transition table indexed [state][action].
type tableModel struct {
	numActions int
	rows       [][][]mdp.Outcome
}

func (m *tableModel) NumStates() int  { return len(m.rows) }
func (m *tableModel) NumActions() int { return m.numActions }
func (m *tableModel) Outcomes(state, action int) []mdp.Outcome {
	return m.rows[state][action]
}

// state 0 moves to state 1 for reward 1; state 1 absorbs.
func chainModel() *tableModel {
	return &tableModel{
		numActions: 1,
		rows: [][][]mdp.Outcome{
			{{{Prob: 1, NextState: 1, Reward: 1, Terminal: false}}},
			{{{Prob: 1, NextState: 1, Reward: 0, Terminal: true}}},
		},
	}
}

func TestEvaluatePolicyChain(t *testing.T) {
	m := chainModel()
	v, iterations := EvaluatePolicy(m, 0.9, mdp.NewPolicy(2), mdp.NewValueFunction(2), 100, 1e-6)

	require.Equal(t, 0.0, float64(v[1]), "absorbing state keeps value zero")
	require.InDelta(t, 1.0, v[0], 1e-6)
	require.LessOrEqual(t, iterations, 3, "chain should converge in a couple of sweeps")
}

func TestEvaluatePolicyRespectsIterationCap(t *testing.T) {
	// reward 1 on a non-terminal self-loop never converges below a tiny tol
	// within 3 sweeps; the cap is reported, not an error
	m := &tableModel{
		numActions: 1,
		rows: [][][]mdp.Outcome{
			{{{Prob: 1, NextState: 0, Reward: 1, Terminal: false}}},
		},
	}
	_, iterations := EvaluatePolicy(m, 0.99, mdp.NewPolicy(1), mdp.NewValueFunction(1), 3, 1e-12)
	require.Equal(t, 3, iterations)
}

func TestEvaluatePolicySweepOrderIsGaussSeidel(t *testing.T) {
	// state 1 reads state 0's value updated earlier in the same sweep; a
	// double-buffered update would leave v[1] at zero after one sweep
	m := &tableModel{
		numActions: 1,
		rows: [][][]mdp.Outcome{
			{{{Prob: 1, NextState: 0, Reward: 1, Terminal: true}}},
			{{{Prob: 1, NextState: 0, Reward: 0, Terminal: false}}},
		},
	}
	v, _ := EvaluatePolicy(m, 0.9, mdp.NewPolicy(2), mdp.NewValueFunction(2), 1, 1e-9)
	require.Equal(t, 1.0, float64(v[0]))
	require.Equal(t, 0.9, float64(v[1]))
}

func TestEvaluatePolicyFixedPoint(t *testing.T) {
	l, err := lake.New("Stochastic-4x4")
	require.NoError(t, err)

	policy := mdp.NewPolicy(l.NumStates())
	for s := range policy {
		policy[s] = s % l.NumActions()
	}
	v, iterations := EvaluatePolicy(l, 0.9, policy, mdp.NewValueFunction(l.NumStates()), 10000, 1e-10)
	require.Less(t, iterations, 10000)

	for s := 0; s < l.NumStates(); s++ {
		residual := math.Abs(v[s] - mdp.ExpectedReturn(l, s, policy[s], 0.9, v))
		require.Less(t, residual, 1e-6, "state %d violates the fixed point", s)
	}
}

func TestGreedyPolicyBreaksTiesToLowerActionIndex(t *testing.T) {
	m := &tableModel{
		numActions: 2,
		rows: [][][]mdp.Outcome{
			{
				{{Prob: 1, NextState: 0, Reward: 1, Terminal: true}},
				{{Prob: 1, NextState: 0, Reward: 1, Terminal: true}},
			},
		},
	}
	policy := GreedyPolicy(m, 0.9, mdp.NewValueFunction(1))
	require.Equal(t, mdp.Policy{0}, policy)
}

func TestImprovePolicyReportsChange(t *testing.T) {
	m := &tableModel{
		numActions: 2,
		rows: [][][]mdp.Outcome{
			{
				{{Prob: 1, NextState: 0, Reward: 1, Terminal: true}},
				{{Prob: 1, NextState: 0, Reward: 2, Terminal: true}},
			},
		},
	}
	v := mdp.NewValueFunction(1)
	changed, policy := ImprovePolicy(m, 0.9, v, mdp.Policy{0})
	require.True(t, changed)
	require.Equal(t, mdp.Policy{1}, policy)

	changed, _ = ImprovePolicy(m, 0.9, v, policy)
	require.False(t, changed)
}

func TestValueIterationPicksBetterTerminalAction(t *testing.T) {
	m := &tableModel{
		numActions: 2,
		rows: [][][]mdp.Outcome{
			{
				{{Prob: 1, NextState: 0, Reward: 1, Terminal: true}},
				{{Prob: 1, NextState: 0, Reward: 2, Terminal: true}},
			},
		},
	}
	v, iterations := ValueIteration(m, 0.9, 100, 1e-6, ValueIterationConfig{})
	require.InDelta(t, 2.0, v[0], 1e-9)
	require.Equal(t, 2, iterations)
	require.Equal(t, mdp.Policy{1}, GreedyPolicy(m, 0.9, v))

	// the sole state is also the last state, so the legacy last-index
	// convention wipes the converged value
	v, _ = ValueIteration(m, 0.9, 100, 1e-6, LastStateOnly(m))
	require.Equal(t, 0.0, float64(v[0]))
}

func TestValueIterationBellmanOptimality(t *testing.T) {
	l, err := lake.New("Deterministic-4x4")
	require.NoError(t, err)

	v, iterations := ValueIteration(l, 0.9, 10000, 1e-10, ValueIterationConfig{})
	require.Less(t, iterations, 10000)

	for s := 0; s < l.NumStates(); s++ {
		best := mdp.ExpectedReturn(l, s, 0, 0.9, v)
		for a := 1; a < l.NumActions(); a++ {
			if expected := mdp.ExpectedReturn(l, s, a, 0.9, v); expected > best {
				best = expected
			}
		}
		require.Less(t, math.Abs(v[s]-best), 1e-6, "state %d violates Bellman optimality", s)
	}
}

func TestValueIterationZeroStates(t *testing.T) {
	l, err := lake.New("Deterministic-4x4")
	require.NoError(t, err)

	v, _ := ValueIteration(l, 0.9, 10000, 1e-10, ValueIterationConfig{ZeroStates: l.TerminalStates()})
	for _, s := range l.TerminalStates() {
		require.Equal(t, 0.0, float64(v[s]))
	}
}

func TestPolicyIterationMonotoneImprovement(t *testing.T) {
	l, err := lake.New("Stochastic-4x4")
	require.NoError(t, err)
	gamma := 0.9

	policy := mdp.NewPolicy(l.NumStates())
	v := mdp.NewValueFunction(l.NumStates())
	var prev mdp.ValueFunction
	for round := 0; round < 50; round++ {
		v, _ = EvaluatePolicy(l, gamma, policy, v, 10000, 1e-10)
		if prev != nil {
			for s := range v {
				require.GreaterOrEqual(t, v[s], prev[s]-1e-6,
					"round %d worsened state %d", round, s)
			}
		}
		prev = v.Copy()
		var changed bool
		changed, policy = ImprovePolicy(l, gamma, v, policy)
		if !changed {
			break
		}
	}
}

func TestPolicyIterationTerminatesAndStabilizes(t *testing.T) {
	l, err := lake.New("Deterministic-8x8")
	require.NoError(t, err)

	policy, v, improveIterations, evalIterations := PolicyIteration(l, 0.9, 1000, 1e-8)
	require.Less(t, improveIterations, 1000)
	require.GreaterOrEqual(t, evalIterations, improveIterations)

	changed, _ := ImprovePolicy(l, 0.9, v, policy)
	require.False(t, changed, "returned policy must be greedy for its own value function")
}

func TestSolversAreDeterministic(t *testing.T) {
	l, err := lake.New("Stochastic-8x8")
	require.NoError(t, err)

	p1, v1, improve1, eval1 := PolicyIteration(l, 0.9, 1000, 1e-8)
	p2, v2, improve2, eval2 := PolicyIteration(l, 0.9, 1000, 1e-8)
	require.Equal(t, p1, p2)
	require.Equal(t, v1, v2)
	require.Equal(t, improve1, improve2)
	require.Equal(t, eval1, eval2)

	u1, i1 := ValueIteration(l, 0.9, 1000, 1e-8, LastStateOnly(l))
	u2, i2 := ValueIteration(l, 0.9, 1000, 1e-8, LastStateOnly(l))
	require.Equal(t, u1, u2)
	require.Equal(t, i1, i2)
}

func TestPolicyAndValueIterationAgree(t *testing.T) {
	for _, name := range []string{"Deterministic-4x4", "Stochastic-4x4"} {
		l, err := lake.New(name)
		require.NoError(t, err)

		_, piV, _, _ := PolicyIteration(l, 0.9, 10000, 1e-10)
		viV, _ := ValueIteration(l, 0.9, 10000, 1e-10, ValueIterationConfig{})
		viPolicy := GreedyPolicy(l, 0.9, viV)

		for s := 0; s < l.NumStates(); s++ {
			require.InDelta(t, viV[s], piV[s], 1e-6, "%s: value mismatch at state %d", name, s)
		}

		// the greedy policy of the value-iteration solution achieves the
		// optimal values when evaluated from scratch
		achieved, _ := EvaluatePolicy(l, 0.9, viPolicy, mdp.NewValueFunction(l.NumStates()), 10000, 1e-10)
		for s := 0; s < l.NumStates(); s++ {
			require.InDelta(t, piV[s], achieved[s], 1e-6, "%s: greedy policy suboptimal at state %d", name, s)
		}
	}
}
