package benchmarks

import (
	"fmt"

	"github.com/mdpsolve/mdpsolve/dp"
	"github.com/mdpsolve/mdpsolve/lake"
	"github.com/mdpsolve/mdpsolve/mdp"
	"github.com/mdpsolve/mdpsolve/sim"
	"github.com/spf13/cobra"
)

// Rollout solves the board, then replays the greedy policy from the start
// cell and reports the mean discounted return over the sampled episodes.
func Rollout(envName string, episodes, horizon int, seed uint64) error {
	l, err := lake.New(envName)
	if err != nil {
		return err
	}
	if err := mdp.Validate(l, gamma); err != nil {
		return fmt.Errorf("invalid model configuration: %w", err)
	}

	policy, values, _, _ := dp.PolicyIteration(l, gamma, maxIterations, tol)
	runner := sim.NewRunner(l, seed)
	mean := runner.MeanReturn(policy, l.StartState(), episodes, horizon, gamma)

	fmt.Printf("solved start-state value: %.6f\n", values[l.StartState()])
	fmt.Printf("mean discounted return over %d episodes: %.6f\n", episodes, mean)
	return nil
}

func RolloutCommand() *cobra.Command {
	var envName string
	var episodes int
	var horizon int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "rollout",
		Short: "Replay the solved policy and report mean discounted return",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Rollout(envName, episodes, horizon, seed)
		},
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "Stochastic-4x4", "Environment name (Deterministic|Stochastic)-(4x4|8x8)")
	cmd.PersistentFlags().IntVarP(&episodes, "episodes", "e", 1000, "Number of episodes to replay")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 42, "Sampling seed")
	return cmd
}
