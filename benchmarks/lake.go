package benchmarks

import (
	"fmt"
	"path"

	"github.com/mdpsolve/mdpsolve/dp"
	"github.com/mdpsolve/mdpsolve/lake"
	"github.com/mdpsolve/mdpsolve/mdp"
	"github.com/mdpsolve/mdpsolve/util"
	"github.com/spf13/cobra"
)

type lakeReport struct {
	Env                   string         `json:"env"`
	Gamma                 float64        `json:"gamma"`
	PolicyIteration       solveResult    `json:"policy_iteration"`
	ValueIteration        solveResult    `json:"value_iteration"`
	PoliciesAgree         bool           `json:"policies_agree"`
	ImprovementIterations int            `json:"improvement_iterations"`
	EvaluationIterations  int            `json:"evaluation_iterations"`
	ValueSweepIterations  int            `json:"value_sweep_iterations"`
	ValueIterationZeroed  []int          `json:"value_iteration_zeroed"`
	ActionNames           map[int]string `json:"action_names"`
}

type solveResult struct {
	Policy mdp.Policy        `json:"policy"`
	Values mdp.ValueFunction `json:"values"`
	Labels []string          `json:"labels"`
}

// SolveLake runs both policy iteration and value iteration on the named board
// and reports the resulting policies side by side.
func SolveLake(envName string) error {
	l, err := lake.New(envName)
	if err != nil {
		return err
	}
	if err := mdp.Validate(l, gamma); err != nil {
		return fmt.Errorf("invalid model configuration: %w", err)
	}

	piPolicy, piValues, improveIterations, evalIterations := dp.PolicyIteration(l, gamma, maxIterations, tol)
	fmt.Printf("policy iteration: %d improvement rounds, %d evaluation sweeps\n", improveIterations, evalIterations)
	if improveIterations >= maxIterations {
		fmt.Printf("warning: policy iteration did not stabilize within %d rounds\n", maxIterations)
	}
	fmt.Println(lake.RenderBoard(l, piPolicy))

	zeroed := l.TerminalStates()
	viValues, viIterations := dp.ValueIteration(l, gamma, maxIterations, tol, dp.ValueIterationConfig{ZeroStates: zeroed})
	viPolicy := dp.GreedyPolicy(l, gamma, viValues)
	fmt.Printf("value iteration: %d sweeps\n", viIterations)
	if viIterations >= maxIterations {
		fmt.Printf("warning: value iteration did not converge within %d sweeps\n", maxIterations)
	}
	fmt.Println(lake.RenderBoard(l, viPolicy))

	agree := piPolicy.Eq(viPolicy)
	fmt.Printf("policies agree: %v\n", agree)

	if err := util.EnsureDir(savePath); err != nil {
		return err
	}
	heatmap := path.Join(savePath, envName+"_values.png")
	if err := lake.SaveHeatmap(l, viValues, envName, heatmap); err != nil {
		return fmt.Errorf("saving heatmap: %w", err)
	}
	report := lakeReport{
		Env:   envName,
		Gamma: gamma,
		PolicyIteration: solveResult{
			Policy: piPolicy,
			Values: piValues,
			Labels: mdp.FormatPolicy(piPolicy, lake.ActionNames),
		},
		ValueIteration: solveResult{
			Policy: viPolicy,
			Values: viValues,
			Labels: mdp.FormatPolicy(viPolicy, lake.ActionNames),
		},
		PoliciesAgree:         agree,
		ImprovementIterations: improveIterations,
		EvaluationIterations:  evalIterations,
		ValueSweepIterations:  viIterations,
		ValueIterationZeroed:  zeroed,
		ActionNames:           lake.ActionNames,
	}
	return util.SaveJSON(path.Join(savePath, envName+"_report.json"), report)
}

func LakeCommand() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "lake",
		Short: "Solve a frozen-lake board with policy iteration and value iteration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return SolveLake(envName)
		},
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "Deterministic-4x4", "Environment name (Deterministic|Stochastic)-(4x4|8x8)")
	return cmd
}
