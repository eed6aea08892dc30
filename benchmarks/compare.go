package benchmarks

import (
	"fmt"
	"path"

	"github.com/mdpsolve/mdpsolve/dp"
	"github.com/mdpsolve/mdpsolve/lake"
	"github.com/mdpsolve/mdpsolve/mdp"
	"github.com/mdpsolve/mdpsolve/util"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CompareGammas solves the board once per discount factor and plots how the
// start-state value and the solver effort respond.
func CompareGammas(envName string, gammas []float64) error {
	l, err := lake.New(envName)
	if err != nil {
		return err
	}

	startValues := make(plotter.XYs, 0, len(gammas))
	improveRounds := make(plotter.XYs, 0, len(gammas))
	valueSweeps := make(plotter.XYs, 0, len(gammas))
	for _, g := range gammas {
		if err := mdp.Validate(l, g); err != nil {
			return fmt.Errorf("invalid model configuration: %w", err)
		}
		_, piValues, improveIterations, _ := dp.PolicyIteration(l, g, maxIterations, tol)
		_, viIterations := dp.ValueIteration(l, g, maxIterations, tol, dp.ValueIterationConfig{ZeroStates: l.TerminalStates()})

		start := l.StartState()
		fmt.Printf("gamma=%.3f start-state value: %.6f (%d improvement rounds, %d value sweeps)\n",
			g, piValues[start], improveIterations, viIterations)
		startValues = append(startValues, plotter.XY{X: g, Y: piValues[start]})
		improveRounds = append(improveRounds, plotter.XY{X: g, Y: float64(improveIterations)})
		valueSweeps = append(valueSweeps, plotter.XY{X: g, Y: float64(viIterations)})
	}

	if err := util.EnsureDir(savePath); err != nil {
		return err
	}
	if err := saveLinePlot(
		path.Join(savePath, envName+"_start_value.png"),
		"Start-state value", "Gamma", "Value",
		[]namedSeries{{"Policy iteration", startValues}},
	); err != nil {
		return err
	}
	return saveLinePlot(
		path.Join(savePath, envName+"_iterations.png"),
		"Solver effort", "Gamma", "Iterations",
		[]namedSeries{
			{"Improvement rounds", improveRounds},
			{"Value sweeps", valueSweeps},
		},
	)
}

type namedSeries struct {
	name   string
	points plotter.XYs
}

func saveLinePlot(figPath, title, xLabel, yLabel string, series []namedSeries) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	for i, s := range series {
		line, err := plotter.NewLine(s.points)
		if err != nil {
			continue
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	return p.Save(8*vg.Inch, 8*vg.Inch, figPath)
}

func CompareCommand() *cobra.Command {
	var envName string
	var gammas []float64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Sweep discount factors and plot value and solver effort",
		RunE: func(cmd *cobra.Command, args []string) error {
			return CompareGammas(envName, gammas)
		},
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "Deterministic-4x4", "Environment name (Deterministic|Stochastic)-(4x4|8x8)")
	cmd.PersistentFlags().Float64SliceVar(&gammas, "gammas", []float64{0.5, 0.7, 0.9, 0.99}, "Discount factors to compare")
	return cmd
}
