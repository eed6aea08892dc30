package benchmarks

import "github.com/spf13/cobra"

var (
	gamma         float64
	maxIterations int
	tol           float64
	savePath      string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "mdpsolve",
		Short: "Dynamic-programming solver for finite MDPs",
	}
	rootCommand.PersistentFlags().Float64VarP(&gamma, "gamma", "g", 0.9, "Discount factor, in [0,1)")
	rootCommand.PersistentFlags().IntVar(&maxIterations, "max-iterations", 1000, "Iteration cap for the solvers")
	rootCommand.PersistentFlags().Float64Var(&tol, "tol", 1e-3, "Convergence tolerance on the largest per-sweep value change")
	rootCommand.PersistentFlags().StringVarP(&savePath, "save", "s", "results", "Save reports and plots in the specified folder")
	// adding the subcommands here
	rootCommand.AddCommand(LakeCommand())
	rootCommand.AddCommand(CompareCommand())
	rootCommand.AddCommand(RolloutCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}
