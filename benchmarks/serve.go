package benchmarks

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdpsolve/mdpsolve/dp"
	"github.com/mdpsolve/mdpsolve/lake"
	"github.com/mdpsolve/mdpsolve/mdp"
	"github.com/spf13/cobra"
)

// Serve solves the board once and exposes the result over HTTP for
// inspection: the model shape, the greedy policy, the value function, and a
// rendered board.
func Serve(envName, addr string) error {
	l, err := lake.New(envName)
	if err != nil {
		return err
	}
	if err := mdp.Validate(l, gamma); err != nil {
		return fmt.Errorf("invalid model configuration: %w", err)
	}

	policy, values, _, _ := dp.PolicyIteration(l, gamma, maxIterations, tol)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/model", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"env":         envName,
			"num_states":  l.NumStates(),
			"num_actions": l.NumActions(),
			"gamma":       gamma,
			"terminal":    l.TerminalStates(),
		})
	})
	r.GET("/policy", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"policy": policy,
			"labels": mdp.FormatPolicy(policy, lake.ActionNames),
		})
	})
	r.GET("/values", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"values": values})
	})
	r.GET("/board", func(c *gin.Context) {
		c.String(http.StatusOK, lake.RenderBoard(l, policy))
	})

	fmt.Printf("serving solved %s on %s\n", envName, addr)
	return r.Run(addr)
}

func ServeCommand() *cobra.Command {
	var envName string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Solve a board and serve the result over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Serve(envName, addr)
		},
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "Deterministic-4x4", "Environment name (Deterministic|Stochastic)-(4x4|8x8)")
	cmd.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:8080", "Address to listen on")
	return cmd
}
