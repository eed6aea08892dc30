package lake

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/mdpsolve/mdpsolve/mdp"
)

// RenderBoard draws the board with the policy's action letter in every
// walkable cell. Holes are red, the goal green, the start cell shows its
// action in cyan.
func RenderBoard(l *Lake, policy mdp.Policy) string {
	labels := mdp.FormatPolicy(policy, ActionNames)
	var b strings.Builder
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			s := r*l.Cols + c
			switch l.cell(s) {
			case 'H':
				fmt.Fprintf(&b, "%s ", aurora.Red("H"))
			case 'G':
				fmt.Fprintf(&b, "%s ", aurora.Green("G"))
			case 'S':
				fmt.Fprintf(&b, "%s ", aurora.Cyan(labels[s]))
			default:
				fmt.Fprintf(&b, "%s ", labels[s])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
