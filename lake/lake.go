// Package lake bundles frozen-lake boards as fully tabulated MDP models.
// The agent walks a grid of frozen cells toward a goal; holes end the episode
// with nothing, reaching the goal pays 1. On slippery ice a move can veer to
// either perpendicular direction.
package lake

import (
	"fmt"
	"strings"

	"github.com/mdpsolve/mdpsolve/mdp"
)

const (
	Left = iota
	Down
	Right
	Up
	NumActions
)

// ActionNames is the display table for rendering policies over lake models.
var ActionNames = map[int]string{
	Left:  "L",
	Down:  "D",
	Right: "R",
	Up:    "U",
}

var boards = map[string][]string{
	"4x4": {
		"SFFF",
		"FHFH",
		"FFFH",
		"HFFG",
	},
	"8x8": {
		"SFFFFFFF",
		"FFFFFFFF",
		"FFFHFFFF",
		"FFFFFHFF",
		"FFFHFFFF",
		"FHHFFFHF",
		"FHFFHFHF",
		"FFFHFFFG",
	},
}

// Lake is a frozen-lake board with its transition table precomputed. States
// are cell indices in row-major order, row 0 at the top.
type Lake struct {
	Name     string
	Rows     int
	Cols     int
	Board    []string
	Slippery bool

	transitions [][][]mdp.Outcome
	start       int
}

var _ mdp.Model = &Lake{}

// New builds one of the bundled environments. Valid names combine a dynamics
// prefix with a board size: "Deterministic-4x4", "Deterministic-8x8",
// "Stochastic-4x4", "Stochastic-8x8".
func New(name string) (*Lake, error) {
	dynamics, size, found := strings.Cut(name, "-")
	if !found {
		return nil, fmt.Errorf("malformed environment name %q", name)
	}
	board, ok := boards[size]
	if !ok {
		return nil, fmt.Errorf("unknown board size %q", size)
	}
	var slippery bool
	switch dynamics {
	case "Deterministic":
		slippery = false
	case "Stochastic":
		slippery = true
	default:
		return nil, fmt.Errorf("unknown dynamics %q, want Deterministic or Stochastic", dynamics)
	}
	l, err := FromBoard(board, slippery)
	if err != nil {
		return nil, err
	}
	l.Name = name
	return l, nil
}

// FromBoard builds a lake model from a custom board. Rows must be non-empty,
// of equal width, and contain only the cells S (start), F (frozen), H (hole)
// and G (goal), with exactly one S.
func FromBoard(board []string, slippery bool) (*Lake, error) {
	if len(board) == 0 {
		return nil, fmt.Errorf("board has no rows")
	}
	cols := len(board[0])
	start := -1
	for r, row := range board {
		if len(row) != cols {
			return nil, fmt.Errorf("board row %d has width %d, want %d", r, len(row), cols)
		}
		for c, cell := range row {
			switch cell {
			case 'S':
				if start >= 0 {
					return nil, fmt.Errorf("board has more than one start cell")
				}
				start = r*cols + c
			case 'F', 'H', 'G':
			default:
				return nil, fmt.Errorf("board cell (%d,%d) is %q, want one of SFHG", r, c, cell)
			}
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("board has no start cell")
	}
	l := &Lake{
		Rows:     len(board),
		Cols:     cols,
		Board:    board,
		Slippery: slippery,
		start:    start,
	}
	l.buildTransitions()
	return l, nil
}

func (l *Lake) NumStates() int {
	return l.Rows * l.Cols
}

func (l *Lake) NumActions() int {
	return NumActions
}

func (l *Lake) Outcomes(state, action int) []mdp.Outcome {
	return l.transitions[state][action]
}

// StartState is the index of the board's S cell.
func (l *Lake) StartState() int {
	return l.start
}

func (l *Lake) cell(state int) byte {
	return l.Board[state/l.Cols][state%l.Cols]
}

// TerminalStates lists the hole and goal cells, the absorbing states of the
// board. Feed it to dp.ValueIterationConfig to pin their reported values.
func (l *Lake) TerminalStates() []int {
	terminals := make([]int, 0)
	for s := 0; s < l.NumStates(); s++ {
		if c := l.cell(s); c == 'H' || c == 'G' {
			terminals = append(terminals, s)
		}
	}
	return terminals
}

// move applies one step in the given direction, staying put at board edges.
func (l *Lake) move(state, direction int) int {
	r, c := state/l.Cols, state%l.Cols
	switch direction {
	case Left:
		c = max(0, c-1)
	case Down:
		r = min(l.Rows-1, r+1)
	case Right:
		c = min(l.Cols-1, c+1)
	case Up:
		r = max(0, r-1)
	}
	return r*l.Cols + c
}

func (l *Lake) buildTransitions() {
	numStates := l.NumStates()
	l.transitions = make([][][]mdp.Outcome, numStates)
	for s := 0; s < numStates; s++ {
		l.transitions[s] = make([][]mdp.Outcome, NumActions)
		for a := 0; a < NumActions; a++ {
			l.transitions[s][a] = l.outcomeRow(s, a)
		}
	}
}

func (l *Lake) outcomeRow(state, action int) []mdp.Outcome {
	if c := l.cell(state); c == 'H' || c == 'G' {
		// absorbing: the episode is over, nothing more is collected
		return []mdp.Outcome{{Prob: 1, NextState: state, Reward: 0, Terminal: true}}
	}
	directions := []int{action}
	if l.Slippery {
		// veer to either perpendicular direction with equal probability
		directions = []int{(action + 3) % 4, action, (action + 1) % 4}
	}
	prob := 1.0 / float64(len(directions))
	row := make([]mdp.Outcome, 0, len(directions))
	for _, d := range directions {
		next := l.move(state, d)
		nextCell := l.cell(next)
		reward := 0.0
		if nextCell == 'G' {
			reward = 1
		}
		row = append(row, mdp.Outcome{
			Prob:      prob,
			NextState: next,
			Reward:    reward,
			Terminal:  nextCell == 'H' || nextCell == 'G',
		})
	}
	return row
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
