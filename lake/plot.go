package lake

import (
	"github.com/mdpsolve/mdpsolve/mdp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ValueDataSet adapts a solved value function to the plotter grid interface,
// keeping the board orientation (row 0 of the board at the top of the plot).
type ValueDataSet struct {
	Lake   *Lake
	Values mdp.ValueFunction
}

var _ plotter.GridXYZ = &ValueDataSet{}

func (d *ValueDataSet) Dims() (int, int) {
	return d.Lake.Cols, d.Lake.Rows
}

func (d *ValueDataSet) Z(c, r int) float64 {
	return d.Values[(d.Lake.Rows-1-r)*d.Lake.Cols+c]
}

func (d *ValueDataSet) X(c int) float64 {
	return float64(c)
}

func (d *ValueDataSet) Y(r int) float64 {
	return float64(r)
}

func (d *ValueDataSet) Min() float64 {
	min := d.Values[0]
	for _, v := range d.Values {
		if v < min {
			min = v
		}
	}
	return min
}

func (d *ValueDataSet) Max() float64 {
	max := d.Values[0]
	for _, v := range d.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// SaveHeatmap writes the value function as a heatmap image. The format is
// inferred from the file extension.
func SaveHeatmap(l *Lake, v mdp.ValueFunction, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row"
	p.Add(plotter.NewHeatMap(&ValueDataSet{Lake: l, Values: v}, palette.Heat(16, 1)))
	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
