package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftlog/internal/analysis"
)

const chartWidth = 40

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type ChartCmd struct {
	Exercise string `short:"e" help:"Chart load progression for an exercise instead of bodyweight."`
	Limit    int    `short:"n" help:"Show at most N points, newest last." default:"20"`
}

func (c *ChartCmd) Run(ctx *Context) error {
	var points []analysis.Point
	if c.Exercise != "" {
		seq, err := ctx.Aggregator().LoadProgression(c.Exercise)
		if err != nil {
			return err
		}
		for p := range seq {
			points = append(points, p)
		}
	} else {
		var err error
		points, err = ctx.Aggregator().BodyweightSeries()
		if err != nil {
			return err
		}
	}

	if len(points) == 0 {
		fmt.Println("Nothing to chart yet")
		return nil
	}
	if c.Limit > 0 && len(points) > c.Limit {
		points = points[len(points)-c.Limit:]
	}

	if c.Exercise != "" {
		fmt.Printf("Top set weight, %s (kg)\n", c.Exercise)
	} else {
		fmt.Println("Bodyweight (kg)")
	}
	renderBars(points)
	return nil
}

// renderBars draws a horizontal bar per point, scaled so the series minimum
// still gets a visible bar and the maximum fills the full width.
func renderBars(points []analysis.Point) {
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}

	for _, p := range points {
		width := chartWidth
		if hi > lo {
			width = 1 + int(float64(chartWidth-1)*(p.Value-lo)/(hi-lo))
		}
		bar := barStyle.Render(strings.Repeat("█", width))
		fmt.Printf("%s %s %s\n", labelStyle.Render(fmt.Sprintf("%6s", p.DisplayDate)), bar, fmt.Sprintf("%g", p.Value))
	}
}
