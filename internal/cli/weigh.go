package cli

import (
	"fmt"

	"github.com/julianstephens/liftlog/internal/validation"
)

type WeighCmd struct {
	Weight string `arg:"" help:"Body weight in kg."`
	Date   string `short:"d" help:"Measurement date (YYYY-MM-DD). Defaults to today."`
}

func (c *WeighCmd) Run(ctx *Context) error {
	weight := validation.ParseWeight(c.Weight)
	if weight == nil {
		return fmt.Errorf("invalid weight %q", c.Weight)
	}

	entry, err := ctx.Sessions().RecordBodyweight(DateOrToday(c.Date), *weight)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %gkg for %s (week %d)\n", entry.Weight, entry.Date, entry.WeekNumber)
	return nil
}
