package cli

import "fmt"

type RoutinesCmd struct{}

func (c *RoutinesCmd) Run(ctx *Context) error {
	for _, name := range ctx.Catalog.Names() {
		r := ctx.Catalog[name]
		if r.Label != "" {
			fmt.Printf("%s (%s)\n", r.Name, r.Label)
		} else {
			fmt.Println(r.Name)
		}
		for _, ex := range r.Exercises {
			if ex.Target != "" {
				fmt.Printf("  %d x %s @ %s reps\n", ex.Sets, ex.Name, ex.Target)
			} else {
				fmt.Printf("  %d x %s\n", ex.Sets, ex.Name)
			}
		}
	}
	return nil
}
