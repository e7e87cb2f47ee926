package ui

import (
	"fmt"

	"zgrid/internal/core"
)

// Lines formats the sim name and its parameter groups for display, one entry
// per line. Sims without parameters produce only the title.
func Lines(sim core.Sim) []string {
	if sim == nil {
		return nil
	}
	s := sim.Size()
	out := []string{fmt.Sprintf("%s %dx%d", sim.Name(), s.W, s.H)}
	pp, ok := sim.(core.ParameterProvider)
	if !ok {
		return out
	}
	for _, g := range pp.Parameters().Groups {
		out = append(out, "", g.Name)
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %s: %s", p.Key, p.Value))
		}
	}
	return out
}
