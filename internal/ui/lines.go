package ui

import "canvas-life/internal/core"

// hudLines flattens a parameter snapshot into the text rows shown on the HUD.
func hudLines(snap core.ParameterSnapshot, paused bool) []string {
	var lines []string
	for i, group := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	state := "running"
	if paused {
		state = "paused"
	}
	return append(lines, "", state)
}
