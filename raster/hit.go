package raster

import "github.com/phanxgames/bramble/dom"

// HitTest returns the element of the topmost command containing (x, y), or
// nil. Commands are tested from last to first since later commands paint on
// top. Unpainted shapes are hit too, so a transparent rectangle works as a
// hit box.
func HitTest(commands []Command, x, y float64) *dom.Element {
	for i := len(commands) - 1; i >= 0; i-- {
		cmd := &commands[i]
		if contains(cmd, x, y) {
			return cmd.Element
		}
	}
	return nil
}

func contains(cmd *Command, x, y float64) bool {
	switch cmd.Type {
	case CommandCircle:
		dx := x - cmd.X
		dy := y - cmd.Y
		return dx*dx+dy*dy <= cmd.Radius*cmd.Radius
	default:
		return cmd.Bounds().Contains(x, y)
	}
}
