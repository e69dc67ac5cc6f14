package raster

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/bramble/dom"
)

// strokeWidth is the SVG default stroke width.
const strokeWidth = 1

// Draw submits commands to dst in order, so later commands paint over
// earlier ones. Text is drawn with faces from fm.
func Draw(dst *ebiten.Image, commands []Command, fm *dom.FaceMeasurer) {
	for i := range commands {
		cmd := &commands[i]
		switch cmd.Type {
		case CommandRect:
			x, y := float32(cmd.X), float32(cmd.Y)
			w, h := float32(cmd.Width), float32(cmd.Height)
			if cmd.HasFill {
				vector.DrawFilledRect(dst, x, y, w, h, cmd.Fill, true)
			}
			if cmd.HasStroke {
				vector.StrokeRect(dst, x, y, w, h, strokeWidth, cmd.Stroke, true)
			}
		case CommandCircle:
			cx, cy, r := float32(cmd.X), float32(cmd.Y), float32(cmd.Radius)
			if cmd.HasFill {
				vector.DrawFilledCircle(dst, cx, cy, r, cmd.Fill, true)
			}
			if cmd.HasStroke {
				vector.StrokeCircle(dst, cx, cy, r, strokeWidth, cmd.Stroke, true)
			}
		case CommandText:
			if !cmd.HasFill || fm == nil || cmd.Text == "" {
				continue
			}
			// text/v2 places the origin at the top-left of the line box,
			// which matches a hanging baseline closely enough.
			op := &text.DrawOptions{}
			op.GeoM.Translate(cmd.X, cmd.Y)
			op.ColorScale.ScaleWithColor(cmd.Fill)
			text.Draw(dst, cmd.Text, fm.Face(cmd.Font), op)
		}
	}
}
