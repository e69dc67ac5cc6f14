package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/dom"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandRect   CommandType = iota // filled and/or stroked rectangle
	CommandCircle                    // filled and/or stroked circle
	CommandText                      // single line of text
)

// Command is one draw instruction emitted while walking a mounted tree.
// Coordinates are in the space of the tree's root.
type Command struct {
	Type    CommandType
	Element *dom.Element

	// Rect and Text: top-left corner and size. Circle: centre and radius.
	X, Y          float64
	Width, Height float64
	Radius        float64

	Fill, Stroke       color.RGBA
	HasFill, HasStroke bool

	Text string
	Font dom.FontSpec
}

// Bounds returns the axis-aligned box the command covers.
func (c *Command) Bounds() bramble.Rect {
	if c.Type == CommandCircle {
		return bramble.Rect{X: c.X - c.Radius, Y: c.Y - c.Radius, Width: 2 * c.Radius, Height: 2 * c.Radius}
	}
	return bramble.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// lineHeighter is implemented by measurers that know their line height.
type lineHeighter interface {
	LineHeight(font dom.FontSpec) float64
}

// Compile walks root depth-first and returns draw commands in paint order.
// Group translations accumulate down the tree. Elements hidden by their
// style, such as bramble's measurement probe, are skipped with their
// subtree. Text widths come from m.
func Compile(root *dom.Element, m dom.Measurer) ([]Command, error) {
	c := compiler{m: m}
	for _, child := range root.Children() {
		if err := c.traverse(child, bramble.Vec2{}, dom.DefaultFont); err != nil {
			return nil, err
		}
	}
	return c.commands, nil
}

type compiler struct {
	m        dom.Measurer
	commands []Command
}

func (c *compiler) traverse(e *dom.Element, offset bramble.Vec2, font dom.FontSpec) error {
	if dom.Hidden(e) {
		return nil
	}
	if tf, ok := e.Attr("transform"); ok {
		t, err := ParseTranslate(tf)
		if err != nil {
			return err
		}
		offset = offset.Add(t)
	}
	if style, ok := e.Attr("style"); ok {
		f, found, err := dom.FontFromStyle(style)
		if err != nil {
			return err
		}
		if found {
			font = f
		}
	}

	switch e.Tag {
	case "rect":
		cmd, err := c.shape(e, CommandRect)
		if err != nil {
			return err
		}
		x, y := num(e, "x"), num(e, "y")
		cmd.X, cmd.Y = offset.X+x, offset.Y+y
		cmd.Width, cmd.Height = num(e, "width"), num(e, "height")
		c.commands = append(c.commands, cmd)
	case "circle":
		cmd, err := c.shape(e, CommandCircle)
		if err != nil {
			return err
		}
		cmd.X, cmd.Y = offset.X+num(e, "cx"), offset.Y+num(e, "cy")
		cmd.Radius = num(e, "r")
		c.commands = append(c.commands, cmd)
	case "text":
		return c.text(e, offset, font)
	}

	for _, child := range e.Children() {
		if err := c.traverse(child, offset, font); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) shape(e *dom.Element, typ CommandType) (Command, error) {
	cmd := Command{Type: typ, Element: e}
	var err error
	if v, ok := e.Attr("fill"); ok {
		if cmd.Fill, cmd.HasFill, err = ParseColour(v); err != nil {
			return cmd, err
		}
	}
	if v, ok := e.Attr("stroke"); ok {
		if cmd.Stroke, cmd.HasStroke, err = ParseColour(v); err != nil {
			return cmd, err
		}
	}
	return cmd, nil
}

func (c *compiler) text(e *dom.Element, offset bramble.Vec2, font dom.FontSpec) error {
	cmd := Command{
		Type:    CommandText,
		Element: e,
		X:       offset.X + num(e, "x"),
		Y:       offset.Y + num(e, "y"),
		Text:    e.Text(),
		Font:    font,
		Fill:    color.RGBA{A: 0xff}, // SVG text defaults to black
		HasFill: true,
	}
	if v, ok := e.Attr("fill"); ok {
		var err error
		if cmd.Fill, cmd.HasFill, err = ParseColour(v); err != nil {
			return err
		}
	}
	if c.m != nil {
		w, err := c.m.MeasureText(cmd.Text, font)
		if err != nil {
			return err
		}
		cmd.Width = w
	}
	if lh, ok := c.m.(lineHeighter); ok {
		cmd.Height = lh.LineHeight(font)
	} else {
		cmd.Height = font.Size * 1.25
	}
	c.commands = append(c.commands, cmd)
	return nil
}

// num reads a numeric attribute; missing or malformed values are 0, as in
// SVG.
func num(e *dom.Element, name string) float64 {
	v, ok := e.Attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseTranslate parses a transform attribute of the form "translate(x y)"
// or "translate(x, y)". A missing y is 0. Other transforms are rejected.
func ParseTranslate(s string) (bramble.Vec2, error) {
	s = strings.TrimSpace(s)
	inner, ok := strings.CutPrefix(s, "translate(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return bramble.Vec2{}, fmt.Errorf("raster: unsupported transform %q", s)
	}
	inner = strings.TrimSuffix(inner, ")")
	parts := strings.FieldsFunc(inner, func(r rune) bool { return r == ' ' || r == ',' })
	if len(parts) < 1 || len(parts) > 2 {
		return bramble.Vec2{}, fmt.Errorf("raster: malformed transform %q", s)
	}
	var v bramble.Vec2
	var err error
	if v.X, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return bramble.Vec2{}, fmt.Errorf("raster: malformed transform %q: %w", s, err)
	}
	if len(parts) == 2 {
		if v.Y, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return bramble.Vec2{}, fmt.Errorf("raster: malformed transform %q: %w", s, err)
		}
	}
	return v, nil
}
