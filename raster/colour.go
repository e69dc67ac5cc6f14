package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColour parses a CSS colour: "#rgb", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)", "rgba(r, g, b, a)" or a named colour. paint is false for
// "none" and "transparent", which draw nothing.
func ParseColour(s string) (c color.RGBA, paint bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "none" || s == "transparent":
		return color.RGBA{}, false, nil
	case strings.HasPrefix(s, "#"):
		c, err = parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		c, err = parseFunc(s)
	default:
		var ok bool
		if c, ok = colornames.Map[s]; !ok {
			err = fmt.Errorf("raster: unknown colour %q", s)
		}
	}
	if err != nil {
		return color.RGBA{}, false, err
	}
	return c, c.A > 0, nil
}

func parseHex(h string) (color.RGBA, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("raster: malformed colour #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("raster: malformed colour #%s", h)
	}
	// Premultiply: ebiten expects color.RGBA to be alpha-premultiplied.
	return premultiply(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseFunc(s string) (color.RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.RGBA{}, fmt.Errorf("raster: malformed colour %q", s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("raster: malformed colour %q", s)
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == 3 {
			a, err := strconv.ParseFloat(p, 64)
			if err != nil || a < 0 || a > 1 {
				return color.RGBA{}, fmt.Errorf("raster: malformed alpha in %q", s)
			}
			ch[3] = uint8(a*255 + 0.5)
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("raster: malformed channel in %q", s)
		}
		ch[i] = uint8(v)
	}
	return premultiply(ch[0], ch[1], ch[2], ch[3]), nil
}

func premultiply(r, g, b, a uint8) color.RGBA {
	if a == 0xff {
		return color.RGBA{r, g, b, a}
	}
	m := func(c uint8) uint8 { return uint8(uint16(c) * uint16(a) / 0xff) }
	return color.RGBA{m(r), m(g), m(b), a}
}
