package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// FontSpec is the subset of a CSS font that text measurement needs.
type FontSpec struct {
	Family string
	Size   float64 // pixels
	Italic bool
	Bold   bool
}

// DefaultFont is used for text with no font in scope.
var DefaultFont = FontSpec{Family: "sans-serif", Size: 16}

// ParseStyle parses an inline style attribute into property/value pairs.
// Property names are lower-cased; later declarations win.
func ParseStyle(style string) (map[string]string, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return map[string]string{}, nil
	}
	// the parser is strict about semicolons, but they aren't needed in
	// inline styles
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil, fmt.Errorf("dom: parse style %q: %w", style, err)
	}
	props := make(map[string]string, len(decls))
	for _, d := range decls {
		props[strings.ToLower(d.Property)] = strings.TrimSpace(d.Value)
	}
	return props, nil
}

// FontFromStyle extracts the font declared by an inline style. found is
// false when the style declares no font properties.
func FontFromStyle(style string) (font FontSpec, found bool, err error) {
	props, err := ParseStyle(style)
	if err != nil {
		return FontSpec{}, false, err
	}
	font = DefaultFont
	if v, ok := props["font"]; ok {
		font = ParseFont(v)
		found = true
	}
	if v, ok := props["font-family"]; ok {
		font.Family = cleanFamily(v)
		found = true
	}
	if v, ok := props["font-size"]; ok {
		if sz, ok := parsePx(v); ok {
			font.Size = sz
		}
		found = true
	}
	if v, ok := props["font-style"]; ok {
		font.Italic = v == "italic" || v == "oblique"
		found = true
	}
	if v, ok := props["font-weight"]; ok {
		font.Bold = isBold(v)
		found = true
	}
	return font, found, nil
}

// ParseFont parses a CSS font shorthand such as "italic 16px Helvetica
// Neue". Style and weight keywords precede the size; everything after the
// size is the family.
func ParseFont(shorthand string) FontSpec {
	font := DefaultFont
	fields := strings.Fields(shorthand)
	for i, f := range fields {
		switch {
		case f == "italic" || f == "oblique":
			font.Italic = true
		case isBold(f):
			font.Bold = true
		default:
			size, _, _ := strings.Cut(f, "/") // drop line-height
			if sz, ok := parsePx(size); ok {
				font.Size = sz
				if rest := fields[i+1:]; len(rest) > 0 {
					font.Family = cleanFamily(strings.Join(rest, " "))
				}
				return font
			}
		}
	}
	return font
}

// Hidden reports whether an element's own style hides it.
func Hidden(e *Element) bool {
	style, ok := e.Attr("style")
	if !ok {
		return false
	}
	props, err := ParseStyle(style)
	if err != nil {
		return false
	}
	return props["visibility"] == "hidden" || props["display"] == "none"
}

func parsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "px") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func isBold(s string) bool {
	switch s {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

// cleanFamily keeps the first family of a list and strips quotes.
func cleanFamily(s string) string {
	first, _, _ := strings.Cut(s, ",")
	return strings.Trim(strings.TrimSpace(first), `"'`)
}
