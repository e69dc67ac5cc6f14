package bramble

import (
	"fmt"
	"reflect"
	"strconv"
)

// AttrValue is the set of value types that can be written to a visual
// attribute.
type AttrValue interface {
	~string | ~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FormatAttr renders v in attribute form. Floats use the shortest decimal
// representation without an exponent, so 3 is "3" and 2.5 is "2.5".
func FormatAttr[T AttrValue](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return rv.String()
	}
}

// Assign writes one attribute.
func Assign[T AttrValue](s Surface, v Visual, name string, val T) error {
	return hostErr("set attribute "+name, s.SetAttribute(v, name, FormatAttr(val)))
}

// AssignIfPresent writes the attribute only when o holds a value. An absent
// value leaves the attribute unset so the host's default styling applies.
func AssignIfPresent[T AttrValue](s Surface, v Visual, name string, o Opt[T]) error {
	val, ok := o.Get()
	if !ok {
		return nil
	}
	return Assign(s, v, name, val)
}

// attr is one pending attribute assignment for createSVG.
type attr struct {
	name  string
	value string
}

func a[T AttrValue](name string, val T) attr {
	return attr{name: name, value: FormatAttr(val)}
}

// createSVG creates an SVG element and assigns the present attributes in
// order.
func createSVG(s Surface, tag string, attrs ...attr) (Visual, error) {
	v, err := s.CreateElement(tag, SVGNamespace)
	if err != nil {
		return nil, hostErr("create "+tag, err)
	}
	if v == nil {
		return nil, hostErr("create "+tag, fmt.Errorf("surface returned no element"))
	}
	for _, at := range attrs {
		if err := s.SetAttribute(v, at.name, at.value); err != nil {
			return nil, hostErr("set attribute "+at.name, err)
		}
	}
	return v, nil
}

func translateAttr(p Vec2) string {
	return "translate(" + FormatAttr(p.X) + " " + FormatAttr(p.Y) + ")"
}
