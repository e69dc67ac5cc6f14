// Package demo lays out small expression trees with bramble scenes. It is
// the workload shared by the bramble commands.
package demo

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind distinguishes expression nodes.
type Kind uint8

const (
	KindLiteral  Kind = iota // number or quoted text
	KindVariable             // bare identifier
	KindBlank                // placeholder, shown as a pill
	KindCall                 // (fn args...)
	KindList                 // [exprs...], shown as stacked lines
)

// Expr is one node of an expression tree. IDs are unique within a tree and
// assigned in parse order starting at 1.
type Expr struct {
	ID      int
	Kind    Kind
	Text    string // literal content, variable name, call name or blank hint
	Quoted  bool   // literal was a quoted string
	Comment string
	Args    []*Expr
}

// Find returns the expression with the given id, or nil.
func (e *Expr) Find(id int) *Expr {
	if e.ID == id {
		return e
	}
	for _, a := range e.Args {
		if f := a.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// Parse reads one expression:
//
//	(fn arg ...)   call
//	[e1 e2 ...]    list
//	"text" 42      literals
//	name           variable
//	?  ?hint       blank
//	;comment       attaches to the expression that follows
func Parse(src string) (*Expr, error) {
	p := &parser{src: []rune(src)}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("demo: unexpected %q at %d", p.src[p.pos], p.pos)
	}
	return e, nil
}

type parser struct {
	src    []rune
	pos    int
	nextID int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() (rune, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) newExpr(kind Kind, text string) *Expr {
	p.nextID++
	return &Expr{ID: p.nextID, Kind: kind, Text: text}
}

func (p *parser) expr() (*Expr, error) {
	r, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("demo: unexpected end of input")
	}
	switch r {
	case ';':
		start := p.pos + 1
		for p.pos < len(p.src) && p.src[p.pos] != '\n' {
			p.pos++
		}
		comment := strings.TrimSpace(string(p.src[start:p.pos]))
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		e.Comment = comment
		return e, nil
	case '(':
		p.pos++
		name := p.word()
		if name == "" {
			return nil, fmt.Errorf("demo: call without a name at %d", p.pos)
		}
		call := p.newExpr(KindCall, name)
		args, err := p.until(')')
		if err != nil {
			return nil, err
		}
		call.Args = args
		return call, nil
	case '[':
		p.pos++
		list := p.newExpr(KindList, "")
		items, err := p.until(']')
		if err != nil {
			return nil, err
		}
		list.Args = items
		return list, nil
	case '"':
		p.pos++
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != '"' {
			p.pos++
		}
		if p.pos >= len(p.src) {
			return nil, fmt.Errorf("demo: unterminated string at %d", start-1)
		}
		lit := p.newExpr(KindLiteral, string(p.src[start:p.pos]))
		lit.Quoted = true
		p.pos++
		return lit, nil
	case ')', ']':
		return nil, fmt.Errorf("demo: unexpected %q at %d", r, p.pos)
	case '?':
		p.pos++
		return p.newExpr(KindBlank, p.word()), nil
	}
	w := p.word()
	if w == "" {
		return nil, fmt.Errorf("demo: unexpected %q at %d", r, p.pos)
	}
	if unicode.IsDigit([]rune(w)[0]) || (len(w) > 1 && w[0] == '-') {
		return p.newExpr(KindLiteral, w), nil
	}
	return p.newExpr(KindVariable, w), nil
}

// until parses expressions up to the closing rune.
func (p *parser) until(closing rune) ([]*Expr, error) {
	var out []*Expr
	for {
		r, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("demo: missing %q", closing)
		}
		if r == closing {
			p.pos++
			return out, nil
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func (p *parser) word() string {
	start := p.pos
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if unicode.IsSpace(r) || strings.ContainsRune(`()[]";`, r) {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}
