//go:build js

// Command bramble-wasm runs the expression view in a browser. The page must
// contain an <svg id="app"> element to mount into.
//
//	GOOS=js GOARCH=wasm go build -o bramble.wasm ./cmd/bramble-wasm
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/domjs"
	"github.com/phanxgames/bramble/internal/demo"
)

const hostID = "app"

const defaultExpr = `[
	; click a token to select it
	(Let greeting "Hello")
	(Print (Concat greeting ", " ?name))
	(If (Less (Len greeting) 10) ?then ?else)
]`

type app struct {
	doc   *domjs.Document
	st    *bramble.RenderingState
	stage *bramble.Stage
	expr  *demo.Expr
	theme demo.Theme
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bramble-wasm:", err)
		os.Exit(1)
	}
	select {}
}

func run() error {
	expr, err := demo.Parse(defaultExpr)
	if err != nil {
		return err
	}
	doc, err := domjs.New()
	if err != nil {
		return err
	}
	host, err := doc.ElementByID(hostID)
	if err != nil {
		return err
	}
	st, err := bramble.NewRenderingState(doc, bramble.DefaultConfig())
	if err != nil {
		return err
	}
	a := &app{
		doc:   doc,
		st:    st,
		stage: bramble.NewStage(host),
		expr:  expr,
		theme: demo.DefaultTheme(),
	}
	return a.show(0)
}

// show renders the view with id selected. Listeners call back into show, so
// it runs inside a DOM event handler after the first call.
func (a *app) show(selected int) error {
	view := &demo.View{
		State:    a.st,
		Events:   a.doc,
		Theme:    a.theme,
		Selected: selected,
		OnSelect: func(id int) {
			if id == selected {
				return
			}
			if err := a.show(id); err != nil {
				bramble.Logger().Error("bramble-wasm: render", "err", err)
			}
		},
	}
	scene, err := view.Render(a.expr)
	if err != nil {
		return err
	}
	return a.stage.Show(scene)
}
