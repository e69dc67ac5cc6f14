// Command bramble-svg lays out an expression with bramble and writes it as
// a standalone SVG image.
//
//	bramble-svg -expr '(Add 1 (Mul ?x 3))' > out.svg
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/dom"
	"github.com/phanxgames/bramble/internal/demo"
)

const defaultExpr = `[
	; say hello
	(Print "Hello, world")
	(Let total (Add 1 2 3))
	(If (Less total 10) ?then ?else)
]`

func main() {
	var (
		exprSrc  = flag.String("expr", defaultExpr, "expression to lay out")
		cfgPath  = flag.String("config", "", "YAML or TOML rendering config")
		selected = flag.Int("select", 0, "id of the expression to highlight")
		outPath  = flag.String("o", "", "output file (default stdout)")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		bramble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *outPath == "" {
		if err := run(os.Stdout, *exprSrc, *cfgPath, *selected); err != nil {
			fatal(err)
		}
		return
	}
	if err := writeFile(*outPath, *exprSrc, *cfgPath, *selected); err != nil {
		fatal(err)
	}
}

// writeFile runs into a new file at path. The file's close error is
// reported, so a write that only fails on close is not lost.
func writeFile(path, src, cfgPath string, selected int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return run(f, src, cfgPath, selected)
}

func run(out io.Writer, src, cfgPath string, selected int) error {
	cfg := bramble.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = bramble.LoadConfig(cfgPath); err != nil {
			return err
		}
	}
	expr, err := demo.Parse(src)
	if err != nil {
		return err
	}

	doc := dom.New()
	st, err := bramble.NewRenderingState(doc, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	view := &demo.View{State: st, Theme: demo.DefaultTheme(), Selected: selected}
	scene, err := view.Render(expr)
	if err != nil {
		return err
	}

	host, err := doc.CreateElement("g", bramble.SVGNamespace)
	if err != nil {
		return err
	}
	if err := doc.AppendChild(doc.BodyElement(), host); err != nil {
		return err
	}
	if err := bramble.NewStage(host).Show(scene); err != nil {
		return err
	}
	return doc.WriteSVG(out, host, scene.Size())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "bramble-svg:", err)
	os.Exit(1)
}
