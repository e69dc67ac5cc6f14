// Command bramble-view shows an expression laid out with bramble in a
// window. Clicking a token selects it; the rendering config is reloaded
// whenever its file changes.
//
// Keys: S saves a screenshot, F toggles the frame rate and cache overlay.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/bramble/dom"
	"github.com/phanxgames/bramble/internal/demo"
	"github.com/phanxgames/bramble/raster"
)

const (
	windowTitle = "bramble"
	screenW     = 800
	screenH     = 600
	slideTime   = 0.2 // seconds
)

const defaultExpr = `[
	; click a token to select it
	(Let greeting "Hello")
	(Print (Concat greeting ", " ?name))
	(While (Less i 10) (Set i (Add i 1)))
]`

type game struct {
	doc   *dom.Document
	fm    *dom.FaceMeasurer
	host  *dom.Element
	stage *bramble.Stage
	st    *bramble.RenderingState

	expr     *demo.Expr
	theme    demo.Theme
	cfgPath  string
	selected int
	dirty    bool

	commands []raster.Command
	tween    *bramble.TranslateTween
	reload   chan struct{}

	shots     raster.Screenshots
	showStats bool
}

func main() {
	var (
		exprSrc = flag.String("expr", defaultExpr, "expression to show")
		cfgPath = flag.String("config", "", "YAML or TOML rendering config, reloaded on change")
		shotDir = flag.String("shots", "screenshots", "directory screenshots are written to")
		stats   = flag.Bool("stats", false, "start with the frame rate and cache overlay shown")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		bramble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(*exprSrc, *cfgPath, *shotDir, *stats); err != nil {
		fmt.Fprintln(os.Stderr, "bramble-view:", err)
		os.Exit(1)
	}
}

func run(src, cfgPath, shotDir string, stats bool) error {
	expr, err := demo.Parse(src)
	if err != nil {
		return err
	}
	fm, err := dom.NewFaceMeasurer()
	if err != nil {
		return err
	}
	doc := dom.New(dom.WithMeasurer(fm))
	hostV, err := doc.CreateElement("g", bramble.SVGNamespace)
	if err != nil {
		return err
	}
	if err := doc.AppendChild(doc.BodyElement(), hostV); err != nil {
		return err
	}
	g := &game{
		doc:     doc,
		fm:      fm,
		host:    hostV.(*dom.Element),
		stage:   bramble.NewStage(hostV),
		expr:    expr,
		theme:   demo.DefaultTheme(),
		cfgPath: cfgPath,
		dirty:   true,
		reload:  make(chan struct{}, 1),

		shots:     raster.Screenshots{Dir: shotDir},
		showStats: stats,
	}
	if err := g.loadState(); err != nil {
		return err
	}
	if cfgPath != "" {
		w, err := watch(cfgPath, g.reload)
		if err != nil {
			return err
		}
		defer w.Close()
	}
	defer func() { _ = g.st.Close() }()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)
	return ebiten.RunGame(g)
}

// loadState (re)creates the rendering state from the config file. A new
// config may change fonts, so cached widths are dropped with the old state.
func (g *game) loadState() error {
	cfg := bramble.DefaultConfig()
	if g.cfgPath != "" {
		var err error
		if cfg, err = bramble.LoadConfig(g.cfgPath); err != nil {
			return err
		}
	}
	st, err := bramble.NewRenderingState(g.doc, cfg)
	if err != nil {
		return err
	}
	if g.st != nil {
		_ = g.st.Close()
	}
	g.st = st
	g.dirty = true
	return nil
}

func (g *game) rebuild() error {
	view := &demo.View{
		State:    g.st,
		Events:   g.doc,
		Theme:    g.theme,
		Selected: g.selected,
		OnSelect: g.selectExpr,
	}
	scene, err := view.Render(g.expr)
	if err != nil {
		return err
	}
	if err := g.stage.Show(scene); err != nil {
		return err
	}
	g.dirty = false
	g.tween = nil
	// Slide the content group (above the background) into place.
	if vs := scene.Visuals(); len(vs) > 1 && g.selected != 0 {
		m := g.theme.Margin
		g.tween = bramble.NewTranslateTween(g.doc, vs[len(vs)-1],
			bramble.Vec2{X: m + 6, Y: m}, bramble.Vec2{X: m, Y: m}, slideTime, ease.OutCubic)
	}
	return nil
}

func (g *game) selectExpr(id int) {
	if g.selected == id {
		return
	}
	g.selected = id
	g.dirty = true
}

func (g *game) Update() error {
	select {
	case <-g.reload:
		if err := g.loadState(); err != nil {
			bramble.Logger().Error("bramble-view: reload config", "err", err)
		}
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.shots.Queue(fmt.Sprintf("expr_%d", g.selected))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showStats = !g.showStats
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		x, y := float64(cx), float64(cy)
		if el := raster.HitTest(g.commands, x, y); el != nil && el != g.host {
			g.doc.Dispatch(el, bramble.EventClick, x, y)
		}
	}

	if g.dirty {
		if err := g.rebuild(); err != nil {
			return err
		}
	}
	if g.tween != nil && !g.tween.Done {
		if err := g.tween.Update(float32(1.0 / float64(ebiten.TPS()))); err != nil {
			return err
		}
	}

	cmds, err := raster.Compile(g.host, g.fm)
	if err != nil {
		return err
	}
	g.commands = cmds
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0xee, 0xee, 0xee, 0xff})
	raster.Draw(screen, g.commands, g.fm)
	// Captured before the overlay so screenshots show only the scene.
	if _, err := g.shots.Flush(screen); err != nil {
		bramble.Logger().Error("bramble-view: screenshot", "err", err)
	}
	if g.showStats {
		s := g.st.Stats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ncache: %d hits, %d misses, %d entries",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.Hits, s.Misses, s.Entries), 4, screen.Bounds().Dy()-52)
	}
}

func (g *game) Layout(w, h int) (int, int) { return w, h }

// watch signals ch whenever path is written or replaced. The directory is
// watched because editors often save by renaming a new file over the old.
func watch(path string, ch chan<- struct{}) (*fsnotify.Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				bramble.Logger().Error("bramble-view: config watcher", "err", err)
			}
		}
	}()
	return w, nil
}
