package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/prize-wheel/internal/audio"
	"github.com/iburimskiy/prize-wheel/internal/canvas"
	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/entries"
	"github.com/iburimskiy/prize-wheel/internal/render"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

// pointer is the direction the play sign points at; the piece under it wins.
const pointer = 0.0

// Game hosts the wheel in an ebiten window.
type Game struct {
	log    *slog.Logger
	opts   config.Options
	ticker *audio.Ticker

	// surface is where frames are drawn; frame is its image when it is a canvas.
	surface render.Surface
	frame   *ebiten.Image

	scene   render.Scene
	pieces  []wheel.PieceParams
	queue   wheel.FrameQueue
	regions wheel.RegionCell
	ctrl    *wheel.Controller
	spinner *wheel.Spinner

	// dialogs, swapped out in tests
	pickFile func() (string, error)
	announce func(label string) error

	// input edge detection
	prevKey map[ebiten.Key]bool

	winner  string
	lastErr error
}

// New builds the game with an offscreen canvas. A canvas failure is fatal.
func New(opts config.Options, list []wheel.Entry, ticker *audio.Ticker, log *slog.Logger) (*Game, error) {
	c, err := canvas.New(config.WindowWidth, config.WindowHeight)
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	g := newGame(opts, list, c, ticker, log)
	g.frame = c.Image()
	return g, nil
}

func newGame(opts config.Options, list []wheel.Entry, s render.Surface, ticker *audio.Ticker, log *slog.Logger) *Game {
	g := &Game{
		log:      log,
		opts:     opts,
		ticker:   ticker,
		surface:  s,
		pickFile: selectEntriesFile,
		announce: announceWinner,
		prevKey:  map[ebiten.Key]bool{},
	}
	g.ctrl = wheel.NewController(&g.regions)
	g.spinner = wheel.NewSpinner(wheel.SpinnerConfig{
		Scheduler: &g.queue,
		Rand:      rand.New(rand.NewPCG(opts.Seed, opts.Seed>>32|1)),
		Frame:     g.redraw,
		OnStart: func(d float64) {
			g.winner = ""
			g.log.Debug("spin started", "decay_rate", d, "from", g.spinner.Rotation())
		},
		OnTick: g.tick,
		OnStop: g.stopped,
	})
	g.setEntries(list)
	return g
}

// redraw clears the surface, draws the wheel at rotation and publishes the
// frame's regions.
func (g *Game) redraw(rotation float64) {
	g.surface.Clear()
	g.regions.Publish(g.scene.Draw(render.Params{
		Surface:  g.surface,
		CenterX:  config.WindowWidth / 2,
		CenterY:  config.WindowHeight / 2,
		Rotation: rotation,
		OnSpin:   g.spinner.Start,
	}))
}

func (g *Game) tick(prev, next float64) {
	if len(g.pieces) == 0 {
		return
	}
	g.ticker.Tick(wheel.Crossings(prev, next, g.pieces[0].ArcLength))
}

func (g *Game) stopped(rotation float64) {
	i, ok := wheel.PieceAt(g.pieces, rotation, pointer)
	if !ok {
		g.log.Info("spin stopped on an empty wheel", "rotation", rotation)
		return
	}
	g.winner = g.pieces[i].Label
	g.log.Info("spin stopped", "winner", g.winner, "rotation", math.Mod(rotation, 2*math.Pi), "spins", g.spinner.Spins())
	if g.opts.Announce {
		label := g.winner
		go func() {
			if err := g.announce(label); err != nil && !errors.Is(err, zenity.ErrCanceled) {
				g.log.Warn("announce winner", "err", err)
			}
		}()
	}
}

// setEntries swaps the wheel's entries and redraws it where it rests.
func (g *Game) setEntries(list []wheel.Entry) {
	g.spinner.Stop()
	g.scene = render.Scene{Entries: list}
	g.pieces = wheel.Layout(list)
	g.winner = ""
	g.redraw(g.spinner.Rotation())
	g.log.Debug("entries loaded", "count", len(list))
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// Frames requested last tick run before input, so a click that starts
	// a spin draws exactly one frame now.
	g.queue.Flush()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(wheel.Point{X: float64(x), Y: float64(y)})
	}

	if justPressed(ebiten.KeyO) {
		if err := g.openEntriesDialog(); err != nil {
			g.lastErr = err
			g.log.Error("open entries", "err", err)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) click(p wheel.Point) int {
	// The canvas covers the whole logical screen at (0, 0).
	return g.ctrl.Click(p, wheel.Point{})
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) status() string {
	var s string
	switch {
	case g.spinner.State() == wheel.Spinning:
		s = "Spinning..."
	case len(g.pieces) == 0:
		s = "No entries - O to open an entries file"
	case g.winner != "":
		s = "Winner: " + g.winner + " - click the hub to spin again"
	default:
		s = "Click the hub to spin, O: open entries, Esc/Q: quit"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) openEntriesDialog() error {
	path, err := g.pickFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	list, err := entries.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	g.lastErr = nil
	g.log.Info("entries file opened", "path", path, "count", len(list))
	g.setEntries(list)
	return nil
}

func selectEntriesFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Entries"),
		zenity.FileFilters{{
			Name:     "Entries",
			Patterns: []string{"*.txt"},
		}},
	)
}

func announceWinner(label string) error {
	return zenity.Info(label, zenity.Title("Winner"), zenity.InfoIcon)
}
