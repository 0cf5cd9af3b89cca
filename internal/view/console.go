// Package view provides an interactive terminal front end for a Life
// simulation.
package view

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"canvas-life/internal/core"
	"canvas-life/internal/render"
	"canvas-life/internal/sims/life"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	leftColumnWidth = 28
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console drives a Life simulation from a gocui terminal UI. All simulation
// access happens on the gocui main loop goroutine.
type Console struct {
	sim      *life.Life
	g        *gocui.Gui
	keys     []keyBinding
	term     *render.Terminal
	interval time.Duration
	stop     chan struct{}
}

// NewConsole creates the terminal UI. interval paces run mode.
func NewConsole(sim *life.Life, interval time.Duration) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	c := &Console{
		sim:      sim,
		g:        g,
		term:     render.NewTerminal(sim.Size().W, true),
		interval: interval,
	}
	g.Mouse = true
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'n', "N", "Next step", c.cmdStep, ""},
		{'r', "R", "Run", c.cmdRun, ""},
		{'s', "S", "Stop", c.cmdStop, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'w', "W", "Reseed", c.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdToggle, fieldView},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	core.Render(c.term, sim.Grid(), sim.Frame())
	return c, nil
}

// Run blocks in the UI main loop until the user quits.
func (c *Console) Run() error {
	defer c.g.Close()
	err := c.g.MainLoop()
	c.halt()
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(statusView, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(fieldView, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
	}
	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, helpLine(c.keys))
	}
	c.refresh(g)
	return nil
}

func (c *Console) refresh(g *gocui.Gui) {
	if v, err := g.View(fieldView); err == nil {
		v.Clear()
		fmt.Fprint(v, c.term.String())
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		mode := aurora.Colorize("waiting", aurora.BlueFg).String()
		if c.stop != nil {
			mode = aurora.Colorize("running", aurora.CyanFg).String()
		}
		fmt.Fprintln(v, prop("Pattern", "%v", c.sim.Config().Pattern))
		fmt.Fprintln(v, prop("Dimension", "%v x %v", c.sim.Size().W, c.sim.Size().H))
		fmt.Fprintln(v, prop("Generation", "%v", c.sim.Generation()))
		fmt.Fprintln(v, prop("Live cells", "%v", c.sim.Population()))
		fmt.Fprintln(v, prop("Mode", "%v", mode))
	}
}

func (c *Console) tick() {
	c.sim.Tick(c.term)
	c.refresh(c.g)
}

func (c *Console) redraw() {
	core.Render(c.term, c.sim.Grid(), c.sim.Frame())
	c.refresh(c.g)
}

func (c *Console) halt() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.tick()
	return nil
}

func (c *Console) cmdRun(_ *gocui.View) error {
	if c.stop != nil {
		return nil
	}
	stop := make(chan struct{})
	c.stop = stop
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.g.Update(func(*gocui.Gui) error {
					select {
					case <-stop:
					default:
						c.tick()
					}
					return nil
				})
			}
		}
	}()
	c.refresh(c.g)
	return nil
}

func (c *Console) cmdStop(_ *gocui.View) error {
	c.halt()
	c.refresh(c.g)
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.halt()
	c.sim.Clear()
	c.redraw()
	return nil
}

func (c *Console) cmdReseed(_ *gocui.View) error {
	c.halt()
	c.sim.Reset(time.Now().UnixNano())
	c.redraw()
	return nil
}

func (c *Console) cmdToggle(v *gocui.View) error {
	x, y := v.Cursor()
	if err := c.sim.Toggle(x, y); err != nil {
		// Clicks past the grid edge are ignored.
		return nil
	}
	c.redraw()
	return nil
}

func helpLine(keys []keyBinding) string {
	var b bytes.Buffer
	b.WriteString("KEYBINDINGS: ")
	for i, k := range keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}
