// Package term shows a simulation in a terminal. Each terminal cell covers
// two grid rows using half-block glyphs, and the viewport pans over grids
// larger than the terminal.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"colony/internal/core"
)

const (
	frameInterval = time.Second / 60
	panStep       = 8
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 0)).Background(tcell.NewRGBColor(87, 87, 87))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Viewer drives a simulation and draws it onto a tcell screen.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	pacer  *core.FixedStep

	offX, offY int
	paused     bool
	stepOnce   bool
}

// NewViewer returns a Viewer that advances sim at tps generations per second.
func NewViewer(screen tcell.Screen, sim core.Sim, tps int) *Viewer {
	return &Viewer{screen: screen, sim: sim, pacer: core.NewFixedStep(tps)}
}

// Run processes input and advances the simulation until the user quits, ctx
// is done, or a step fails.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.clampOffset()
				v.screen.Sync()
			}
			v.Draw()
		case <-ticker.C:
			stepped, err := v.Tick()
			if err != nil {
				return err
			}
			if stepped {
				v.Draw()
			}
		}
	}
}

// HandleKey applies a key press and reports whether the viewer should exit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.offX -= panStep
	case tcell.KeyRight:
		v.offX += panStep
	case tcell.KeyUp:
		v.offY -= 2 * panStep
	case tcell.KeyDown:
		v.offY += 2 * panStep
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.stepOnce = true
		}
	}
	v.clampOffset()
	return false
}

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Offset returns the grid column and row shown in the top-left corner.
func (v *Viewer) Offset() (col, row int) { return v.offX, v.offY }

// Tick advances the simulation when a single step was requested or, while
// running, when the pacer says a tick is due.
func (v *Viewer) Tick() (bool, error) {
	switch {
	case v.stepOnce:
		v.stepOnce = false
	case v.paused || !v.pacer.ShouldStep():
		return false, nil
	}
	return true, v.sim.Step()
}

// Draw paints the visible part of the grid and a status line.
func (v *Viewer) Draw() {
	sw, sh := v.screen.Size()
	if sw <= 0 || sh <= 0 {
		return
	}
	size := v.sim.Size()
	cells := v.sim.Cells()
	alive := func(row, col int) bool {
		if row >= size.H || col >= size.W {
			return false
		}
		return cells[row*size.W+col] == core.Alive
	}

	for ty := 0; ty < sh-1; ty++ {
		top := v.offY + 2*ty
		for tx := 0; tx < sw; tx++ {
			col := v.offX + tx
			if col >= size.W || top >= size.H {
				v.screen.SetContent(tx, ty, ' ', nil, tcell.StyleDefault)
				continue
			}
			glyph := ' '
			switch up, down := alive(top, col), alive(top+1, col); {
			case up && down:
				glyph = '█'
			case up:
				glyph = '▀'
			case down:
				glyph = '▄'
			}
			v.screen.SetContent(tx, ty, glyph, nil, aliveStyle)
		}
	}
	v.drawStatus(sw, sh-1)
	v.screen.Show()
}

func (v *Viewer) drawStatus(width, y int) {
	line := v.sim.Name()
	if p, ok := v.sim.(core.StatsProvider); ok {
		line += "  " + p.Stats().String()
	}
	if v.paused {
		line += "  [paused]"
	}
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// clampOffset keeps the viewport inside the grid.
func (v *Viewer) clampOffset() {
	sw, sh := v.screen.Size()
	size := v.sim.Size()
	maxX := max(size.W-sw, 0)
	maxY := max(size.H-2*(sh-1), 0)
	v.offX = min(max(v.offX, 0), maxX)
	v.offY = min(max(v.offY, 0), maxY)
}
