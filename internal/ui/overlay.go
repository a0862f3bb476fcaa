//go:build ebiten

package ui

import (
	"image/color"

	"colony/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	panelWidth   = 150
)

// Overlay draws a stats panel over the top-left corner of the grid.
type Overlay struct {
	sim     core.Sim
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay for sim. It starts visible.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	provider, ok := o.sim.(core.StatsProvider)
	if !ok {
		return
	}
	lines := provider.Stats().Lines()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelWidth, float64(2*panelPadding+len(lines)*lineHeight))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 180})
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
