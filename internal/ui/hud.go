//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the field view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Draw paints the panel anchored to the right edge of the field view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, st Status) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	heading := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	state := "running"
	if st.Paused {
		state = "paused"
	}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, st.Name, face, panelPadding, y, heading)
	y += infoSpacing
	for _, line := range []string{
		fmt.Sprintf("field     %s", st.Field),
		fmt.Sprintf("state     %s", state),
		fmt.Sprintf("t         %.3f", st.Time),
		fmt.Sprintf("steps/fr  %d", st.StepsPerFrame),
		fmt.Sprintf("sweeps    %d", st.Sweeps),
		fmt.Sprintf("stalled   %d", st.NonConverged),
		fmt.Sprintf("|v|       %.3f..%.3f", st.Speed.Min, st.Speed.Max),
		fmt.Sprintf("p         %.3f..%.3f", st.Pressure.Min, st.Pressure.Max),
	} {
		text.Draw(h.panel, line, face, panelPadding, y, body)
		y += lineSpacing
	}

	y += infoSpacing
	for _, line := range []string{
		"space  pause",
		"n      single step",
		"f      cycle field",
		"a      arrows",
		"up/dn  steps per frame",
		"r      reset",
		"q      quit",
	} {
		text.Draw(h.panel, line, face, panelPadding, y, body)
		y += lineSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineSpacing    = 16
	infoSpacing    = 24
)
