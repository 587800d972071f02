package engine

import (
	"fmt"

	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/pixel"
)

// menuVisible is how many catalog entries fit on the panel at once.
const menuVisible = 5

func (e *Engine) drawMatrix(now clock.Ticks) {
	switch e.mode {
	case ModeMenu:
		e.drawMenuMatrix(now)
	case ModePlaying:
		e.current.Draw(now, e.fb)
		if e.paused {
			e.drawPauseBorder(now)
		}
	case ModeGameOver:
		e.drawGameOverMatrix(now)
	}
	e.fb.Present()
}

// drawMenuMatrix renders the idle rainbow with a brighter column
// sweeping across to show the device is alive.
func (e *Engine) drawMenuMatrix(now clock.Ticks) {
	t := uint32(now)
	sweep := int(t/140) % pixel.Width
	for y := range pixel.Height {
		for x := range pixel.Width {
			r := uint8((uint32(x)*20 + t/9) & 0x3F)
			g := uint8((uint32(y)*18 + t/13) & 0x3F)
			b := uint8((uint32(x)*9 + uint32(y)*11 + t/17) & 0x3F)
			c := pixel.RGB{R: r / 2, G: g / 2, B: b / 2}
			if x == sweep {
				c.R = 70
			}
			e.fb.Set(x, y, c)
		}
	}
}

// drawPauseBorder blinks a frame around the frozen playfield.
func (e *Engine) drawPauseBorder(now clock.Ticks) {
	if (uint32(now)/200)%2 != 0 {
		return
	}
	c := pixel.RGB{R: 50, G: 50}
	for i := range pixel.Width {
		e.fb.Set(i, 0, c)
		e.fb.Set(i, pixel.Height-1, c)
		e.fb.Set(0, i, c)
		e.fb.Set(pixel.Width-1, i, c)
	}
}

// drawGameOverMatrix flashes a checkerboard, green for a win and red
// for a loss.
func (e *Engine) drawGameOverMatrix(now clock.Ticks) {
	phase := int(uint32(now)/240) % 2
	c := pixel.RGB{R: 55}
	if e.lastWin {
		c = pixel.RGB{G: 45}
	}
	for y := range pixel.Height {
		for x := range pixel.Width {
			if (x+y)%2 == phase {
				e.fb.Set(x, y, c)
			} else {
				e.fb.Set(x, y, pixel.RGB{})
			}
		}
	}
}

func (e *Engine) drawPanel() {
	if !e.oled.Available() {
		return
	}
	e.oled.Reset()
	switch e.mode {
	case ModeMenu:
		e.drawMenuPanel()
	case ModePlaying:
		e.drawPlayingPanel()
	case ModeGameOver:
		e.drawGameOverPanel()
	}
	e.oled.Flush()
}

func (e *Engine) drawMenuPanel() {
	sound := "SND"
	if e.snd.Muted() {
		sound = "MUTE"
	}
	e.oled.Line(0, fmt.Sprintf("LEDBOY      %4s", sound))

	// Window the catalog around the selection.
	first := e.menuIndex - menuVisible/2
	if first > len(e.catalog)-menuVisible {
		first = len(e.catalog) - menuVisible
	}
	if first < 0 {
		first = 0
	}
	for i := range menuVisible {
		idx := first + i
		if idx >= len(e.catalog) {
			break
		}
		prefix := "  "
		if idx == e.menuIndex {
			prefix = "> "
		}
		e.oled.Line(1+i, prefix+e.catalog[idx].Title)
	}
	e.oled.Line(7, "A:play SEL:sound")
}

func (e *Engine) drawPlayingPanel() {
	e.oled.Line(0, e.catalog[e.menuIndex].Title)
	if e.snd.Muted() {
		e.oled.Line(1, "MUTE")
	}
	if e.paused {
		e.oled.Line(3, "PAUSED")
	} else {
		e.oled.Line(3, fmt.Sprintf("Score %d", e.score))
		e.oled.Line(4, fmt.Sprintf("Best  %d", e.high[e.menuIndex]))
	}
	e.oled.Line(7, "SEL -> Menu")
}

func (e *Engine) drawGameOverPanel() {
	e.oled.Line(0, e.catalog[e.menuIndex].Title)
	if e.lastWin {
		e.oled.Line(2, "YOU WIN")
	} else {
		e.oled.Line(2, "GAME OVER")
	}
	e.oled.Line(3, e.lastMsg)
	e.oled.Line(5, fmt.Sprintf("Score %d", e.score))
	e.oled.Line(6, fmt.Sprintf("Best  %d", e.high[e.menuIndex]))
}
