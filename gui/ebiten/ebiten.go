// This file is part of SuperChocChip.
//
// SuperChocChip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SuperChocChip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SuperChocChip.  If not, see <https://www.gnu.org/licenses/>.

package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/audio/otoplayer"
	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/logger"
	"github.com/superchocchip/superchocchip/userinput"
	"github.com/superchocchip/superchocchip/version"
)

// EbitenError is the pattern used for errors raised by the ebiten backend.
const EbitenError = "ebiten: %v"

// Config is used to create a new ebiten GUI.
type Config struct {
	// width of the window. the height is always half the width
	Scale int

	Palette gui.Palette
	Keymap  userinput.Keymap

	// play audio with the otoplayer package
	Audio bool

	// called when the screenshot key is pressed. can be nil. the function is
	// called from the emulation goroutine
	Screenshot func()
}

type eventType int

const (
	eventPress eventType = iota
	eventRelease
	eventScreenshot
)

type event struct {
	typ eventType
	key uint8
}

// GUI implements the gui.GUI and gui.MainThread interfaces.
type GUI struct {
	*userinput.Keypad

	palette    gui.Palette
	screenshot func()

	// the ebiten key for each keypad key. keys that cannot be mapped are
	// not in the slice
	keys []mappedKey

	events chan event

	aud    cpu.Audio
	player *otoplayer.Player

	// the back buffer is only touched by the emulation goroutine
	back   []byte
	width  int
	height int

	// the front buffer is shared with the ebiten goroutine
	crit        sync.Mutex
	front       []byte
	frontWidth  int
	frontHeight int
	img         *ebiten.Image

	finished atomic.Bool

	// set by the ebiten goroutine when the emulation should end. checked by
	// ProcessMessages() before the events queue
	quit atomic.Bool
}

type mappedKey struct {
	host   ebiten.Key
	keypad uint8
}

// the number of key events that can be queued before events are dropped
const eventQueue = 64

// NewGUI is the preferred method of initialisation for the GUI type.
func NewGUI(cfg Config) (*GUI, error) {
	g := &GUI{
		Keypad:     userinput.NewKeypad(nil),
		palette:    cfg.Palette,
		screenshot: cfg.Screenshot,
		events:     make(chan event, eventQueue),
		aud:        audio.Null{},
	}

	for k := range uint8(userinput.NumKeys) {
		code := cfg.Keymap.Code(k)
		if ek, ok := keyFromCode(code); ok {
			g.keys = append(g.keys, mappedKey{host: ek, keypad: k})
		} else {
			logger.Logf(logger.Allow, "ebiten", "key code %d for key %X cannot be used", code, k)
		}
	}

	if cfg.Audio {
		var err error
		g.player, err = otoplayer.NewPlayer()
		if err != nil {
			return nil, curated.Errorf(EbitenError, err)
		}
		g.aud = g.player
	}

	ebiten.SetWindowSize(cfg.Scale, cfg.Scale/2)
	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	logger.Logf(logger.Allow, "ebiten", "window width %d, audio %v", cfg.Scale, cfg.Audio)

	return g, nil
}

// Run implements the gui.MainThread interface.
func (g *GUI) Run(emulation func() error) error {
	var emuErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		emuErr = emulation()
		g.finished.Store(true)
	}()

	err := ebiten.RunGame(g)

	// the ebiten loop only ends once the emulation has finished unless there
	// was an error. in which case the emulation is told to quit
	if err != nil {
		g.requestQuit()
		<-done
		return curated.Errorf(EbitenError, err)
	}

	<-done
	return emuErr
}

// requestQuit never blocks and is never dropped.
func (g *GUI) requestQuit() {
	g.quit.Store(true)
}

// sendEvent never blocks. if the queue is full the event is dropped
func (g *GUI) sendEvent(ev event) {
	select {
	case g.events <- ev:
	default:
	}
}

// Update implements the ebiten.Game interface.
func (g *GUI) Update() error {
	if g.finished.Load() {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		g.requestQuit()
	}

	if inpututil.IsKeyJustReleased(ebiten.KeyF12) {
		g.sendEvent(event{typ: eventScreenshot})
	}

	for _, k := range g.keys {
		if inpututil.IsKeyJustPressed(k.host) {
			g.sendEvent(event{typ: eventPress, key: k.keypad})
		}
		if inpututil.IsKeyJustReleased(k.host) {
			g.sendEvent(event{typ: eventRelease, key: k.keypad})
		}
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (g *GUI) Draw(screen *ebiten.Image) {
	g.crit.Lock()
	defer g.crit.Unlock()

	if g.frontWidth == 0 || g.frontHeight == 0 {
		screen.Fill(g.palette[0])
		return
	}

	if g.img == nil || g.img.Bounds().Dx() != g.frontWidth || g.img.Bounds().Dy() != g.frontHeight {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(g.frontWidth, g.frontHeight)
	}
	g.img.WritePixels(g.front)

	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(g.frontWidth), float64(sh)/float64(g.frontHeight))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.img, op)
}

// Layout implements the ebiten.Game interface. The screen is always the
// same size as the window.
func (g *GUI) Layout(outsideWidth int, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// ProcessMessages implements the cpu.Inputs interface.
func (g *GUI) ProcessMessages() bool {
	if g.quit.Load() {
		return true
	}
	for {
		select {
		case ev := <-g.events:
			switch ev.typ {
			case eventScreenshot:
				if g.screenshot != nil {
					g.screenshot()
				}
			case eventPress:
				g.Press(ev.key)
			case eventRelease:
				g.Release(ev.key)
			}
		default:
			return false
		}
	}
}

// SetResolution implements the framebuffer.Renderer interface.
func (g *GUI) SetResolution(width int, height int) {
	g.width = width
	g.height = height
	g.back = make([]byte, width*height*4)
	for loc := range width * height {
		g.fill(loc, 0)
	}

	g.crit.Lock()
	defer g.crit.Unlock()
	g.frontWidth = width
	g.frontHeight = height
	g.front = make([]byte, len(g.back))
	copy(g.front, g.back)
}

func (g *GUI) fill(loc int, colour uint8) {
	c := g.palette[colour&0x0f]
	i := loc * 4
	g.back[i] = c.R
	g.back[i+1] = c.G
	g.back[i+2] = c.B
	g.back[i+3] = 0xff
}

// SetPixel implements the framebuffer.Renderer interface.
func (g *GUI) SetPixel(x int, y int, colour uint8) {
	g.fill(y*g.width+x, colour)
}

// RefreshDisplay implements the framebuffer.Renderer interface.
func (g *GUI) RefreshDisplay(changed bool) {
	if !changed {
		return
	}
	g.crit.Lock()
	defer g.crit.Unlock()
	copy(g.front, g.back)
}

// SetTitle implements the framebuffer.Renderer interface.
func (g *GUI) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Audio implements the gui.GUI interface.
func (g *GUI) Audio() cpu.Audio {
	return g.aud
}

// Destroy implements the gui.GUI interface.
func (g *GUI) Destroy() error {
	if g.player != nil {
		return g.player.Close()
	}
	return nil
}
