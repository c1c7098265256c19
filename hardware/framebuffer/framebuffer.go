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

package framebuffer

import (
	"fmt"
	"math/bits"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/hardware/memory"
	"github.com/superchocchip/superchocchip/version"
)

// FramebufferFault is the pattern used for errors raised by the Framebuffer.
const FramebufferFault = "framebuffer fault: %s"

// Renderer implementations display the contents of the framebuffer.
type Renderer interface {
	// SetResolution is called whenever the framebuffer is resized. The
	// renderer should blank the display.
	SetResolution(width int, height int)

	// SetPixel sets the colour of a single pixel. Colour is an index into a
	// palette of up to 16 colours.
	SetPixel(x int, y int, colour uint8)

	// RefreshDisplay is called once per frame. The changed argument is false
	// if no calls to SetPixel() have been made since the previous call to
	// RefreshDisplay().
	RefreshDisplay(changed bool)

	// SetTitle is used to show performance information.
	SetTitle(title string)
}

// Plane identifies one of the bit-planes in the framebuffer.
type Plane int

// Framebuffer is the visible pixel state of the emulated machine. It has
// between one and four planes of video memory, one byte per pixel. The
// colour of a pixel is formed from the bits of each plane.
type Framebuffer struct {
	renderer Renderer

	planes []*memory.Memory
	wrap   bool

	width  int
	height int
	size   int

	// the planes selected by the most recent call to SwitchPlanes()
	affected []Plane

	// pixels that have changed since the last RefreshDisplay(). keyed by
	// pixel location (y*width+x)
	dirty map[int]uint8

	// the colour of each pixel as last sent to the renderer. -1 means the
	// pixel has never been sent
	sent []int16
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type. The number of planes must be 1, 2 or 4. The framebuffer
// has no size until ResizeVid() is called.
func NewFramebuffer(renderer Renderer, numPlanes int, wrap bool) (*Framebuffer, error) {
	switch numPlanes {
	case 1, 2, 4:
	default:
		return nil, curated.Errorf(FramebufferFault, fmt.Sprintf("unsupported number of planes (%d)", numPlanes))
	}

	fb := &Framebuffer{
		renderer: renderer,
		planes:   make([]*memory.Memory, numPlanes),
		wrap:     wrap,
		affected: []Plane{0},
		dirty:    make(map[int]uint8),
	}
	for i := range fb.planes {
		fb.planes[i] = memory.NewMemory(0)
	}

	return fb, nil
}

// NumPlanes returns the number of planes in the framebuffer.
func (fb *Framebuffer) NumPlanes() int {
	return len(fb.planes)
}

// Wrap returns true if pixels drawn off the edge of the screen wrap around to
// the opposite edge.
func (fb *Framebuffer) Wrap() bool {
	return fb.wrap
}

// ResizeVid changes the resolution of the framebuffer. All planes are
// cleared, regardless of which planes are affected.
func (fb *Framebuffer) ResizeVid(width int, height int) {
	fb.width = width
	fb.height = height
	fb.size = width * height

	for _, p := range fb.planes {
		p.Resize(fb.size)
	}

	fb.dirty = make(map[int]uint8)
	fb.sent = make([]int16, fb.size)
	for i := range fb.sent {
		fb.sent[i] = -1
	}

	fb.renderer.SetResolution(width, height)
}

// VidSize returns the current resolution.
func (fb *Framebuffer) VidSize() (int, int) {
	return fb.width, fb.height
}

// AffectedPlanes returns the planes selected by SwitchPlanes(). The default
// is plane zero only.
func (fb *Framebuffer) AffectedPlanes() []Plane {
	return fb.affected
}

// SwitchPlanes selects the planes that are affected by drawing, scrolling and
// clearing. Bit n of the mask selects plane n. A mask of zero is allowed and
// selects no planes.
func (fb *Framebuffer) SwitchPlanes(mask uint8) error {
	if int(mask) >= 1<<len(fb.planes) {
		return curated.Errorf(FramebufferFault, fmt.Sprintf("plane mask 0x%x selects planes that do not exist (%d planes)", mask, len(fb.planes)))
	}

	fb.affected = make([]Plane, 0, bits.OnesCount8(mask))
	for p := range fb.planes {
		if mask&(1<<p) != 0 {
			fb.affected = append(fb.affected, Plane(p))
		}
	}

	return nil
}

// colour returns the palette index for the pixel location from the contents
// of every plane.
func (fb *Framebuffer) colour(loc int) uint8 {
	var c uint8
	for i, p := range fb.planes {
		if p.Read(loc) != 0 {
			c |= 1 << i
		}
	}
	return c
}

// markAll recomputes the colour of every pixel and adds it to the dirty map.
func (fb *Framebuffer) markAll() {
	for loc := 0; loc < fb.size; loc++ {
		fb.dirty[loc] = fb.colour(loc)
	}
}

// Clear the affected planes.
func (fb *Framebuffer) Clear() error {
	if len(fb.affected) == 0 {
		return nil
	}
	for _, p := range fb.affected {
		if err := fb.planes[p].Clear(); err != nil {
			return err
		}
	}
	fb.markAll()
	return nil
}

// XORPixel inverts the pixel in the plane and returns true if the pixel was
// set before the inversion.
//
// If wrapping is disabled, coordinates outside the screen are ignored and the
// ok value will be false. In this case there is no collision information.
func (fb *Framebuffer) XORPixel(x int, y int, p Plane) (collision bool, ok bool) {
	if fb.wrap {
		x %= fb.width
		y %= fb.height
	} else if x >= fb.width || y >= fb.height {
		return false, false
	}

	loc := y*fb.width + x
	plane := fb.planes[p]
	v := plane.Read(loc)
	if err := plane.Write(loc, v^0xff); err != nil {
		return false, false
	}
	fb.dirty[loc] = fb.colour(loc)

	return v != 0, true
}

// ScrollUp moves the contents of the affected planes up by the number of
// rows. The bottom rows are cleared.
func (fb *Framebuffer) ScrollUp(rows int) error {
	if len(fb.affected) == 0 {
		return nil
	}
	offset := min(rows*fb.width, fb.size)
	for _, p := range fb.affected {
		fb.planes[p].MoveMem(-offset)
		if err := fb.planes[p].ZeroBlock(fb.size-offset, offset); err != nil {
			return err
		}
	}
	fb.markAll()
	return nil
}

// ScrollDown moves the contents of the affected planes down by the number of
// rows. The top rows are cleared.
func (fb *Framebuffer) ScrollDown(rows int) error {
	if len(fb.affected) == 0 {
		return nil
	}
	offset := min(rows*fb.width, fb.size)
	for _, p := range fb.affected {
		fb.planes[p].MoveMem(offset)
		if err := fb.planes[p].ZeroBlock(0, offset); err != nil {
			return err
		}
	}
	fb.markAll()
	return nil
}

// ScrollLeft moves the contents of the affected planes left by the number of
// columns. The rightmost columns are cleared.
func (fb *Framebuffer) ScrollLeft(cols int) error {
	if len(fb.affected) == 0 {
		return nil
	}
	cols = min(cols, fb.width)
	for _, p := range fb.affected {
		fb.planes[p].MoveMem(-cols)
		for y := 1; y <= fb.height; y++ {
			if err := fb.planes[p].ZeroBlock(fb.width*y-cols, cols); err != nil {
				return err
			}
		}
	}
	fb.markAll()
	return nil
}

// ScrollRight moves the contents of the affected planes right by the number
// of columns. The leftmost columns are cleared.
func (fb *Framebuffer) ScrollRight(cols int) error {
	if len(fb.affected) == 0 {
		return nil
	}
	cols = min(cols, fb.width)
	for _, p := range fb.affected {
		fb.planes[p].MoveMem(cols)
		for y := 0; y < fb.height; y++ {
			if err := fb.planes[p].ZeroBlock(fb.width*y, cols); err != nil {
				return err
			}
		}
	}
	fb.markAll()
	return nil
}

// RefreshDisplay sends every changed pixel to the renderer. Pixels that have
// been marked as dirty but which have the same colour as was last sent are
// not sent again.
func (fb *Framebuffer) RefreshDisplay() {
	var changed bool
	for loc, c := range fb.dirty {
		if fb.sent[loc] != int16(c) {
			fb.sent[loc] = int16(c)
			fb.renderer.SetPixel(loc%fb.width, loc/fb.width, c)
			changed = true
		}
	}
	clear(fb.dirty)
	fb.renderer.RefreshDisplay(changed)
}

// ReportPerf sets the title of the renderer to show the number of frames and
// the number of instructions executed in the last second.
func (fb *Framebuffer) ReportPerf(fps int, ops int) {
	fb.renderer.SetTitle(fmt.Sprintf("%s - %d FPS, %d OPS", version.ApplicationName, fps, ops))
}

// Frame is a copy of the visible framebuffer. Each entry in Pixels is a
// palette index.
type Frame struct {
	Width  int
	Height int
	Pixels []uint8
}

// Snapshot returns a copy of the framebuffer as it currently is. This may be
// different to what has been sent to the renderer.
func (fb *Framebuffer) Snapshot() Frame {
	f := Frame{
		Width:  fb.width,
		Height: fb.height,
		Pixels: make([]uint8, fb.size),
	}
	for loc := range f.Pixels {
		f.Pixels[loc] = fb.colour(loc)
	}
	return f
}

// Plane returns the raw contents of the plane. One byte per pixel. The
// returned slice refers to the underlying memory and should not be kept.
func (fb *Framebuffer) Plane(p Plane) []uint8 {
	return fb.planes[p].ReadBlock(0, fb.size)
}
