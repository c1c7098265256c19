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

// Package screenshot saves the contents of the framebuffer as a PNG image.
// The image is scaled with nearest neighbour interpolation so that pixels
// remain sharp.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/hardware/framebuffer"
	"github.com/superchocchip/superchocchip/logger"
	"github.com/superchocchip/superchocchip/paths"

	"golang.org/x/image/draw"
)

// ScreenshotError is the pattern used for errors raised by the package.
const ScreenshotError = "screenshot: %v"

// Image converts the frame to an image. The width of the image is given by
// the width argument and the height preserves the aspect ratio of the frame.
// A width of zero or less means the image is the same size as the frame.
func Image(frame framebuffer.Frame, palette gui.Palette, width int) (image.Image, error) {
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil, curated.Errorf(ScreenshotError, "frame has no size")
	}
	if len(frame.Pixels) != frame.Width*frame.Height {
		return nil, curated.Errorf(ScreenshotError, fmt.Sprintf("frame has %d pixels, expected %d", len(frame.Pixels), frame.Width*frame.Height))
	}

	pal := make(color.Palette, len(palette))
	for i, c := range palette {
		pal[i] = c
	}

	src := image.NewPaletted(image.Rect(0, 0, frame.Width, frame.Height), pal)
	for i, p := range frame.Pixels {
		src.Pix[i] = p & 0x0f
	}

	if width <= 0 || width == frame.Width {
		return src, nil
	}

	height := frame.Height * width / frame.Width
	if height <= 0 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Write the frame as a PNG image to the io.Writer. See Image() for the
// meaning of the width argument.
func Write(w io.Writer, frame framebuffer.Frame, palette gui.Palette, width int) error {
	img, err := Image(frame, palette, width)
	if err != nil {
		return err
	}
	err = png.Encode(w, img)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	return nil
}

// Save the frame as a PNG image with the specified filename.
func Save(filename string, frame framebuffer.Frame, palette gui.Palette, width int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(ScreenshotError, err)
		}
	}()

	err = Write(f, frame, palette, width)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "screenshot", "saved to %s", filename)

	return nil
}

// UniqueFilename returns a filename for a screenshot of the named ROM.
func UniqueFilename(romName string) string {
	return fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", romName))
}
