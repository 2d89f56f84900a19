// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package gui

import (
	"image"
	"image/color"
	"sync"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Default colours for pixels that are on and off.
var (
	PixelOn  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	PixelOff = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// Pixels converts display frames to an RGBA image. It is safe to call Update()
// from the emulation goroutine and Image() from the GUI thread.
//
// Pixels satisfies the display.PixelRenderer interface.
type Pixels struct {
	crit sync.Mutex

	img *image.RGBA

	// the number of updates and the value of updates at the last call to
	// Image()
	updates   int
	lastImage int

	// frame number of the most recent update
	frameNum int

	On  color.RGBA
	Off color.RGBA
}

// NewPixels is the preferred method of initialisation for the Pixels type.
func NewPixels() *Pixels {
	px := &Pixels{
		img: image.NewRGBA(image.Rect(0, 0, display.Width, display.Height)),
		On:  PixelOn,
		Off: PixelOff,
	}
	px.Update(0, display.Frame{})
	px.lastImage = px.updates
	return px
}

// Update the image with the contents of the frame.
func (px *Pixels) Update(frameNum int, frame display.Frame) {
	px.crit.Lock()
	defer px.crit.Unlock()

	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			if frame.Pixel(x, y) {
				px.img.SetRGBA(x, y, px.On)
			} else {
				px.img.SetRGBA(x, y, px.Off)
			}
		}
	}
	px.frameNum = frameNum
	px.updates++
}

// Render implements the display.PixelRenderer interface.
func (px *Pixels) Render(frameNum int, frame display.Frame) error {
	px.Update(frameNum, frame)
	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (px *Pixels) EndRendering() error {
	return nil
}

// Image copies the most recent image into dst. Returns false if there has
// been no update since the previous call to Image().
func (px *Pixels) Image(dst []byte) bool {
	px.crit.Lock()
	defer px.crit.Unlock()

	if px.updates == px.lastImage {
		return false
	}
	px.lastImage = px.updates
	copy(dst, px.img.Pix)

	return true
}

// FrameNum returns the frame number of the most recent update.
func (px *Pixels) FrameNum() int {
	px.crit.Lock()
	defer px.crit.Unlock()
	return px.frameNum
}

// Stride is the number of bytes in each row of the image.
func (px *Pixels) Stride() int {
	return display.Width * 4
}
