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

package sdlimgui

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// screen is the texture containing the CHIP-8 framebuffer.
type screen struct {
	pixels *gui.Pixels
	buffer []byte

	texture uint32
}

// MUST ONLY be called from the #mainthread.
func newScreen() *screen {
	scr := &screen{
		pixels: gui.NewPixels(),
	}
	scr.buffer = make([]byte, scr.pixels.Stride()*display.Height)

	gl.GenTextures(1, &scr.texture)
	gl.BindTexture(gl.TEXTURE_2D, scr.texture)

	// CHIP-8 pixels are large and should have sharp edges
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, display.Width, display.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(scr.buffer))

	return scr
}

// update the texture if there is a new image.
//
// MUST ONLY be called from the #mainthread.
func (scr *screen) update() {
	if !scr.pixels.Image(scr.buffer) {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, display.Width, display.Height,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(scr.buffer))
}

func (scr *screen) destroy() {
	if scr.texture != 0 {
		gl.DeleteTextures(1, &scr.texture)
		scr.texture = 0
	}
}
