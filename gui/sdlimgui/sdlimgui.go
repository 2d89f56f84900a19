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
	"fmt"
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
)

// the scale value used if the requested scale is not positive
const defaultScale = 10.0

// SdlImgui is an implementation of the gui.GUI interface using Dear ImGui.
type SdlImgui struct {
	context *imgui.Context
	io      imgui.IO

	plt    *platform
	glsl   *glsl
	screen *screen

	// connects SDL events with the emulation
	events chan userinput.Event

	// feature requests are made on the emulation goroutine and serviced on
	// the main thread
	featureReq chan featureRequest
	featureRes chan featureResult

	scale        float32
	romName      string
	prefsSummary string
	sounding     bool
	state        govern.State
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// MUST ONLY be called from the #mainthread.
func NewSdlImgui(scale float32) (*SdlImgui, error) {
	img := &SdlImgui{
		context:    imgui.CreateContext(nil),
		io:         imgui.CurrentIO(),
		featureReq: make(chan featureRequest, 1),
		featureRes: make(chan featureResult, 1),
		state:      govern.Initialising,
	}

	// window layout is fixed so there is nothing worth saving
	img.io.SetIniFilename("")

	var err error

	img.plt, err = newPlatform()
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.glsl, err = newGlsl(img)
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.screen = newScreen()

	setupService()

	img.setScale(scale)

	return img, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.screen.destroy()
	img.glsl.destroy()

	if err := img.plt.destroy(); err != nil {
		fmt.Fprintln(output, err)
	}

	img.context.Destroy()
}

// Render implements display.PixelRenderer interface.
func (img *SdlImgui) Render(frameNum int, frame display.Frame) error {
	return img.screen.pixels.Render(frameNum, frame)
}

// EndRendering implements display.PixelRenderer interface.
func (img *SdlImgui) EndRendering() error {
	return img.screen.pixels.EndRendering()
}

// the window is sized to fit the scaled screen and the status bar.
func (img *SdlImgui) setScale(scale float32) {
	if scale <= 0 {
		scale = defaultScale
	}
	img.scale = scale

	w := float32(display.Width) * scale
	h := float32(display.Height)*scale + statusBarHeight
	img.plt.window.SetSize(int32(w), int32(h))
}

func (img *SdlImgui) showWindow(show bool) {
	if show {
		img.plt.window.Show()
	} else {
		img.plt.window.Hide()
	}
}
