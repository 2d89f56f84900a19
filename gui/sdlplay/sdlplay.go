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

package sdlplay

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gopher8"

// the scale value used if the requested scale is not positive
const defaultScale = 10.0

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// the display.PixelRenderer implementation. the image is copied to the
	// texture in the Service() function
	pixels *gui.Pixels
	buffer []byte

	// connects SDL events with the emulation
	events chan userinput.Event

	// feature requests are made on the emulation goroutine and serviced on
	// the main thread
	featureReq chan featureRequest
	featureRes chan featureResult

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale   float32
	romName string
	state   govern.State
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	// SDL must be used from the same thread at all times
	runtime.LockOSThread()

	scr := &SdlPlay{
		pixels:     gui.NewPixels(),
		featureReq: make(chan featureRequest, 1),
		featureRes: make(chan featureResult, 1),
		state:      govern.Initialising,
	}
	scr.buffer = make([]byte, scr.pixels.Stride()*display.Height)

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	// SDL window. window size is set in setScale() function
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the framebuffer to the size of the window
	err = scr.renderer.SetLogicalSize(display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the framebuffer. we copy the pixels to it
	// whenever there is a new frame
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.setScale(scale)

	logger.Logf(logger.Allow, "sdlplay", "window created (scale %.1f)", scr.scale)

	return scr, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.texture.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	sdl.Quit()
}

// Render implements display.PixelRenderer interface.
func (scr *SdlPlay) Render(frameNum int, frame display.Frame) error {
	return scr.pixels.Render(frameNum, frame)
}

// EndRendering implements display.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return scr.pixels.EndRendering()
}

func (scr *SdlPlay) setScale(scale float32) {
	if scale <= 0 {
		scale = defaultScale
	}
	scr.scale = scale
	scr.window.SetSize(int32(display.Width*scale), int32(display.Height*scale))
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

func (scr *SdlPlay) setTitle() {
	t := windowTitle
	if scr.romName != "" {
		t = fmt.Sprintf("%s - %s", windowTitle, scr.romName)
	}
	if scr.state == govern.Paused {
		t = fmt.Sprintf("%s (paused)", t)
	}
	scr.window.SetTitle(t)
}

// present the most recent frame. does nothing if there has been no new frame
// since the last call.
func (scr *SdlPlay) present() {
	if !scr.pixels.Image(scr.buffer) {
		return
	}

	pixels, _, err := scr.texture.Lock(nil)
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "texture lock: %v", err)
		return
	}
	copy(pixels, scr.buffer)
	scr.texture.Unlock()

	if err := scr.renderer.Clear(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "renderer clear: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "renderer copy: %v", err)
	}
	scr.renderer.Present()
}
