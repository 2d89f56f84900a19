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
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// height of the status bar underneath the screen image
const statusBarHeight = 24.0

// aspect ratio of the CHIP-8 screen
const screenAspect = float32(display.Width) / float32(display.Height)

const playWindowFlags = imgui.WindowFlagsNoTitleBar |
	imgui.WindowFlagsNoResize |
	imgui.WindowFlagsNoMove |
	imgui.WindowFlagsNoScrollbar |
	imgui.WindowFlagsNoCollapse |
	imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsNoBringToFrontOnFocus

// draw the screen image and the status bar. the play window fills the SDL
// window completely.
func (img *SdlImgui) draw() {
	displaySize := img.plt.displaySize()

	imgui.SetNextWindowPos(imgui.Vec2{})
	imgui.SetNextWindowSize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{})
	imgui.PushStyleVarFloat(imgui.StyleVarWindowBorderSize, 0.0)
	defer imgui.PopStyleVarV(2)

	if !imgui.BeginV("##play", nil, playWindowFlags) {
		imgui.End()
		return
	}
	defer imgui.End()

	w, h := fitScreen(displaySize[0], displaySize[1]-statusBarHeight)
	imgui.SetCursorPos(imgui.Vec2{
		X: (displaySize[0] - w) / 2,
		Y: (displaySize[1] - statusBarHeight - h) / 2,
	})
	imgui.Image(imgui.TextureID(img.screen.texture), imgui.Vec2{X: w, Y: h})

	imgui.SetCursorPos(imgui.Vec2{X: 4.0, Y: displaySize[1] - statusBarHeight + 4.0})
	imgui.Text(img.status(img.screen.pixels.FrameNum()))
}

// fitScreen returns the largest size of the screen image that fits in the
// area while preserving the aspect ratio.
func fitScreen(w, h float32) (float32, float32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w/h > screenAspect {
		return h * screenAspect, h
	}
	return w, w / screenAspect
}

// status returns the text for the status bar.
func (img *SdlImgui) status(frameNum int) string {
	s := strings.Builder{}
	if img.romName != "" {
		s.WriteString(img.romName)
		s.WriteString("  ")
	}
	s.WriteString(fmt.Sprintf("frame %d", frameNum))
	if img.prefsSummary != "" {
		s.WriteString("  ")
		s.WriteString(img.prefsSummary)
	}
	if img.sounding {
		s.WriteString("  [sound]")
	}
	if img.state == govern.Paused {
		s.WriteString("  [paused]")
	}
	return s.String()
}
