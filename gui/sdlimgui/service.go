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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// mouse state is read once per frame in platform.newFrame()
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread.
func (img *SdlImgui) Service() {
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			img.sendEvent(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Mod:    keyMod(ev.Keysym.Mod),
				Repeat: ev.Repeat != 0,
			})
		}
	}

	select {
	case r := <-img.featureReq:
		img.serviceFeatureRequests(r)
	default:
	}

	img.screen.update()

	img.plt.newFrame()
	imgui.NewFrame()
	img.draw()
	imgui.Render()

	img.glsl.preRender()
	img.glsl.render()
	img.plt.postRender()
}

func (img *SdlImgui) sendEvent(ev userinput.Event) {
	if img.events == nil {
		return
	}

	select {
	case img.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlimgui", "dropped input event (%T)", ev)
	}
}

// keyMod converts the modifier state of a keysym. alt takes priority over
// shift, shift over ctrl.
func keyMod(mod uint16) userinput.KeyMod {
	switch {
	case mod&sdl.KMOD_ALT != 0:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_SHIFT != 0:
		return userinput.KeyModShift
	case mod&sdl.KMOD_CTRL != 0:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}
