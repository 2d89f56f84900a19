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

package playmode_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

// mockGUI records feature requests and calls the onRender and onState
// functions so that tests can send events at specific times.
type mockGUI struct {
	events  chan userinput.Event
	romName string
	visible bool
	states  []govern.State
	renders int

	// every change to the sounding state
	sounding []bool

	onRender func(g *mockGUI, frameNum int)
	onState  func(g *mockGUI, state govern.State)
}

func (g *mockGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		g.events = args[0].(chan userinput.Event)
	case gui.ReqSetROMName:
		g.romName = args[0].(string)
	case gui.ReqSetVisibility:
		g.visible = args[0].(bool)
	case gui.ReqSetSounding:
		g.sounding = append(g.sounding, args[0].(bool))
	case gui.ReqState:
		state := args[0].(govern.State)
		g.states = append(g.states, state)
		if g.onState != nil {
			g.onState(g, state)
		}
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}
	return nil
}

func (g *mockGUI) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
}

func (g *mockGUI) Render(frameNum int, frame display.Frame) error {
	g.renders++
	if g.onRender != nil {
		g.onRender(g, frameNum)
	}
	return nil
}

func (g *mockGUI) EndRendering() error {
	return nil
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(instance.Main, prefs)
	test.DemandSuccess(t, err)

	// LD V0, 0; SKP V0; JP 202; LD V1, 1; JP 208
	ld := romloader.NewLoader("test.ch8")
	ld.Data = []uint8{0x60, 0x00, 0xe0, 0x9e, 0x12, 0x02, 0x61, 0x01, 0x12, 0x08}
	test.DemandSuccess(t, m.AttachROM(ld))

	return m
}

func TestQuit(t *testing.T) {
	m := newMachine(t)

	g := &mockGUI{
		onRender: func(g *mockGUI, frameNum int) {
			switch frameNum {
			case 3:
				g.events <- userinput.EventKeyboard{Key: "Keypad 7", Down: true}
			case 5:
				g.events <- userinput.EventQuit{}
			}
		},
	}

	test.DemandSuccess(t, playmode.Play(m, g, userinput.Numpad))
	test.ExpectEquality(t, g.romName, "test")
	test.ExpectSuccess(t, g.visible)
	test.ExpectEquality(t, m.FrameNum(), 5)
	test.ExpectEquality(t, len(g.states), 2)
	test.ExpectEquality(t, g.states[0], govern.Running)
	test.ExpectEquality(t, g.states[1], govern.Ending)

	// key 0 is still held and the program has seen it
	pressed, err := m.Keypad.IsPressed(0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, pressed)
	v1, err := m.CPU.V.Get(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v1.Value(), uint8(1))

	// the GUI is no longer a renderer for the machine
	renders := g.renders
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, g.renders, renders)
}

func TestEscapeKey(t *testing.T) {
	m := newMachine(t)

	g := &mockGUI{
		onRender: func(g *mockGUI, frameNum int) {
			if frameNum == 2 {
				g.events <- userinput.EventKeyboard{Key: "Escape", Down: true}
			}
		},
	}

	test.DemandSuccess(t, playmode.Play(m, g, userinput.Qwerty))
	test.ExpectEquality(t, m.FrameNum(), 2)
}

func TestPause(t *testing.T) {
	m := newMachine(t)

	g := &mockGUI{
		onRender: func(g *mockGUI, frameNum int) {
			if frameNum == 2 {
				g.events <- userinput.EventKeyboard{Key: "F1", Down: true}
			}
		},
		onState: func(g *mockGUI, state govern.State) {
			if state == govern.Paused {
				g.events <- userinput.EventQuit{}
			}
		},
	}

	test.DemandSuccess(t, playmode.Play(m, g, userinput.Numpad))
	test.ExpectEquality(t, m.FrameNum(), 2)
	test.ExpectEquality(t, len(g.states), 3)
	test.ExpectEquality(t, g.states[1], govern.Paused)
	test.ExpectEquality(t, g.states[2], govern.Ending)
}

func TestReset(t *testing.T) {
	m := newMachine(t)

	g := &mockGUI{
		onRender: func(g *mockGUI, frameNum int) {
			switch g.renders {
			case 3:
				g.events <- userinput.EventKeyboard{Key: "F5", Down: true}
			case 6:
				g.events <- userinput.EventQuit{}
			}
		},
	}

	test.DemandSuccess(t, playmode.Play(m, g, userinput.Numpad))
	test.ExpectEquality(t, g.renders, 6)
	test.ExpectEquality(t, m.FrameNum(), 3)
}

func TestSounding(t *testing.T) {
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.CyclesPerFrame.Set(1))
	m, err := hardware.NewMachine(instance.Main, prefs)
	test.DemandSuccess(t, err)

	// LD V0, 2; LD ST, V0; JP 204
	ld := romloader.NewLoader("test.ch8")
	ld.Data = []uint8{0x60, 0x02, 0xf0, 0x18, 0x12, 0x04}
	test.DemandSuccess(t, m.AttachROM(ld))

	g := &mockGUI{
		onRender: func(g *mockGUI, frameNum int) {
			if frameNum == 6 {
				g.events <- userinput.EventQuit{}
			}
		},
	}

	test.DemandSuccess(t, playmode.Play(m, g, userinput.Numpad))

	// the sound timer is loaded with 2 in the second frame and ticked at the
	// end of it. it reaches zero at the end of the third frame
	test.DemandEquality(t, len(g.sounding), 2)
	test.ExpectSuccess(t, g.sounding[0])
	test.ExpectFailure(t, g.sounding[1])
}
