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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// the number of events that can be queued by the GUI before events are
// dropped
const eventQueueLen = 64

// Play runs the machine until the user quits or the process is interrupted.
// The ROM must already be attached to the machine.
//
// If the GUI implements the display.PixelRenderer interface it is added to
// the machine for the duration of the call.
func Play(m *hardware.Machine, scr gui.GUI, km userinput.Keymap) error {
	events := make(chan userinput.Event, eventQueueLen)

	err := scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if r, ok := scr.(display.PixelRenderer); ok {
		m.AddPixelRenderer(r)
		defer m.RemovePixelRenderer(r)
	}

	err = scr.SetFeature(gui.ReqSetROMName, m.ROM().ShortName())
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// not all GUIs have room for the preferences summary
	err = scr.SetFeature(gui.ReqSetPrefsSummary, m.Instance.Prefs.Summary())
	if err != nil && !curated.Is(err, gui.UnsupportedGuiFeature) {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// ctrl-c ends the emulation in the same way as a quit event
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	pl := &playmode{
		m:       m,
		scr:     scr,
		events:  events,
		ctrl:    userinput.NewControllers(km),
		intChan: intChan,
		state:   govern.Running,
	}

	err = scr.SetFeature(gui.ReqState, pl.state)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = m.Run(pl.continueCheck)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	logger.Logf(m, "playmode", "ended at frame %d", m.FrameNum())

	return nil
}

type playmode struct {
	m       *hardware.Machine
	scr     gui.GUI
	events  chan userinput.Event
	ctrl    *userinput.Controllers
	intChan chan os.Signal

	state    govern.State
	sounding bool
}

// continueCheck is called by the machine at the end of every frame.
func (pl *playmode) continueCheck() (govern.State, error) {
	select {
	case <-pl.intChan:
		return govern.Ending, nil
	default:
	}

	err := pl.handleEvents()
	if err != nil {
		return govern.Ending, err
	}

	if pl.ctrl.Quit {
		return pl.setState(govern.Ending)
	}

	if pl.ctrl.Reset {
		pl.ctrl.Reset = false
		if err := pl.m.Reset(); err != nil {
			return govern.Ending, err
		}
		logger.Log(pl.m, "playmode", "reset")
	}

	err = pl.setSounding(pl.m.Timers.Sounding())
	if err != nil {
		return govern.Ending, err
	}

	if pl.ctrl.Paused {
		return pl.setState(govern.Paused)
	}
	return pl.setState(govern.Running)
}

// setSounding notifies the GUI if the sound timer has started or stopped. not
// all GUIs can show the sound state.
func (pl *playmode) setSounding(sounding bool) error {
	if sounding == pl.sounding {
		return nil
	}
	pl.sounding = sounding

	err := pl.scr.SetFeature(gui.ReqSetSounding, sounding)
	if err != nil && !curated.Is(err, gui.UnsupportedGuiFeature) {
		return err
	}

	return nil
}

// handleEvents forwards every queued event to the controllers.
func (pl *playmode) handleEvents() error {
	for {
		select {
		case ev := <-pl.events:
			err := pl.ctrl.HandleUserInput(ev, pl.m.Keypad)
			if err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// setState notifies the GUI if the state has changed.
func (pl *playmode) setState(state govern.State) (govern.State, error) {
	if state == pl.state {
		return state, nil
	}
	pl.state = state

	err := pl.scr.SetFeature(gui.ReqState, state)
	if err != nil {
		return govern.Ending, err
	}

	return state, nil
}
