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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Step the emulation forward one frame. The CPU executes the number of
// instructions specified by the CyclesPerFrame preference, the timers are
// decremented and the framebuffer is sent to the attached renderers.
//
// If the fps cap is active then Step() will not return until it is time for
// the next frame.
func (m *Machine) Step() error {
	if !m.rom.HasLoaded() {
		return curated.Errorf(NoROM)
	}

	cycles := m.Instance.Prefs.CyclesPerFrame.Get().(int)
	for i := 0; i < cycles; i++ {
		if err := m.CPU.ExecuteInstruction(); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	}

	m.Timers.Step()
	m.frameNum++

	if err := m.render(); err != nil {
		return err
	}

	m.wait()

	return nil
}

func (m *Machine) render() error {
	if len(m.renderers) == 0 {
		return nil
	}

	frame := m.Display.Frame()
	for _, r := range m.renderers {
		if err := r.Render(m.frameNum, frame); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	}

	return nil
}

// wait for the frame limiter, if it is active. the limit is synchronised with
// the FPS preference
func (m *Machine) wait() {
	if m.limiter == nil {
		return
	}

	fps := m.Instance.Prefs.FPS.Get().(float64)
	if fps != m.limiter.Limit() {
		m.limiter.SetLimit(fps)
	}

	m.limiter.Wait()
}
