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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/romloader"
)

// NoROM is returned by Step() and Run() if a ROM has not been attached.
const NoROM = "machine: no ROM attached"

// Machine is the root of the emulated hardware.
type Machine struct {
	Instance *instance.Instance

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Framebuffer
	Timers  *timers.Timers
	Keypad  *keypad.Keypad

	renderers []display.PixelRenderer

	// limiter is nil if the fps cap is not active
	limiter *limiter.FpsLimiter

	// number of frames since the last reset
	frameNum int

	rom romloader.Loader
}

// NewMachine creates a new machine and everything associated with the
// hardware. The label indicates how the machine is being used. If prefs is
// nil then the preferences are loaded from the default preferences file.
func NewMachine(label instance.Label, prefs *preferences.Preferences) (*Machine, error) {
	m := &Machine{
		Mem:     memory.NewMemory(),
		Display: display.NewFramebuffer(),
		Timers:  timers.NewTimers(),
		Keypad:  keypad.NewKeypad(),
	}

	var err error

	m.Instance, err = instance.NewInstance(m, prefs)
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}
	m.Instance.Label = label

	m.CPU = cpu.NewCPU(m.Instance, m.Mem, m.Display, m.Timers, m.Keypad)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("frame=%d %s %s", m.frameNum, m.CPU, m.Timers)
}

// Coords implements the random.Clock interface.
func (m *Machine) Coords() random.Coords {
	c := random.Coords{Frame: m.frameNum}
	if m.CPU != nil {
		c.Instruction = m.CPU.InstructionCount
	}
	return c
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return m.Instance.AllowLogging()
}

// FrameNum returns the number of frames since the last reset.
func (m *Machine) FrameNum() int {
	return m.frameNum
}

// ROM returns the loader of the attached ROM.
func (m *Machine) ROM() romloader.Loader {
	return m.rom
}

// AttachROM loads the ROM and resets the machine. The previously attached ROM
// remains attached if there is an error.
func (m *Machine) AttachROM(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	m.rom = ld

	logger.Logf(m, "machine", "attached %s", m.rom)

	return m.Reset()
}

// Reset the machine. Memory, the display, the registers and the timers are
// returned to their initial state and the ROM is reloaded.
func (m *Machine) Reset() error {
	m.Mem.Reset()
	if m.rom.HasLoaded() {
		if err := m.Mem.LoadProgram(m.rom.Data); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	}
	m.Display.Clear()
	m.Timers.Reset()
	m.Keypad.Reset()
	m.frameNum = 0
	m.CPU.Reset()

	return nil
}

// AddPixelRenderer adds a renderer to the list of renderers that will be sent
// the framebuffer at the end of every frame.
func (m *Machine) AddPixelRenderer(r display.PixelRenderer) {
	for _, o := range m.renderers {
		if o == r {
			return
		}
	}
	m.renderers = append(m.renderers, r)
}

// RemovePixelRenderer removes a renderer previously added with
// AddPixelRenderer().
func (m *Machine) RemovePixelRenderer(r display.PixelRenderer) {
	for i, o := range m.renderers {
		if o == r {
			m.renderers = append(m.renderers[:i], m.renderers[i+1:]...)
			return
		}
	}
}

// SetFPSCap turns the frame limiter on or off. The frame rate is taken from
// the hardware.fps preference.
func (m *Machine) SetFPSCap(limit bool) {
	if limit {
		if m.limiter == nil {
			m.limiter = limiter.NewFPSLimiter(m.Instance.Prefs.FPS.Get().(float64))
		}
		return
	}

	if m.limiter != nil {
		m.limiter.End()
		m.limiter = nil
	}
}

// FPSCap returns true if the frame limiter is active.
func (m *Machine) FPSCap() bool {
	return m.limiter != nil
}

// End the emulation. Renderers are told that rendering has finished and the
// frame limiter is stopped.
func (m *Machine) End() error {
	m.SetFPSCap(false)

	var err error
	for _, r := range m.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = curated.Errorf("machine: %v", e)
		}
	}
	return err
}
