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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

type renderer struct {
	frames   int
	lastNum  int
	last     display.Frame
	finished bool
}

func (r *renderer) Render(frameNum int, frame display.Frame) error {
	r.frames++
	r.lastNum = frameNum
	r.last = frame
	return nil
}

func (r *renderer) EndRendering() error {
	r.finished = true
	return nil
}

func rom(words ...uint16) romloader.Loader {
	ld := romloader.NewLoader("test")
	for _, w := range words {
		ld.Data = append(ld.Data, uint8(w>>8), uint8(w))
	}
	return ld
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(instance.Main, prefs)
	test.DemandSuccess(t, err)
	m.Instance.Normalise()
	return m
}

func TestNoROM(t *testing.T) {
	m := newMachine(t)
	test.ExpectSuccess(t, curated.Is(m.Step(), hardware.NoROM))
	test.ExpectSuccess(t, curated.Is(m.Run(nil), hardware.NoROM))

	// a failed attachment leaves the machine without a ROM
	test.ExpectFailure(t, m.AttachROM(romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))))
	test.ExpectFailure(t, m.Step())
}

func TestFrameCount(t *testing.T) {
	m := newMachine(t)

	// ADD V0, 1; JP 200
	test.DemandSuccess(t, m.AttachROM(rom(0x7001, 0x1200)))

	test.DemandSuccess(t, m.RunForFrameCount(10, nil))
	test.ExpectEquality(t, m.FrameNum(), 10)
	test.ExpectEquality(t, m.CPU.InstructionCount, 10*preferences.DefaultCyclesPerFrame)

	v0, err := m.CPU.V.Get(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v0.Value(), uint8(10*preferences.DefaultCyclesPerFrame/2))

	// changing the number of cycles per frame
	test.DemandSuccess(t, m.Instance.Prefs.CyclesPerFrame.Set(10))
	test.DemandSuccess(t, m.Reset())
	test.DemandSuccess(t, m.RunForFrameCount(3, nil))
	test.ExpectEquality(t, m.CPU.InstructionCount, 30)

	// the check function can end the run early
	test.DemandSuccess(t, m.Reset())
	test.DemandSuccess(t, m.RunForFrameCount(100, func(frame int) (govern.State, error) {
		if frame == 5 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	}))
	test.ExpectEquality(t, m.FrameNum(), 5)
}

func TestTimersStepPerFrame(t *testing.T) {
	m := newMachine(t)

	// LD V0, 10; LD DT, V0; JP 204
	test.DemandSuccess(t, m.AttachROM(rom(0x6010, 0xf015, 0x1204)))

	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.Timers.Delay.Value(), uint8(0x0f))

	test.DemandSuccess(t, m.RunForFrameCount(4, nil))
	test.ExpectEquality(t, m.Timers.Delay.Value(), uint8(0x0b))

	test.DemandSuccess(t, m.RunForFrameCount(0x20, nil))
	test.ExpectEquality(t, m.Timers.Delay.Value(), uint8(0))
}

func TestRenderers(t *testing.T) {
	m := newMachine(t)

	// LD V0, 0; LD F, V0; DRW V0, V0, 5; JP 206
	test.DemandSuccess(t, m.AttachROM(rom(0x6000, 0xf029, 0xd005, 0x1206)))

	r := &renderer{}
	m.AddPixelRenderer(r)
	m.AddPixelRenderer(r)

	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, r.frames, 1)
	test.ExpectEquality(t, r.lastNum, 1)
	test.ExpectSuccess(t, r.last.Pixel(0, 0))
	test.ExpectSuccess(t, r.last.Pixel(3, 4))
	test.ExpectFailure(t, r.last.Pixel(1, 1))

	// the frame is a copy and is not affected by later changes
	m.Display.Clear()
	test.ExpectSuccess(t, r.last.Pixel(0, 0))

	test.DemandSuccess(t, m.End())
	test.ExpectSuccess(t, r.finished)

	m.RemovePixelRenderer(r)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, r.frames, 1)
}

func TestRunAndPause(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.AttachROM(rom(0x7001, 0x1200)))

	var calls int
	var pausedAt int
	err := m.Run(func() (govern.State, error) {
		calls++
		switch {
		case calls < 5:
			return govern.Running, nil
		case calls == 5:
			pausedAt = m.FrameNum()
			return govern.Paused, nil
		case calls < 8:
			// frame number does not change while paused
			test.ExpectEquality(t, m.FrameNum(), pausedAt)
			return govern.Paused, nil
		case calls < 10:
			return govern.Running, nil
		}
		return govern.Ending, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pausedAt, 5)
	test.ExpectEquality(t, m.FrameNum(), 7)
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.AttachROM(rom(0x6123, 0x1202)))
	test.DemandSuccess(t, m.RunForFrameCount(2, nil))

	test.DemandSuccess(t, m.Mem.Write(0x200, 0x00))
	test.DemandSuccess(t, m.Reset())
	test.ExpectEquality(t, m.FrameNum(), 0)
	test.ExpectEquality(t, m.CPU.PC.Value(), uint16(0x200))

	d, err := m.Mem.Read(0x200)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0x61))
}

func TestFatalError(t *testing.T) {
	m := newMachine(t)

	// LD I, FFF; LD B, V0
	test.DemandSuccess(t, m.AttachROM(rom(0xafff, 0xf033)))
	err := m.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, cpubus.AddressError))
}

func TestFPSCap(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.AttachROM(rom(0x1200)))
	test.DemandSuccess(t, m.Instance.Prefs.FPS.Set(1000.0))

	test.ExpectFailure(t, m.FPSCap())
	m.SetFPSCap(true)
	test.ExpectSuccess(t, m.FPSCap())
	test.DemandSuccess(t, m.RunForFrameCount(5, nil))
	m.SetFPSCap(false)
	test.ExpectFailure(t, m.FPSCap())
}

func TestImplements(t *testing.T) {
	m := newMachine(t)
	var p logger.Permission
	test.ExpectImplements(t, m, p)
	test.ExpectSuccess(t, m.AllowLogging())

	m.Instance.Label = instance.Performance
	test.ExpectFailure(t, m.AllowLogging())
}
