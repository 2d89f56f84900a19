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

package cpu_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type clock struct {
	mc *cpu.CPU
}

func (c *clock) Coords() random.Coords {
	if c.mc == nil {
		return random.Coords{}
	}
	return random.Coords{Instruction: c.mc.InstructionCount}
}

// rig is the CPU and everything connected to it
type rig struct {
	mc   *cpu.CPU
	mem  *memory.Memory
	fb   *display.Framebuffer
	tmrs *timers.Timers
	kp   *keypad.Keypad
	ins  *instance.Instance
}

func newRig(t *testing.T) *rig {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	clk := &clock{}
	ins, err := instance.NewInstance(clk, prefs)
	test.DemandSuccess(t, err)
	ins.Normalise()

	r := &rig{
		mem:  memory.NewMemory(),
		fb:   display.NewFramebuffer(),
		tmrs: timers.NewTimers(),
		kp:   keypad.NewKeypad(),
		ins:  ins,
	}
	r.mc = cpu.NewCPU(ins, r.mem, r.fb, r.tmrs, r.kp)
	clk.mc = r.mc

	return r
}

// putInstructions writes the instruction words to memory starting at origin.
// returns the address of the next instruction
func (r *rig) putInstructions(origin uint16, words ...uint16) uint16 {
	for i, w := range words {
		a := origin + uint16(i*2)
		r.mem.Write(a, uint8(w>>8))
		r.mem.Write(a+1, uint8(w))
	}
	return origin + uint16(len(words)*2)
}

// load program at the program origin and reset the CPU
func (r *rig) load(words ...uint16) {
	r.mc.Reset()
	r.putInstructions(memory.ProgramOrigin, words...)
}

// step the CPU the number of times. the test fails if there is an error
func (r *rig) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := r.mc.ExecuteInstruction(); err != nil {
			t.Fatal(err)
		}
	}
}

func (r *rig) v(t *testing.T, n int) uint8 {
	t.Helper()
	reg, err := r.mc.V.Get(n)
	test.DemandSuccess(t, err)
	return reg.Value()
}

func (r *rig) setV(t *testing.T, n int, val uint8) {
	t.Helper()
	reg, err := r.mc.V.Get(n)
	test.DemandSuccess(t, err)
	reg.Load(val)
}

func (r *rig) assertMem(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, err := r.mem.Read(address)
	test.DemandSuccess(t, err)
	if d != value {
		t.Errorf("memory assertion failed (%v  - wanted %v at address %04x", d, value, address)
	}
}
