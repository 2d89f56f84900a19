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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8/test"
)

func TestFont(t *testing.T) {
	mem := memory.NewMemory()

	// glyph for zero starts at the very beginning of memory
	for i, v := range []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0} {
		d, err := mem.Read(uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, v)
	}

	// glyph for F is the last glyph
	a := memory.GlyphAddress(0x0f)
	test.ExpectEquality(t, a, uint16(75))
	d, err := mem.Read(a + 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0x80))

	// only the lower nibble is used
	test.ExpectEquality(t, memory.GlyphAddress(0x1a), memory.GlyphAddress(0x0a))
}

func TestBounds(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Write(0xfff, 0x55))
	d, err := mem.Read(0xfff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0x55))

	_, err = mem.Read(0x1000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))

	err = mem.Write(0xffff, 0x00)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory()

	test.DemandSuccess(t, mem.LoadProgram([]uint8{0x00, 0xe0, 0x12, 0x00}))
	d, _ := mem.Read(memory.ProgramOrigin + 1)
	test.ExpectEquality(t, d, uint8(0xe0))

	// a second program clears what was left by the first
	test.DemandSuccess(t, mem.LoadProgram([]uint8{0xa2}))
	d, _ = mem.Read(memory.ProgramOrigin + 1)
	test.ExpectEquality(t, d, uint8(0x00))

	// largest possible program
	test.ExpectSuccess(t, mem.LoadProgram(make([]uint8, memory.MaxProgramSize)))
	test.ExpectFailure(t, mem.LoadProgram(make([]uint8, memory.MaxProgramSize+1)))

	// reset clears the program but keeps the font
	test.DemandSuccess(t, mem.LoadProgram([]uint8{0xff}))
	mem.Reset()
	d, _ = mem.Read(memory.ProgramOrigin)
	test.ExpectEquality(t, d, uint8(0x00))
	d, _ = mem.Read(memory.FontOrigin)
	test.ExpectEquality(t, d, uint8(0xf0))
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	s, err := mem.Dump(0, 5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "000  f0 90 90 90 f0\n")

	_, err = mem.Dump(0, memory.Size+1)
	test.ExpectFailure(t, err)
}
