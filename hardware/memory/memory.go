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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
)

// Memory layout.
const (
	Size           = 4096
	FontOrigin     = 0x000
	ProgramOrigin  = 0x200
	MaxProgramSize = Size - ProgramOrigin
)

// Memory is the flat address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes", Size)
}

// Reset clears memory and reinstalls the font.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
	copy(mem.data[FontOrigin:], Font[:])
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.data[address] = data
	return nil
}

// LoadProgram copies data into memory starting at ProgramOrigin. The program
// area is cleared first.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf("memory: program too large (%d bytes)", len(data))
	}
	for i := ProgramOrigin; i < Size; i++ {
		mem.data[i] = 0
	}
	copy(mem.data[ProgramOrigin:], data)
	return nil
}

// Dump writes a hex listing of the memory between the two addresses
// (inclusive of start, exclusive of end).
func (mem *Memory) Dump(start uint16, end uint16) (string, error) {
	if int(end) > Size || start > end {
		return "", curated.Errorf(cpubus.AddressError, end)
	}

	s := strings.Builder{}
	for a := start; a < end; a += 16 {
		s.WriteString(fmt.Sprintf("%03x ", a))
		for b := a; b < a+16 && b < end; b++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[b]))
		}
		s.WriteString("\n")
	}

	return s.String(), nil
}
