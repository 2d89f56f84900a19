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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// NumData is the number of data registers.
const NumData = 16

// Flag is the index of the flag register VF.
const Flag = 0x0f

// NoSuchRegister is the curated error pattern returned by Data.Get() for an
// index outside of the register bank.
const NoSuchRegister = "registers: no such register (%d)"

// Data is the bank of data registers V0 to VF.
type Data struct {
	regs [NumData]Register
}

// NewData is the preferred method of initialisation for the Data type.
func NewData() *Data {
	d := &Data{}
	for i := range d.regs {
		d.regs[i] = NewRegister(0, fmt.Sprintf("V%X", i))
	}
	return d
}

func (d *Data) String() string {
	s := strings.Builder{}
	for i := range d.regs {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(d.regs[i].String())
	}
	return s.String()
}

// Reset all registers to zero.
func (d *Data) Reset() {
	for i := range d.regs {
		d.regs[i].Load(0)
	}
}

// Get returns the numbered register. Returns an error if there is no such
// register.
func (d *Data) Get(n int) (*Register, error) {
	if n < 0 || n >= NumData {
		return nil, curated.Errorf(NoSuchRegister, n)
	}
	return &d.regs[n], nil
}

// VF returns the flag register.
func (d *Data) VF() *Register {
	return &d.regs[Flag]
}
