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
)

// IndexLimit is the highest address that the index register can point to
// without the FX1E instruction reporting an overflow.
const IndexLimit = 0x0fff

// Index represents the 16 bit I register.
type Index struct {
	value uint16
}

func (i Index) String() string {
	return fmt.Sprintf("I=%03x", i.value)
}

// Value returns the current value of the register.
func (i Index) Value() uint16 {
	return i.value
}

// Load value into register.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add value to register. Returns true if the result is beyond IndexLimit.
func (i *Index) Add(val uint8) bool {
	i.value += uint16(val)
	return i.value > IndexLimit
}
