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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

func TestTimers(t *testing.T) {
	tmrs := timers.NewTimers()
	test.ExpectEquality(t, tmrs.String(), "DT=00 ST=00")
	test.ExpectFailure(t, tmrs.Sounding())

	tmrs.Delay.Load(3)
	tmrs.Sound.Load(1)
	test.ExpectSuccess(t, tmrs.Sounding())

	tmrs.Step()
	test.ExpectEquality(t, tmrs.Delay.Value(), uint8(2))
	test.ExpectEquality(t, tmrs.Sound.Value(), uint8(0))
	test.ExpectFailure(t, tmrs.Sounding())

	// timers never go below zero
	for i := 0; i < 10; i++ {
		tmrs.Step()
	}
	test.ExpectEquality(t, tmrs.Delay.Value(), uint8(0))
	test.ExpectEquality(t, tmrs.Sound.Value(), uint8(0))

	tmrs.Delay.Load(0xff)
	tmrs.Reset()
	test.ExpectEquality(t, tmrs.Delay.Value(), uint8(0))
}
