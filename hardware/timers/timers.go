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

package timers

import (
	"fmt"
)

// Timer is a single countdown timer.
type Timer struct {
	label string
	value uint8
}

func (tmr Timer) String() string {
	return fmt.Sprintf("%s=%02x", tmr.label, tmr.value)
}

// Value returns the current value of the timer.
func (tmr Timer) Value() uint8 {
	return tmr.value
}

// Load a new value into the timer.
func (tmr *Timer) Load(val uint8) {
	tmr.value = val
}

// Tick decreases the timer by one. The timer never goes below zero.
func (tmr *Timer) Tick() {
	if tmr.value > 0 {
		tmr.value--
	}
}

// Timers is the pair of timers in the machine.
type Timers struct {
	Delay Timer
	Sound Timer
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{
		Delay: Timer{label: "DT"},
		Sound: Timer{label: "ST"},
	}
}

func (tmrs *Timers) String() string {
	return fmt.Sprintf("%s %s", tmrs.Delay, tmrs.Sound)
}

// Reset both timers to zero.
func (tmrs *Timers) Reset() {
	tmrs.Delay.Load(0)
	tmrs.Sound.Load(0)
}

// Step both timers. Should be called once per frame.
func (tmrs *Timers) Step() {
	tmrs.Delay.Tick()
	tmrs.Sound.Tick()
}

// Sounding returns true if the sound timer is active.
func (tmrs *Timers) Sounding() bool {
	return tmrs.Sound.value > 0
}
