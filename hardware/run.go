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
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
)

// While the continueCheck() function only runs at the end of a frame it can
// still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// the amount of time to sleep in the Paused state when there is no frame
// limiter.
const pausedSleep = 10 * time.Millisecond

// Run sets the emulation running. The continueCheck function is called at the
// end of every frame and the emulation ends when it returns govern.Ending.
// When continueCheck returns govern.Paused the CPU and timers are halted but
// the continueCheck function is still called.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if !m.rom.HasLoaded() {
		return curated.Errorf(NoROM)
	}

	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			if err := m.Step(); err != nil {
				return err
			}
		case govern.Paused:
			if m.limiter != nil {
				m.limiter.Wait()
			} else {
				time.Sleep(pausedSleep)
			}
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// The continueCheck function is called after every frame and can end the
// emulation early.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := m.frameNum + numFrames

	state := govern.Running
	for m.frameNum != targetFrame && state != govern.Ending {
		if err := m.Step(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(m.frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
