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

// Package limiter paces the emulation to a frame rate. The limiter runs a
// ticker in its own goroutine and Wait() blocks until the next tick.
package limiter

import (
	"time"
)

// FpsLimiter is the frame rate limiter.
type FpsLimiter struct {
	framesPerSecond float64

	tick  chan bool
	limit chan time.Duration
	quit  chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type. The limiter must be stopped with End() when it is no longer needed.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		tick:            make(chan bool),
		limit:           make(chan time.Duration, 1),
		quit:            make(chan bool),
	}

	go func(secondsPerFrame time.Duration) {
		adjusted := secondsPerFrame
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case secondsPerFrame = <-lim.limit:
				adjusted = secondsPerFrame
				t = time.Now()
				continue // for loop
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			// correct the next sleep period by the amount we overslept
			nt := time.Now()
			adjusted -= nt.Sub(t) - secondsPerFrame
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}(duration(framesPerSecond))

	return lim
}

func duration(framesPerSecond float64) time.Duration {
	if framesPerSecond <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / framesPerSecond)
}

// SetLimit changes the frame rate. Values of zero or less remove the limit.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond

	// drop any unclaimed limit change
	select {
	case <-lim.limit:
	default:
	}
	lim.limit <- duration(framesPerSecond)
}

// Limit returns the current frame rate.
func (lim *FpsLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Wait blocks until the next tick.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if a tick is ready. It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// End stops the limiter goroutine. The limiter should not be used again.
func (lim *FpsLimiter) End() {
	close(lim.quit)
}
