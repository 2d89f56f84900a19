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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.End()

	test.ExpectEquality(t, lim.Limit(), 100.0)

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}

	// ten frames at 100fps is nine sleeps of 10ms after the first tick
	test.ExpectSuccess(t, time.Since(start) >= 80*time.Millisecond)

	lim.SetLimit(1000)
	test.ExpectEquality(t, lim.Limit(), 1000.0)
	lim.Wait()
}
