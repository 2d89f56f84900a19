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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestVideo(t *testing.T) {
	dig := digest.NewVideo()

	var r display.PixelRenderer
	test.ExpectImplements(t, dig, r)
	var d digest.Digest
	test.ExpectImplements(t, dig, d)

	zero := dig.Hash()
	test.ExpectEquality(t, len(zero), 40)

	fb := display.NewFramebuffer()
	test.DemandSuccess(t, dig.Render(1, fb.Frame()))
	blank := dig.Hash()
	test.ExpectInequality(t, blank, zero)
	test.ExpectEquality(t, dig.FrameNum(), 1)

	// the same frame produces a different hash because the hashes are chained
	test.DemandSuccess(t, dig.Render(2, fb.Frame()))
	test.ExpectInequality(t, dig.Hash(), blank)

	// the sequence of hashes is repeatable after a reset
	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
	test.DemandSuccess(t, dig.Render(1, fb.Frame()))
	test.ExpectEquality(t, dig.Hash(), blank)

	// different frame content produces a different hash
	dig.ResetDigest()
	fb.DrawSprite(0, 0, []uint8{0x80})
	test.DemandSuccess(t, dig.Render(1, fb.Frame()))
	test.ExpectInequality(t, dig.Hash(), blank)
}
