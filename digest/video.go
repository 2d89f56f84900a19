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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video is an implementation of the display.PixelRenderer interface. It
// generates a SHA-1 value of the framebuffer every frame. It does not
// display the image anywhere.
type Video struct {
	digest [sha1.Size]byte

	// the first part of the buffer is the previous digest value. the rest
	// is the packed framebuffer
	pixels []byte

	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+display.Width*display.Height/8),
	}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of the last frame that was added to the hash.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Render implements display.PixelRenderer interface.
func (dig *Video) Render(frameNum int, frame display.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: %v", "digest error during new frame")
	}
	copy(dig.pixels[n:], frame.Bytes())

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	return nil
}

// EndRendering implements display.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
