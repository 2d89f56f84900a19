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

package termplay

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// Service implements GuiCreator interface.
func (tp *TermPlay) Service() {
	select {
	case b := <-tp.read:
		tp.pressKeys(parseKeys(b), time.Now())
	case r := <-tp.featureReq:
		tp.serviceFeatureRequests(r)
	case <-time.After(time.Millisecond):
	}

	// without input there is no way for the user to end the emulation so
	// losing the terminal is treated as a quit
	if !tp.inputLost {
		select {
		case <-tp.readDone:
			tp.inputLost = true
			tp.sendEvent(userinput.EventQuit{})
		default:
		}
	}

	tp.releaseKeys(time.Now())

	tp.crit.Lock()
	if !tp.newFrame {
		tp.crit.Unlock()
		return
	}
	frame := tp.frame
	frameNum := tp.frameNum
	tp.newFrame = false
	tp.crit.Unlock()

	tp.draw = drawFrame(tp.draw[:0], frame)
	tp.draw = append(tp.draw, tp.status(frameNum)...)
	_, _ = tp.output.Write(tp.draw)
}

// pressKeys sends a key down event for every key that is not already held.
// keys already held have their release time extended.
func (tp *TermPlay) pressKeys(keys []string, now time.Time) {
	for _, k := range keys {
		if _, ok := tp.held[k]; !ok {
			tp.sendEvent(userinput.EventKeyboard{Key: k, Down: true})
		}
		tp.held[k] = now.Add(keyHoldTime)
	}
}

// releaseKeys sends a key up event for every held key whose release time has
// passed.
func (tp *TermPlay) releaseKeys(now time.Time) {
	for k, t := range tp.held {
		if now.After(t) {
			delete(tp.held, k)
			tp.sendEvent(userinput.EventKeyboard{Key: k, Down: false})
		}
	}
}

func (tp *TermPlay) sendEvent(ev userinput.Event) {
	if tp.events == nil {
		return
	}

	select {
	case tp.events <- ev:
	default:
		logger.Logf(logger.Allow, "termplay", "dropped input event (%T)", ev)
	}
}

// drawFrame appends the ANSI representation of the frame to the buffer. each
// character cell is two pixels high.
func drawFrame(b []byte, frame display.Frame) []byte {
	// cursor to top left
	b = append(b, "\x1b[H"...)

	for y := 0; y < frame.Height(); y += 2 {
		for x := 0; x < frame.Width(); x++ {
			top := frame.Pixel(x, y)
			bottom := y+1 < frame.Height() && frame.Pixel(x, y+1)
			switch {
			case top && bottom:
				b = append(b, "█"...)
			case top:
				b = append(b, "▀"...)
			case bottom:
				b = append(b, "▄"...)
			default:
				b = append(b, ' ')
			}
		}
		b = append(b, "\r\n"...)
	}

	return b
}

// status line shown underneath the screen. the line is cleared to the end so
// that a previous, longer, status does not show through.
func (tp *TermPlay) status(frameNum int) string {
	s := strings.Builder{}
	if tp.romName != "" {
		s.WriteString(tp.romName)
		s.WriteString("  ")
	}
	s.WriteString(fmt.Sprintf("frame %d", frameNum))
	if tp.sounding {
		s.WriteString("  [sound]")
	}
	if tp.state == govern.Paused {
		s.WriteString("  [paused]")
	}
	s.WriteString("\x1b[K")
	return s.String()
}
