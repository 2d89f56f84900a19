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
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func expectKeys(t *testing.T, input string, expected ...string) {
	t.Helper()
	keys := parseKeys([]byte(input))
	if !test.ExpectEquality(t, len(keys), len(expected), input) {
		return
	}
	for i := range keys {
		test.ExpectEquality(t, keys[i], expected[i], input)
	}
}

func TestParsePrintable(t *testing.T) {
	expectKeys(t, "q1z", "q", "1", "z")
	expectKeys(t, "7*+.", "7", "*", "+", ".")
	expectKeys(t, "\r", "Return")
	expectKeys(t, " ", "Space")
	expectKeys(t, "")
}

func TestParseEscape(t *testing.T) {
	expectKeys(t, "\x1b", "Escape")
	expectKeys(t, "\x1b\x1b", "Escape", "Escape")
	expectKeys(t, "\x03", "Escape")

	expectKeys(t, "\x1bOP", "F1")
	expectKeys(t, "\x1b[11~", "F1")
	expectKeys(t, "\x1b[15~", "F5")
	expectKeys(t, "\x1b[[E", "F5")
	expectKeys(t, "\x1b[C", "Right")
	expectKeys(t, "\x1bOM", "Keypad Enter")
	expectKeys(t, "\x1bOw\x1bOp", "Keypad 7", "Keypad 0")

	// sequences mixed with printable characters
	expectKeys(t, "a\x1b[Cb", "a", "Right", "b")

	// unrecognised sequences and alt modified keys are ignored
	expectKeys(t, "\x1b[99~x", "x")
	expectKeys(t, "\x1bqx", "x")

	// incomplete sequence at end of input
	expectKeys(t, "x\x1b[1", "x")
}

func TestKeymapCompatibility(t *testing.T) {
	for _, k := range parseKeys([]byte("\x1bOw\x1bOM7\r")) {
		_, ok := userinput.Numpad.Lookup(k)
		test.ExpectSuccess(t, ok, k)
	}
	for _, k := range parseKeys([]byte("1qAv")) {
		_, ok := userinput.Qwerty.Lookup(k)
		test.ExpectSuccess(t, ok, k)
	}
}

func TestHeldKeys(t *testing.T) {
	events := make(chan userinput.Event, 10)
	tp := &TermPlay{
		held:   make(map[string]time.Time),
		events: events,
	}

	now := time.Now()
	tp.pressKeys([]string{"q"}, now)
	test.ExpectEquality(t, len(events), 1)
	ev := (<-events).(userinput.EventKeyboard)
	test.ExpectEquality(t, ev.Key, "q")
	test.ExpectSuccess(t, ev.Down)

	// a repeated key press extends the hold time but does not send another
	// event
	now = now.Add(keyHoldTime / 2)
	tp.pressKeys([]string{"q"}, now)
	test.ExpectEquality(t, len(events), 0)

	tp.releaseKeys(now.Add(keyHoldTime / 2))
	test.ExpectEquality(t, len(events), 0)

	tp.releaseKeys(now.Add(keyHoldTime * 2))
	test.ExpectEquality(t, len(events), 1)
	ev = (<-events).(userinput.EventKeyboard)
	test.ExpectEquality(t, ev.Key, "q")
	test.ExpectFailure(t, ev.Down)
	test.ExpectEquality(t, len(tp.held), 0)
}

func TestDrawFrame(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.DrawSprite(0, 0, []uint8{0x80, 0x80, 0x80})

	b := string(drawFrame(nil, fb.Frame()))
	test.ExpectSuccess(t, strings.HasPrefix(b, "\x1b[H"))

	lines := strings.Split(strings.TrimPrefix(b, "\x1b[H"), "\r\n")

	// the final line is empty because every row ends with a newline
	test.ExpectEquality(t, len(lines), display.Height/2+1)
	test.ExpectEquality(t, lines[0], "█"+strings.Repeat(" ", display.Width-1))
	test.ExpectEquality(t, lines[1], "▀"+strings.Repeat(" ", display.Width-1))
	test.ExpectEquality(t, lines[2], strings.Repeat(" ", display.Width))
}

func TestStatus(t *testing.T) {
	tp := &TermPlay{}
	test.ExpectEquality(t, tp.status(5), "frame 5\x1b[K")

	tp.romName = "PONG"
	tp.state = govern.Paused
	test.ExpectEquality(t, tp.status(5), "PONG  frame 5  [paused]\x1b[K")

	tp.sounding = true
	test.ExpectEquality(t, tp.status(5), "PONG  frame 5  [sound]  [paused]\x1b[K")
}

func TestInputLost(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())
	test.DemandSuccess(t, r.Close())

	out, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	test.DemandSuccess(t, err)
	defer out.Close()

	events := make(chan userinput.Event, 10)
	tp := &TermPlay{
		input:      r,
		output:     out,
		read:       make(chan []byte, 16),
		readQuit:   make(chan bool),
		readDone:   make(chan bool),
		held:       make(map[string]time.Time),
		featureReq: make(chan featureRequest, 1),
		featureRes: make(chan featureResult, 1),
		events:     events,
	}

	// reading from a closed file is an error and the input goroutine ends
	// without being asked to
	go tp.readInput()
	select {
	case <-tp.readDone:
	case <-time.After(2 * time.Second):
		t.Fatal("input goroutine did not end after read error")
	}

	// the next service sends a quit event, but only once
	tp.Service()
	test.DemandEquality(t, len(events), 1)
	_, ok := (<-events).(userinput.EventQuit)
	test.ExpectSuccess(t, ok)
	tp.Service()
	test.ExpectEquality(t, len(events), 0)

	done := make(chan bool)
	go func() {
		tp.Destroy(io.Discard)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Destroy() blocked after input read error")
	}
}
