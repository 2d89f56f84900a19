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
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// the minimum size of the terminal. one row is used for the status line
const (
	minCols = display.Width
	minRows = display.Height/2 + 1
)

// how long a key remains pressed after the most recent key press from the
// terminal
const keyHoldTime = 150 * time.Millisecond

// TermPlay implements the gui.GUI and the display.PixelRenderer interfaces
// for a posix terminal.
type TermPlay struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// bytes read by the input goroutine. readQuit is closed by Destroy() and
	// readDone is closed when the input goroutine ends, for whatever reason
	read     chan []byte
	readQuit chan bool
	readDone chan bool

	// the input goroutine has ended before Destroy() was called
	inputLost bool

	// keys that have been pressed and the time at which they should be
	// released
	held map[string]time.Time

	// the most recent frame and whether it has been drawn yet
	crit     sync.Mutex
	frame    display.Frame
	frameNum int
	newFrame bool

	// the drawing buffer is reused for each frame
	draw []byte

	// connects terminal input with the emulation
	events chan userinput.Event

	featureReq chan featureRequest
	featureRes chan featureResult

	romName  string
	state    govern.State
	sounding bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay type.
// The terminal is put into raw mode until Destroy() is called.
func NewTermPlay(input *os.File, output *os.File) (*TermPlay, error) {
	tp := &TermPlay{
		input:      input,
		output:     output,
		read:       make(chan []byte, 16),
		readQuit:   make(chan bool),
		readDone:   make(chan bool),
		held:       make(map[string]time.Time),
		featureReq: make(chan featureRequest, 1),
		featureRes: make(chan featureResult, 1),
		state:      govern.Initialising,
	}

	ws, err := unix.IoctlGetWinsize(int(output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}
	if ws.Col < minCols || ws.Row < minRows {
		return nil, curated.Errorf("termplay: terminal must be at least %dx%d (is %dx%d)", minCols, minRows, ws.Col, ws.Row)
	}

	err = termios.Tcgetattr(input.Fd(), &tp.canAttr)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	// raw mode with reads returning after a tenth of a second if there is no
	// input. this allows the input goroutine to end promptly
	tp.rawAttr = tp.canAttr
	termios.Cfmakeraw(&tp.rawAttr)
	tp.rawAttr.Cc[unix.VMIN] = 0
	tp.rawAttr.Cc[unix.VTIME] = 1

	err = termios.Tcsetattr(input.Fd(), termios.TCSANOW, &tp.rawAttr)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	// clear screen and hide cursor
	tp.print("\x1b[2J\x1b[?25l")

	go tp.readInput()

	return tp, nil
}

// readInput runs in its own goroutine until Destroy() is called or until
// there is an error reading from the terminal.
func (tp *TermPlay) readInput() {
	defer close(tp.readDone)

	b := make([]byte, 32)
	for {
		select {
		case <-tp.readQuit:
			return
		default:
		}

		n, err := tp.input.Read(b)
		if err != nil && err != io.EOF {
			logger.Logf(logger.Allow, "termplay", "read: %v", err)
			return
		}
		if n > 0 {
			c := make([]byte, n)
			copy(c, b[:n])
			select {
			case tp.read <- c:
			case <-tp.readQuit:
				return
			}
		}
	}
}

// Destroy implements GuiCreator interface. The terminal is restored to the
// mode it was in before NewTermPlay() was called.
func (tp *TermPlay) Destroy(output io.Writer) {
	close(tp.readQuit)
	<-tp.readDone

	// show cursor and move it below the screen
	tp.print(fmt.Sprintf("\x1b[?25h\x1b[%d;1H\r\n", minRows+1))

	err := termios.Tcsetattr(tp.input.Fd(), termios.TCSANOW, &tp.canAttr)
	if err != nil {
		fmt.Fprintln(output, err)
	}
}

// Render implements display.PixelRenderer interface.
func (tp *TermPlay) Render(frameNum int, frame display.Frame) error {
	tp.crit.Lock()
	defer tp.crit.Unlock()
	tp.frame = frame
	tp.frameNum = frameNum
	tp.newFrame = true
	return nil
}

// EndRendering implements display.PixelRenderer interface.
func (tp *TermPlay) EndRendering() error {
	return nil
}

func (tp *TermPlay) print(s string) {
	_, _ = tp.output.WriteString(s)
}
