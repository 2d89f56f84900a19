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

package userinput

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	Keymap Keymap

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as keypad input
	LastKeyHandled bool

	// is true if a quit emulation event has been received
	Quit bool

	// is toggled by the pause key
	Paused bool

	// is true if the reset key has been pressed. the emulation should reset
	// the machine and clear the flag
	Reset bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers(km Keymap) *Controllers {
	return &Controllers{
		Keymap: km,
	}
}

// key names with special meaning.
const (
	keyQuit  = "Escape"
	keyPause = "F1"
	keyReset = "F5"
)

// HandleUserInput deals with an event sent from the GUI. Keyboard events are
// forwarded to the HandleInput implementation, if the key is in the keymap.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		return nil

	case EventKeyboard:
		return c.keyboard(ev, handle)
	}

	return nil
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		return nil
	}

	if ev.Down && ev.Mod == KeyModNone {
		switch ev.Key {
		case keyQuit:
			c.Quit = true
			return nil
		case keyPause:
			c.Paused = !c.Paused
			return nil
		case keyReset:
			c.Reset = true
			return nil
		}
	}

	k, ok := c.Keymap.Lookup(ev.Key)
	if !ok {
		return nil
	}

	c.LastKeyHandled = true

	if ev.Down {
		return handle.KeyDown(k)
	}
	return handle.KeyUp(k)
}
