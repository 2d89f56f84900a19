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

package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// NoSuchKey is the curated error pattern returned for a key index outside of
// the range of the keypad.
const NoSuchKey = "keypad: no such key (%d)"

// Keypad records the state of the sixteen keys.
type Keypad struct {
	down [NumKeys]bool

	// the most recent key to be pressed. -1 if there is no pending press
	press int
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{press: -1}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for i := range kp.down {
		if kp.down[i] {
			s.WriteString(fmt.Sprintf("%X", i))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Reset releases all keys and forgets any pending press.
func (kp *Keypad) Reset() {
	for i := range kp.down {
		kp.down[i] = false
	}
	kp.press = -1
}

// KeyDown presses the key. Implements the userinput.HandleInput interface.
func (kp *Keypad) KeyDown(key int) error {
	if key < 0 || key >= NumKeys {
		return curated.Errorf(NoSuchKey, key)
	}
	if !kp.down[key] {
		kp.press = key
	}
	kp.down[key] = true
	return nil
}

// KeyUp releases the key. Implements the userinput.HandleInput interface.
func (kp *Keypad) KeyUp(key int) error {
	if key < 0 || key >= NumKeys {
		return curated.Errorf(NoSuchKey, key)
	}
	kp.down[key] = false
	return nil
}

// IsPressed returns the state of the key.
func (kp *Keypad) IsPressed(key int) (bool, error) {
	if key < 0 || key >= NumKeys {
		return false, curated.Errorf(NoSuchKey, key)
	}
	return kp.down[key], nil
}

// TakePress returns the most recently pressed key and forgets it. Returns
// false if no key has been pressed since the last call to TakePress() or
// ClearPress().
func (kp *Keypad) TakePress() (int, bool) {
	if kp.press < 0 {
		return 0, false
	}
	k := kp.press
	kp.press = -1
	return k, true
}

// ClearPress forgets any pending press.
func (kp *Keypad) ClearPress() {
	kp.press = -1
}
