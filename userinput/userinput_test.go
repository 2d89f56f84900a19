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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeymaps(t *testing.T) {
	// both keymaps cover all sixteen keys
	for name, km := range userinput.Keymaps {
		var seen [keypad.NumKeys]bool
		for _, k := range km {
			test.ExpectSuccess(t, k >= 0 && k < keypad.NumKeys, name)
			seen[k] = true
		}
		for k := range seen {
			test.ExpectSuccess(t, seen[k], name, k)
		}
	}

	km, err := userinput.GetKeymap("")
	test.DemandSuccess(t, err)
	k, ok := km.Lookup("Keypad 7")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x0)
	k, ok = km.Lookup("Keypad Enter")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xf)
	k, ok = km.Lookup("Right")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xc)

	km, err = userinput.GetKeymap("QWERTY")
	test.DemandSuccess(t, err)
	k, ok = km.Lookup("v")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xf)
	_, ok = km.Lookup("Keypad 7")
	test.ExpectFailure(t, ok)

	_, err = userinput.GetKeymap("dvorak")
	test.ExpectFailure(t, err)
}

func TestHandleUserInput(t *testing.T) {
	kp := keypad.NewKeypad()
	c := userinput.NewControllers(userinput.Qwerty)

	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, kp))
	test.ExpectSuccess(t, c.LastKeyHandled)
	pressed, err := kp.IsPressed(0x5)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, pressed)

	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false}, kp))
	pressed, err = kp.IsPressed(0x5)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, pressed)

	// keys that are not in the keymap are ignored
	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: true}, kp))
	test.ExpectFailure(t, c.LastKeyHandled)

	// repeated key events are ignored
	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true, Repeat: true}, kp))
	test.ExpectFailure(t, c.LastKeyHandled)

	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "F1", Down: true}, kp))
	test.ExpectSuccess(t, c.Paused)
	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "F1", Down: true}, kp))
	test.ExpectFailure(t, c.Paused)

	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "F5", Down: true}, kp))
	test.ExpectSuccess(t, c.Reset)

	test.ExpectFailure(t, c.Quit)
	test.DemandSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true}, kp))
	test.ExpectSuccess(t, c.Quit)

	c.Quit = false
	test.DemandSuccess(t, c.HandleUserInput(userinput.EventQuit{}, kp))
	test.ExpectSuccess(t, c.Quit)
}
