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

import (
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Keymap maps key names to keypad keys.
type Keymap map[string]int

// Numpad uses the numeric keypad of a full sized keyboard:
//
//	7 8 9 *
//	4 5 6 -
//	1 2 3 +
//	Right 0 . Enter
//
// which corresponds to keys 0 to F. The unshifted characters produced by the
// numeric keypad on a terminal are included for the same keys.
var Numpad = Keymap{
	"Keypad 7": 0x0, "Keypad 8": 0x1, "Keypad 9": 0x2, "Keypad *": 0x3,
	"Keypad 4": 0x4, "Keypad 5": 0x5, "Keypad 6": 0x6, "Keypad -": 0x7,
	"Keypad 1": 0x8, "Keypad 2": 0x9, "Keypad 3": 0xa, "Keypad +": 0xb,
	"Right": 0xc, "Keypad 0": 0xd, "Keypad .": 0xe, "Keypad Enter": 0xf,

	"7": 0x0, "8": 0x1, "9": 0x2, "*": 0x3,
	"4": 0x4, "5": 0x5, "6": 0x6, "-": 0x7,
	"1": 0x8, "2": 0x9, "3": 0xa, "+": 0xb,
	"0": 0xd, ".": 0xe, "Return": 0xf,
}

// Qwerty uses the left hand side of the main keyboard to represent the
// layout of the original hexadecimal keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R        4 5 6 D
//	A S D F   ->   7 8 9 E
//	Z X C V        A 0 B F
var Qwerty = Keymap{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// Keymaps are the named keymaps that can be selected by the user.
var Keymaps = map[string]Keymap{
	"numpad": Numpad,
	"qwerty": Qwerty,
}

// DefaultKeymap is the name of the keymap used when none is specified.
const DefaultKeymap = "numpad"

// GetKeymap returns the named keymap. The name is not case sensitive.
func GetKeymap(name string) (Keymap, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultKeymap
	}
	if km, ok := Keymaps[name]; ok {
		return km, nil
	}

	n := make([]string, 0, len(Keymaps))
	for k := range Keymaps {
		n = append(n, k)
	}
	sort.Strings(n)

	return nil, curated.Errorf("userinput: unknown keymap (%s). available keymaps: %s", name, strings.Join(n, ", "))
}

// Lookup returns the keypad key for the named key. Letters are not case
// sensitive.
func (km Keymap) Lookup(key string) (int, bool) {
	if k, ok := km[key]; ok {
		return k, true
	}
	if len(key) == 1 {
		k, ok := km[strings.ToUpper(key)]
		return k, ok
	}
	return 0, false
}
