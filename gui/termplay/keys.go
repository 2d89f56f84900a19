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

// keyCtrlC is treated as a quit request because raw mode disables the
// interrupt signal.
const keyCtrlC = 0x03

const keyEscape = "Escape"

// escape sequences recognised by the parser. the "O" forms are sent by
// terminals in application keypad mode
var escapeSequences = map[string]string{
	"[A":   "Up",
	"[B":   "Down",
	"[C":   "Right",
	"[D":   "Left",
	"OA":   "Up",
	"OB":   "Down",
	"OC":   "Right",
	"OD":   "Left",
	"OP":   "F1",
	"OQ":   "F2",
	"OR":   "F3",
	"OS":   "F4",
	"[11~": "F1",
	"[12~": "F2",
	"[13~": "F3",
	"[14~": "F4",
	"[15~": "F5",
	"[[A":  "F1",
	"[[E":  "F5",
	"OM":   "Keypad Enter",
	"Oj":   "Keypad *",
	"Ok":   "Keypad +",
	"Om":   "Keypad -",
	"On":   "Keypad .",
	"Op":   "Keypad 0",
	"Oq":   "Keypad 1",
	"Or":   "Keypad 2",
	"Os":   "Keypad 3",
	"Ot":   "Keypad 4",
	"Ou":   "Keypad 5",
	"Ov":   "Keypad 6",
	"Ow":   "Keypad 7",
	"Ox":   "Keypad 8",
	"Oy":   "Keypad 9",
}

// parseKeys converts bytes read from the terminal into key names. The names
// are the same as those used by the SDL based GUIs so the same keymaps can be
// used.
//
// An escape byte at the end of the input, or an escape byte followed by
// another escape byte, is a press of the escape key. Unrecognised escape
// sequences are discarded.
func parseKeys(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == 0x1b:
			if i+1 >= len(b) || b[i+1] == 0x1b {
				keys = append(keys, keyEscape)
				continue
			}

			n, key := parseEscape(b[i+1:])
			if key != "" {
				keys = append(keys, key)
			}
			i += n

		case c == keyCtrlC:
			keys = append(keys, keyEscape)

		case c == '\r' || c == '\n':
			keys = append(keys, "Return")

		case c == 0x7f:
			keys = append(keys, "Backspace")

		case c > 0x20 && c < 0x7f:
			keys = append(keys, string(rune(c)))

		case c == ' ':
			keys = append(keys, "Space")
		}
	}

	return keys
}

// parseEscape parses the bytes following an escape byte. Returns the number of
// bytes consumed and the key name, which will be empty if the sequence is not
// recognised.
func parseEscape(b []byte) (int, string) {
	// control sequence introducer or single shift three. anything else is an
	// alt modified key, which is ignored
	if b[0] != '[' && b[0] != 'O' {
		return 1, ""
	}

	// the sequence ends with a byte in the range 0x40 to 0x7e. the first
	// byte after the introducer may be '[' for the linux console function keys
	for n := 1; n < len(b); n++ {
		if n == 1 && b[0] == '[' && b[n] == '[' {
			continue
		}
		if b[n] >= 0x40 && b[n] <= 0x7e {
			return n + 1, escapeSequences[string(b[:n+1])]
		}
	}

	return len(b), ""
}
