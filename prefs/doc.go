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

// Package prefs facilitates the storage of preferential values in the
// application. It stores values in a disk file and restores the values from
// that file when required.
//
// Values are declared with one of the pref types: Bool, String, Int or Float.
// Each type is safe to read from one goroutine while it is being set in
// another. Hooks can be attached to each value and are called before and
// after the value changes. A hook returning an error prevents the change.
//
// Values are associated with a key and a Disk instance with the Add()
// function:
//
//	var cycles prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("hardware.cyclesPerFrame", &cycles)
//
// More than one Disk instance can use the same file. Saving one Disk does not
// clobber the keys written by another.
//
// Values can also be set from the command line with PushCommandLineStack().
// These values take precedence over the values stored on disk and are
// applied when Load() is called.
package prefs
