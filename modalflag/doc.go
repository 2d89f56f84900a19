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

// Package modalflag wraps the flag package in the standard library so that a
// command line can select between program modes, each mode with its own set
// of flags.
//
// Arguments are given with NewArgs() and then processed in layers with
// Parse(). Before each call to Parse() the flags and sub-modes for that layer
// are declared:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DIGEST", "VERSION")
//	p, err := md.Parse()
//
// After a successful Parse() the Mode() function says which sub-mode was
// selected. The first sub-mode is the default and is selected if the next
// argument does not name a sub-mode. Sub-mode names are case insensitive.
//
// The next layer begins with NewMode():
//
//	md.NewMode()
//	frames := md.AddInt("frames", 60, "number of frames to run")
//	p, err = md.Parse()
//
// Help is produced automatically for the -help flag. It lists the flags and
// sub-modes of the current layer along with any text given to
// AdditionalHelp().
package modalflag
