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

// Package statsview offers a local HTTP server showing runtime statistics of
// the emulator process. The server is only available when the program is
// built with the statsview build tag:
//
//	go build -tags statsview .
//
// Charts are served at:
//
//	localhost:12608/debug/statsview
//
// and the standard pprof endpoints at:
//
//	localhost:12608/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing
// except report that the server is not available.
package statsview

// Address of the statistics server.
const Address = "localhost:12608"

const url = "/debug/statsview"
