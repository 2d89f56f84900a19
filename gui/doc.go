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

// Package gui is an abstraction layer for real GUI implementations. It defines
// the GUI interface that implementations should satisfy along with the
// feature requests that can be sent to them.
//
// GUIs are expected to implement the display.PixelRenderer interface and to
// send userinput.Event values over the event channel given to them with the
// ReqSetEventChan request. Conversion of a display.Frame to an RGBA image,
// suitable for uploading to a texture, is provided by the Pixels type.
package gui
