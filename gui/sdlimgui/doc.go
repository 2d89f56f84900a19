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

// Package sdlimgui implements the gui.GUI interface using SDL, OpenGL and the
// Dear ImGui library. The CHIP-8 framebuffer is drawn as an ImGui image with a
// status bar underneath it showing the ROM name, the current frame and a
// summary of the machine preferences.
//
// As with the sdlplay package, all SDL and OpenGL calls are made on the main
// thread by the Service() function.
package sdlimgui
