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

// Package paths contains functions to prepare paths to gopher8 resources.
//
// The ResourcePath() function returns the path to a file in a subdirectory
// of the resource directory, creating the subdirectory if necessary. For
// example, the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the resource directory is ".gopher8" in the current
// directory. For release builds (the "release" build tag) it is the "gopher8"
// directory in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system that is:
//
//	/home/user/.config/gopher8/preferences
package paths
