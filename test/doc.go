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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of the
// same type. The ExpectSuccess() and ExpectFailure() functions test for the
// success or failure of a value, the meaning of which depends on the type of
// the value. For example, a bool is successful if it is true and an error is
// successful if it is nil.
//
// The Demand*() family of functions are the same as the Expect*() functions
// except that the test is ended with t.Fatal() rather than t.Error().
//
// In addition to the comparison functions, the package provides io.Writer
// implementations useful for capturing output: CompareWriter, RingWriter and
// CappedWriter.
package test
