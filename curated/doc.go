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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later in the call chain.
//
// Errors are created with Errorf(). Unlike fmt.Errorf() the pattern is kept
// with the error so that Is() and Has() can ask about it:
//
//	e := curated.Errorf("memory: address out of range (%#04x)", addr)
//	f := curated.Errorf("machine: %v", e)
//
//	curated.Is(f, "memory: address out of range (%#04x)")  // false
//	curated.Has(f, "memory: address out of range (%#04x)") // true
//
// The Error() implementation normalises the message by removing adjacent
// duplicate parts. Parts are separated by ": ". This means a package can wrap
// an error with its own prefix without worrying about whether the callee has
// already done so:
//
//	cpu: cpu: unknown operator
//
// is reported as
//
//	cpu: unknown operator
//
// Curated errors cooperate with the standard errors package. If one of the
// values given to Errorf() is an error then Unwrap() will return it.
package curated
