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

// Package logger is the central log for the application. There is only one
// log and it is accessed through the package level functions.
//
// Every request to log is accompanied by a Permission value. The request is
// only honoured if the AllowLogging() function of the Permission returns
// true. The Allow value should be used when a log entry should always be
// made.
//
// Log entries are tagged. By convention the tag is the name of the package
// making the entry. Repeated entries with the same tag and detail are
// collapsed into a single entry with a repeat count.
package logger
