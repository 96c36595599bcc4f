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

// Package curated is the error type used throughout Gopher8. Create a
// curated error with the Errorf() function and test for a specific error
// with the Is() and Has() functions, using the same pattern string that
// created the error.
//
// Wrapping a curated error in another curated error builds a chain that
// the Error() function normalises, removing duplicate adjacent message
// parts:
//
//	err := curated.Errorf("rom: %v", curated.Errorf("rom: too big"))
//	fmt.Println(err) // "rom: too big" not "rom: rom: too big"
package curated
