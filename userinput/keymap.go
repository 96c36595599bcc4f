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

package userinput

import (
	"strings"
)

// the CHIP-8 keypad does not exist on a host keyboard so we map the
// conventional grid:
//
//	1234            123C
//	QWER     =>     456D
//	ASDF            789E
//	ZXCV            A0BF
var keymap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// MapKey translates a host keyboard key name to a CHIP-8 key code.
// Key names are matched case insensitively. The second return value is
// false for keys with no place on the keypad; such keys are ignored by
// every playback surface.
func MapKey(name string) (uint8, bool) {
	k, ok := keymap[strings.ToUpper(name)]
	return k, ok
}
