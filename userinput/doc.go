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

// Package userinput defines the key events consumed by the machine and
// the mapping from host keyboard keys to the 16-key CHIP-8 keypad.
// Playback surfaces translate their native events into userinput.Event
// values and deliver them on an ordered channel; the key-state bitmap
// itself is owned exclusively by the CPU.
package userinput
