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

// Package memory implements the 4KiB address space of the CHIP-8. The
// bottom of memory holds the built-in sprite table for the hexadecimal
// digits; program data is loaded at the conventional address of 0x200.
//
// Addresses are 12 bits wide. Rather than fault, accesses beyond the top
// of memory wrap around to the bottom.
package memory
