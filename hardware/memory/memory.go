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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Size of the CHIP-8 address space in bytes.
const Size = 4096

// Mask reduces any address to the 12 bits the address space supports. All
// reads and writes are masked, meaning that addresses beyond 0xfff wrap
// around rather than fault. Wrapping is the documented policy for
// out-of-range addresses: it can never corrupt state outside the address
// space.
const Mask = 0x0fff

// LoadAddress is the conventional load address for CHIP-8 programs. The
// area below the load address holds the digit sprite table and must not
// be written by program data.
const LoadAddress = 0x0200

// ProgramTooBig is returned by LoadProgram for programs that do not fit
// in the space above LoadAddress.
const ProgramTooBig = "memory: program is %d bytes; maximum is %d"

// Memory is the 4KiB address space of the CHIP-8. The digit sprite table
// occupies the bottom of memory and program data starts at LoadAddress.
type Memory struct {
	bytes [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory
// type. The returned memory is zeroed except for the digit sprite table.
func NewMemory() *Memory {
	mem := &Memory{}
	copy(mem.bytes[:], digits[:])
	return mem
}

// Read the byte at the specified address. Addresses beyond the address
// space wrap around.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.bytes[address&Mask]
}

// Write a byte to the specified address. Addresses beyond the address
// space wrap around.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.bytes[address&Mask] = data
}

// LoadProgram copies program data into memory starting at LoadAddress.
func (mem *Memory) LoadProgram(data []byte) error {
	if len(data) > Size-LoadAddress {
		return curated.Errorf(ProgramTooBig, len(data), Size-LoadAddress)
	}
	copy(mem.bytes[LoadAddress:], data)
	return nil
}
