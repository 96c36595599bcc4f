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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestDigitSprites(t *testing.T) {
	mem := memory.NewMemory()

	// spot check the sprites for 0 and F
	addr := memory.DigitAddress(0x0)
	test.Equate(t, addr, 0)
	for i, b := range []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0} {
		test.Equate(t, mem.Read(addr+uint16(i)), b)
	}

	addr = memory.DigitAddress(0xf)
	test.Equate(t, addr, 15*memory.DigitSpriteSize)
	for i, b := range []uint8{0xf0, 0x80, 0xf0, 0x80, 0x80} {
		test.Equate(t, mem.Read(addr+uint16(i)), b)
	}

	// only the low nibble of the digit matters
	test.Equate(t, memory.DigitAddress(0x1a), memory.DigitAddress(0x0a))
}

func TestAddressWrap(t *testing.T) {
	mem := memory.NewMemory()

	// addresses beyond the 12-bit space wrap rather than fault
	mem.Write(0x1000, 0xab)
	test.Equate(t, mem.Read(0x0000), 0xab)
	test.Equate(t, mem.Read(0x3456), mem.Read(0x0456))
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory()

	if err := mem.LoadProgram([]byte{0x12, 0x34}); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mem.Read(memory.LoadAddress), 0x12)
	test.Equate(t, mem.Read(memory.LoadAddress+1), 0x34)

	// the digit sprite table below the load address is untouched
	test.Equate(t, mem.Read(0x0000), 0xf0)
}

func TestLoadProgramTooBig(t *testing.T) {
	mem := memory.NewMemory()

	// the largest program that fits
	if err := mem.LoadProgram(make([]byte, memory.Size-memory.LoadAddress)); err != nil {
		t.Fatal(err)
	}

	// one byte more does not
	err := mem.LoadProgram(make([]byte, memory.Size-memory.LoadAddress+1))
	if !curated.Is(err, memory.ProgramTooBig) {
		t.Fatalf("expected program-too-big error, got %v", err)
	}
}
