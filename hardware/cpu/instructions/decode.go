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

package instructions

import (
	"github.com/jetsetilly/gopher8/curated"
)

// UnknownOpcode is returned by Decode for instruction words that match
// no instruction in the set. The value is the raw 16-bit word.
const UnknownOpcode = "decode: unknown opcode %#04x"

// Decode translates a 2-byte instruction word into an Operation. The
// word is big-endian: msb is the byte at the program counter, lsb the
// byte after.
//
// Decoding is pure. It never fails for register operands (a nibble is
// always a valid register index) and the only error is UnknownOpcode.
func Decode(msb uint8, lsb uint8) (Operation, error) {
	switch msb >> 4 {
	case 0x0:
		// 00E0 and 00EE are specific bit patterns. anything else in the
		// 0x0 family is a machine code routine (0nnn) which is ignored
		if msb == 0x00 && lsb == 0xe0 {
			return Clear{}, nil
		}
		if msb == 0x00 && lsb == 0xee {
			return Return{}, nil
		}
		return Sys{}, nil

	case 0x1:
		return Jump{Addr: address(msb, lsb)}, nil

	case 0x2:
		return Call{Addr: address(msb, lsb)}, nil

	case 0x3:
		return SkipEqualValue{Reg: lowNibble(msb), Value: lsb}, nil

	case 0x4:
		return SkipNotEqualValue{Reg: lowNibble(msb), Value: lsb}, nil

	case 0x5:
		if lowNibble(lsb) == 0x0 {
			return SkipEqualRegister{RegX: lowNibble(msb), RegY: highNibble(lsb)}, nil
		}

	case 0x6:
		return LoadValue{Reg: lowNibble(msb), Value: lsb}, nil

	case 0x7:
		return AddValue{Reg: lowNibble(msb), Value: lsb}, nil

	case 0x8:
		regX := lowNibble(msb)
		regY := highNibble(lsb)
		switch lowNibble(lsb) {
		case 0x0:
			return LoadRegister{RegX: regX, RegY: regY}, nil
		case 0x1:
			return Or{RegX: regX, RegY: regY}, nil
		case 0x2:
			return And{RegX: regX, RegY: regY}, nil
		case 0x3:
			return Xor{RegX: regX, RegY: regY}, nil
		case 0x4:
			return AddRegister{RegX: regX, RegY: regY}, nil
		case 0x5:
			return Sub{RegX: regX, RegY: regY}, nil
		case 0x6:
			return ShiftRight{Reg: regX}, nil
		case 0x7:
			return SubN{RegX: regX, RegY: regY}, nil
		case 0xe:
			return ShiftLeft{Reg: regX}, nil
		}

	case 0x9:
		if lowNibble(lsb) == 0x0 {
			return SkipNotEqualRegister{RegX: lowNibble(msb), RegY: highNibble(lsb)}, nil
		}

	case 0xa:
		return LoadIndex{Addr: address(msb, lsb)}, nil

	case 0xb:
		return JumpV0{Addr: address(msb, lsb)}, nil

	case 0xc:
		return Random{Reg: lowNibble(msb), Value: lsb}, nil

	case 0xd:
		return Draw{RegX: lowNibble(msb), RegY: highNibble(lsb), Rows: lowNibble(lsb)}, nil

	case 0xe:
		switch lsb {
		case 0x9e:
			return SkipKeyPressed{Reg: lowNibble(msb)}, nil
		case 0xa1:
			return SkipKeyNotPressed{Reg: lowNibble(msb)}, nil
		}

	case 0xf:
		reg := lowNibble(msb)
		switch lsb {
		case 0x07:
			return LoadFromDelay{Reg: reg}, nil
		case 0x0a:
			return WaitKey{Reg: reg}, nil
		case 0x15:
			return LoadDelay{Reg: reg}, nil
		case 0x18:
			return LoadSound{Reg: reg}, nil
		case 0x1e:
			return AddIndex{Reg: reg}, nil
		case 0x29:
			return LoadDigit{Reg: reg}, nil
		case 0x33:
			return StoreBCD{Reg: reg}, nil
		case 0x55:
			return StoreRegisters{LastReg: reg}, nil
		case 0x65:
			return LoadRegisters{LastReg: reg}, nil
		}
	}

	return nil, curated.Errorf(UnknownOpcode, uint16(msb)<<8|uint16(lsb))
}

// address extracts the least significant 12 bits of the instruction
// word.
func address(msb uint8, lsb uint8) uint16 {
	return uint16(msb&0x0f)<<8 | uint16(lsb)
}

// lowNibble extracts the least significant 4 bits of a byte.
func lowNibble(b uint8) uint8 {
	return b & 0x0f
}

// highNibble extracts the most significant 4 bits of a byte.
func highNibble(b uint8) uint8 {
	return b >> 4
}
