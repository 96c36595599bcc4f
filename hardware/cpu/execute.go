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

package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// execute applies one operation to the machine state. The program
// counter advance is the conventional +2 unless the operation branches;
// skip operations advance by a further +2.
func (mc *CPU) execute(op instructions.Operation) error {
	newPC := mc.PC + 2

	switch op := op.(type) {
	case instructions.Sys:
		// machine code routines are ignored

	case instructions.Clear:
		mc.fb.Clear()

	case instructions.Return:
		if mc.SP == 0 {
			return curated.Errorf(StackUnderflow, mc.PC)
		}
		mc.SP--
		newPC = mc.Stack[mc.SP] + 2

	case instructions.Jump:
		newPC = op.Addr

	case instructions.Call:
		if mc.SP >= StackDepth {
			return curated.Errorf(StackOverflow, mc.PC)
		}
		mc.Stack[mc.SP] = mc.PC
		mc.SP++
		newPC = op.Addr

	case instructions.SkipEqualValue:
		if mc.V[op.Reg] == op.Value {
			newPC += 2
		}

	case instructions.SkipNotEqualValue:
		if mc.V[op.Reg] != op.Value {
			newPC += 2
		}

	case instructions.SkipEqualRegister:
		if mc.V[op.RegX] == mc.V[op.RegY] {
			newPC += 2
		}

	case instructions.SkipNotEqualRegister:
		if mc.V[op.RegX] != mc.V[op.RegY] {
			newPC += 2
		}

	case instructions.LoadValue:
		mc.V[op.Reg] = op.Value

	case instructions.AddValue:
		// wrapping add. VF is not touched, unlike AddRegister. the
		// asymmetry is part of the instruction set
		mc.V[op.Reg] += op.Value

	case instructions.LoadRegister:
		mc.V[op.RegX] = mc.V[op.RegY]

	case instructions.Or:
		mc.V[op.RegX] |= mc.V[op.RegY]

	case instructions.And:
		mc.V[op.RegX] &= mc.V[op.RegY]

	case instructions.Xor:
		mc.V[op.RegX] ^= mc.V[op.RegY]

	case instructions.AddRegister:
		sum := uint16(mc.V[op.RegX]) + uint16(mc.V[op.RegY])
		mc.V[op.RegX] = uint8(sum)
		if sum > 0xff {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.Sub:
		// VF is NOT-borrow: set if the minuend is strictly greater than
		// the subtrahend before the subtraction
		notBorrow := mc.V[op.RegX] > mc.V[op.RegY]
		mc.V[op.RegX] -= mc.V[op.RegY]
		if notBorrow {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.ShiftRight:
		// the shifted-out bit is routed to VF before the shift
		mc.V[0xf] = mc.V[op.Reg] & 0x01
		mc.V[op.Reg] >>= 1

	case instructions.SubN:
		notBorrow := mc.V[op.RegY] > mc.V[op.RegX]
		mc.V[op.RegX] = mc.V[op.RegY] - mc.V[op.RegX]
		if notBorrow {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.ShiftLeft:
		mc.V[0xf] = mc.V[op.Reg] >> 7
		mc.V[op.Reg] <<= 1

	case instructions.LoadIndex:
		mc.I = op.Addr

	case instructions.JumpV0:
		newPC = op.Addr + uint16(mc.V[0x0])

	case instructions.Random:
		mc.V[op.Reg] = op.Value & mc.Rand()

	case instructions.Draw:
		mc.draw(op)

	case instructions.SkipKeyPressed:
		if mc.key[mc.V[op.Reg]&0x0f] {
			newPC += 2
		}

	case instructions.SkipKeyNotPressed:
		if !mc.key[mc.V[op.Reg]&0x0f] {
			newPC += 2
		}

	case instructions.LoadFromDelay:
		mc.V[op.Reg] = mc.delay.Value()

	case instructions.WaitKey:
		mc.waitKey(op.Reg)
		if mc.halted {
			// shutdown during the wait. the instruction is abandoned and
			// the program counter is left where it was
			return nil
		}

	case instructions.LoadDelay:
		mc.delay.Load(mc.V[op.Reg])

	case instructions.LoadSound:
		mc.sound.Load(mc.V[op.Reg])

	case instructions.AddIndex:
		// no overflow flag. the index register is masked on every memory
		// access so overflow simply wraps
		mc.I += uint16(mc.V[op.Reg])

	case instructions.LoadDigit:
		mc.I = memory.DigitAddress(mc.V[op.Reg])

	case instructions.StoreBCD:
		v := mc.V[op.Reg]
		mc.mem.Write(mc.I, v/100)
		mc.mem.Write(mc.I+1, v/10%10)
		mc.mem.Write(mc.I+2, v%10)

	case instructions.StoreRegisters:
		for i := uint16(0); i <= uint16(op.LastReg); i++ {
			mc.mem.Write(mc.I+i, mc.V[i])
		}
		mc.I += uint16(op.LastReg) + 1

	case instructions.LoadRegisters:
		for i := uint16(0); i <= uint16(op.LastReg); i++ {
			mc.V[i] = mc.mem.Read(mc.I + i)
		}
		mc.I += uint16(op.LastReg) + 1
	}

	mc.PC = newPC

	return nil
}

// draw implements the display compositing of the DRW operation: the
// sprite is read from memory at the index register and XORed into the
// framebuffer, with VF recording whether any pixel was extinguished.
func (mc *CPU) draw(op instructions.Draw) {
	sprite := make([]uint8, op.Rows)
	for i := range sprite {
		sprite[i] = mc.mem.Read(mc.I + uint16(i))
	}

	if mc.fb.BlitSprite(sprite, mc.V[op.RegX], mc.V[op.RegY]) {
		mc.V[0xf] = 1
	} else {
		mc.V[0xf] = 0
	}
}
