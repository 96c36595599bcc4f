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
	"fmt"
)

// Operation is a decoded instruction ready for execution. It is a closed
// sum type: the set of implementations in this package is the complete
// instruction set and the CPU dispatches with an exhaustive type switch.
//
// The String() function returns the conventional assembly mnemonic for
// the operation.
type Operation interface {
	fmt.Stringer

	// sealing method. only types in this package can be Operations
	operation()
}

// Sys is the machine-code-routine instruction (0nnn) of the original
// interpreter. Ignored by every modern implementation, including this
// one.
type Sys struct{}

// Clear zeroes the framebuffer (00E0).
type Clear struct{}

// Return pops the call stack (00EE).
type Return struct{}

// Jump sets the program counter to an absolute address (1nnn).
type Jump struct {
	Addr uint16
}

// Call pushes the program counter and jumps (2nnn).
type Call struct {
	Addr uint16
}

// SkipEqualValue skips the next instruction if a register equals an
// immediate value (3xkk).
type SkipEqualValue struct {
	Reg   uint8
	Value uint8
}

// SkipNotEqualValue skips the next instruction if a register does not
// equal an immediate value (4xkk).
type SkipNotEqualValue struct {
	Reg   uint8
	Value uint8
}

// SkipEqualRegister skips the next instruction if two registers are
// equal (5xy0).
type SkipEqualRegister struct {
	RegX uint8
	RegY uint8
}

// SkipNotEqualRegister skips the next instruction if two registers are
// not equal (9xy0).
type SkipNotEqualRegister struct {
	RegX uint8
	RegY uint8
}

// LoadValue loads an immediate value into a register (6xkk).
type LoadValue struct {
	Reg   uint8
	Value uint8
}

// AddValue adds an immediate value to a register, wrapping (7xkk). Note
// that unlike AddRegister the carry flag is not touched. The asymmetry
// is part of the instruction set.
type AddValue struct {
	Reg   uint8
	Value uint8
}

// LoadRegister copies one register to another (8xy0).
type LoadRegister struct {
	RegX uint8
	RegY uint8
}

// Or is bitwise OR of two registers (8xy1).
type Or struct {
	RegX uint8
	RegY uint8
}

// And is bitwise AND of two registers (8xy2).
type And struct {
	RegX uint8
	RegY uint8
}

// Xor is bitwise exclusive-OR of two registers (8xy3).
type Xor struct {
	RegX uint8
	RegY uint8
}

// AddRegister adds one register to another, wrapping, with the carry
// flag recording unsigned overflow (8xy4).
type AddRegister struct {
	RegX uint8
	RegY uint8
}

// Sub subtracts RegY from RegX, wrapping, with the carry flag recording
// NOT-borrow (8xy5).
type Sub struct {
	RegX uint8
	RegY uint8
}

// ShiftRight shifts a register right one bit, the shifted-out bit going
// to the carry flag (8xy6).
type ShiftRight struct {
	Reg uint8
}

// SubN subtracts RegX from RegY, storing in RegX, with the carry flag
// recording NOT-borrow (8xy7).
type SubN struct {
	RegX uint8
	RegY uint8
}

// ShiftLeft shifts a register left one bit, the shifted-out bit going to
// the carry flag (8xyE).
type ShiftLeft struct {
	Reg uint8
}

// LoadIndex loads the index register with an address (Annn).
type LoadIndex struct {
	Addr uint16
}

// JumpV0 jumps to an address offset by the value of V0 (Bnnn).
type JumpV0 struct {
	Addr uint16
}

// Random loads a register with a random byte masked by an immediate
// value (Cxkk).
type Random struct {
	Reg   uint8
	Value uint8
}

// Draw XOR-composites a sprite onto the framebuffer (Dxyn). Rows is the
// number of sprite bytes, read from memory at the index register.
type Draw struct {
	RegX uint8
	RegY uint8
	Rows uint8
}

// SkipKeyPressed skips the next instruction if the key indexed by a
// register is pressed (Ex9E).
type SkipKeyPressed struct {
	Reg uint8
}

// SkipKeyNotPressed skips the next instruction if the key indexed by a
// register is not pressed (ExA1).
type SkipKeyNotPressed struct {
	Reg uint8
}

// LoadFromDelay reads the delay counter into a register (Fx07).
type LoadFromDelay struct {
	Reg uint8
}

// WaitKey blocks until a key press and captures the key code (Fx0A).
type WaitKey struct {
	Reg uint8
}

// LoadDelay writes a register to the delay counter (Fx15).
type LoadDelay struct {
	Reg uint8
}

// LoadSound writes a register to the sound counter (Fx18).
type LoadSound struct {
	Reg uint8
}

// AddIndex adds a register to the index register (Fx1E). No flag is set.
type AddIndex struct {
	Reg uint8
}

// LoadDigit points the index register at the sprite for the digit in a
// register (Fx29).
type LoadDigit struct {
	Reg uint8
}

// StoreBCD writes the decimal digits of a register to memory at the
// index register (Fx33).
type StoreBCD struct {
	Reg uint8
}

// StoreRegisters copies registers V0 up to and including VLastReg to
// memory at the index register, advancing the index register (Fx55).
type StoreRegisters struct {
	LastReg uint8
}

// LoadRegisters is the inverse of StoreRegisters (Fx65).
type LoadRegisters struct {
	LastReg uint8
}

func (op Sys) operation()                  {}
func (op Clear) operation()                {}
func (op Return) operation()               {}
func (op Jump) operation()                 {}
func (op Call) operation()                 {}
func (op SkipEqualValue) operation()       {}
func (op SkipNotEqualValue) operation()    {}
func (op SkipEqualRegister) operation()    {}
func (op SkipNotEqualRegister) operation() {}
func (op LoadValue) operation()            {}
func (op AddValue) operation()             {}
func (op LoadRegister) operation()         {}
func (op Or) operation()                   {}
func (op And) operation()                  {}
func (op Xor) operation()                  {}
func (op AddRegister) operation()          {}
func (op Sub) operation()                  {}
func (op ShiftRight) operation()           {}
func (op SubN) operation()                 {}
func (op ShiftLeft) operation()            {}
func (op LoadIndex) operation()            {}
func (op JumpV0) operation()               {}
func (op Random) operation()               {}
func (op Draw) operation()                 {}
func (op SkipKeyPressed) operation()       {}
func (op SkipKeyNotPressed) operation()    {}
func (op LoadFromDelay) operation()        {}
func (op WaitKey) operation()              {}
func (op LoadDelay) operation()            {}
func (op LoadSound) operation()            {}
func (op AddIndex) operation()             {}
func (op LoadDigit) operation()            {}
func (op StoreBCD) operation()             {}
func (op StoreRegisters) operation()       {}
func (op LoadRegisters) operation()        {}

func (op Sys) String() string    { return "SYS" }
func (op Clear) String() string  { return "CLS" }
func (op Return) String() string { return "RET" }
func (op Jump) String() string   { return fmt.Sprintf("JP 0x%03x", op.Addr) }
func (op Call) String() string   { return fmt.Sprintf("CALL 0x%03x", op.Addr) }

func (op SkipEqualValue) String() string {
	return fmt.Sprintf("SE V%X,0x%02x", op.Reg, op.Value)
}

func (op SkipNotEqualValue) String() string {
	return fmt.Sprintf("SNE V%X,0x%02x", op.Reg, op.Value)
}

func (op SkipEqualRegister) String() string {
	return fmt.Sprintf("SE V%X,V%X", op.RegX, op.RegY)
}

func (op SkipNotEqualRegister) String() string {
	return fmt.Sprintf("SNE V%X,V%X", op.RegX, op.RegY)
}

func (op LoadValue) String() string    { return fmt.Sprintf("LD V%X,0x%02x", op.Reg, op.Value) }
func (op AddValue) String() string     { return fmt.Sprintf("ADD V%X,0x%02x", op.Reg, op.Value) }
func (op LoadRegister) String() string { return fmt.Sprintf("LD V%X,V%X", op.RegX, op.RegY) }
func (op Or) String() string           { return fmt.Sprintf("OR V%X,V%X", op.RegX, op.RegY) }
func (op And) String() string          { return fmt.Sprintf("AND V%X,V%X", op.RegX, op.RegY) }
func (op Xor) String() string          { return fmt.Sprintf("XOR V%X,V%X", op.RegX, op.RegY) }
func (op AddRegister) String() string  { return fmt.Sprintf("ADD V%X,V%X", op.RegX, op.RegY) }
func (op Sub) String() string          { return fmt.Sprintf("SUB V%X,V%X", op.RegX, op.RegY) }
func (op ShiftRight) String() string   { return fmt.Sprintf("SHR V%X", op.Reg) }
func (op SubN) String() string         { return fmt.Sprintf("SUBN V%X,V%X", op.RegX, op.RegY) }
func (op ShiftLeft) String() string    { return fmt.Sprintf("SHL V%X", op.Reg) }
func (op LoadIndex) String() string    { return fmt.Sprintf("LD I,0x%03x", op.Addr) }
func (op JumpV0) String() string       { return fmt.Sprintf("JP V0,0x%03x", op.Addr) }
func (op Random) String() string       { return fmt.Sprintf("RND V%X,0x%02x", op.Reg, op.Value) }

func (op Draw) String() string {
	return fmt.Sprintf("DRW V%X,V%X,%d", op.RegX, op.RegY, op.Rows)
}

func (op SkipKeyPressed) String() string    { return fmt.Sprintf("SKP V%X", op.Reg) }
func (op SkipKeyNotPressed) String() string { return fmt.Sprintf("SKNP V%X", op.Reg) }
func (op LoadFromDelay) String() string     { return fmt.Sprintf("LD V%X,DT", op.Reg) }
func (op WaitKey) String() string           { return fmt.Sprintf("LD V%X,K", op.Reg) }
func (op LoadDelay) String() string         { return fmt.Sprintf("LD DT,V%X", op.Reg) }
func (op LoadSound) String() string         { return fmt.Sprintf("LD ST,V%X", op.Reg) }
func (op AddIndex) String() string          { return fmt.Sprintf("ADD I,V%X", op.Reg) }
func (op LoadDigit) String() string         { return fmt.Sprintf("LD F,V%X", op.Reg) }
func (op StoreBCD) String() string          { return fmt.Sprintf("LD B,V%X", op.Reg) }
func (op StoreRegisters) String() string    { return fmt.Sprintf("LD [I],V%X", op.LastReg) }
func (op LoadRegisters) String() string     { return fmt.Sprintf("LD V%X,[I]", op.LastReg) }
