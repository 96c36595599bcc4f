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

// Package cpu implements the CHIP-8 execution engine: the
// fetch-decode-execute loop, the semantics of every operation in the
// instruction set, and the sprite compositing of the DRW operation.
//
// The engine is a single logical state, "fetching at PC". Each cycle it
// observes the shutdown signal, drains pending key events, fetches the
// 2-byte word at the program counter, decodes it (see the instructions
// sub-package) and applies it. The only suspension point beyond the
// never-blocking event drain is the wait-for-keypress operation, which
// is cancellable by the shutdown signal.
//
// Fault policy: unknown opcodes and call stack overflow/underflow return
// errors that terminate the engine. Out-of-range memory addressing does
// not fault; addresses wrap within the 12-bit address space (see the
// memory package).
package cpu
