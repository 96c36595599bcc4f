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
	"fmt"
	"math/rand"
	"time"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// NumRegisters is the size of the general register file.
const NumRegisters = 16

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// error patterns for fatal faults. a fault terminates the engine; it is
// never retried and no further instruction is executed.
const (
	StackOverflow  = "cpu: call stack overflow at %#04x"
	StackUnderflow = "cpu: call stack underflow at %#04x"
)

// CPU implements the CHIP-8 fetch-decode-execute engine. It owns the
// register file, index register, program counter, call stack and
// key-state bitmap. Memory, the framebuffer and the timer counters are
// shared with other parts of the machine.
//
// Registers are exported for the benefit of tests and any surface that
// wants to display machine state. Nothing outside the cpu package should
// write to them while the engine is running.
type CPU struct {
	// general registers. VF (V[0xf]) doubles as the carry/borrow/
	// collision flag
	V [NumRegisters]uint8

	// index register. 16 bits wide but every memory access through it is
	// masked to the 12-bit address space
	I uint16

	// program counter
	PC uint16

	Stack [StackDepth]uint16
	SP    uint8

	mem   *memory.Memory
	fb    *video.Framebuffer
	delay *timer.Counter
	sound *timer.Counter

	// key-state bitmap. owned exclusively by the CPU; the playback
	// surface communicates through the events channel
	key [16]bool

	events <-chan userinput.Event
	quit   <-chan struct{}

	// Rand is the source of random bytes for the RND operation.
	// replaceable for predictable tests
	Rand func() uint8

	// Trace causes every executed operation to be logged
	Trace bool

	// the engine has seen the shutdown signal (or the event channel has
	// closed, which is treated the same way)
	halted bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
// The quit channel is the one-shot shutdown signal: the engine observes
// it at the top of every cycle and inside the key wait.
func NewCPU(mem *memory.Memory, fb *video.Framebuffer,
	delay *timer.Counter, sound *timer.Counter,
	events <-chan userinput.Event, quit <-chan struct{}) *CPU {

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	mc := &CPU{
		mem:    mem,
		fb:     fb,
		delay:  delay,
		sound:  sound,
		events: events,
		quit:   quit,
		Rand:   func() uint8 { return uint8(rnd.Intn(256)) },
	}
	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%#04x I=%#04x SP=%d V=%v", mc.PC, mc.I, mc.SP, mc.V)
}

// Reset reinitialises the engine registers. Memory, framebuffer and
// counters are not touched.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.LoadAddress
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.key = [16]bool{}
	mc.halted = false
}

// Halted returns true once the engine has observed the shutdown signal.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// Run the fetch-decode-execute loop until the shutdown signal or a fatal
// error. There is no halt instruction; a nil return means orderly
// shutdown.
//
// The continueCheck callback is called after every instruction and stops
// the loop when it returns false. A nil continueCheck means run forever.
func (mc *CPU) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		// the shutdown signal is observed before any part of the next
		// instruction takes effect
		select {
		case <-mc.quit:
			return nil
		default:
		}

		mc.drainEvents()
		if mc.halted {
			return nil
		}

		if err := mc.ExecuteInstruction(); err != nil {
			return err
		}
		if mc.halted {
			return nil
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// ExecuteInstruction runs one fetch-decode-execute cycle. The full
// effect of the instruction is applied before the function returns.
func (mc *CPU) ExecuteInstruction() error {
	msb := mc.mem.Read(mc.PC)
	lsb := mc.mem.Read(mc.PC + 1)

	op, err := instructions.Decode(msb, lsb)
	if err != nil {
		return err
	}

	if mc.Trace {
		logger.Logf(logger.Allow, "cpu", "%#04x: %s", mc.PC, op)
	}

	return mc.execute(op)
}

// drainEvents applies every pending key event to the key-state bitmap.
// Never blocks. A closed event channel is the shutdown signal.
func (mc *CPU) drainEvents() {
	for {
		select {
		case ev, ok := <-mc.events:
			if !ok {
				mc.halted = true
				return
			}
			mc.key[ev.Key&0x0f] = ev.Down
		default:
			return
		}
	}
}

// waitKey blocks until a key press, capturing the key code into the
// specified register. Release events arriving while blocked still update
// the key-state bitmap but do not satisfy the wait. The wait is
// cancelled by the shutdown signal.
func (mc *CPU) waitKey(reg uint8) {
	for {
		select {
		case <-mc.quit:
			mc.halted = true
			return
		case ev, ok := <-mc.events:
			if !ok {
				mc.halted = true
				return
			}
			mc.key[ev.Key&0x0f] = ev.Down
			if ev.Down {
				mc.V[reg] = ev.Key & 0x0f
				return
			}
		}
	}
}
