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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

// testMachine assembles just enough hardware around the engine for the
// tests in this file.
type testMachine struct {
	mc     *cpu.CPU
	mem    *memory.Memory
	fb     *video.Framebuffer
	delay  *timer.Counter
	sound  *timer.Counter
	events chan userinput.Event
	quit   chan struct{}
}

func newTestMachine(t *testing.T, program ...uint8) *testMachine {
	t.Helper()

	tm := &testMachine{
		mem:    memory.NewMemory(),
		fb:     video.NewFramebuffer(),
		delay:  &timer.Counter{},
		sound:  &timer.Counter{},
		events: userinput.NewChannel(),
		quit:   make(chan struct{}),
	}

	if err := tm.mem.LoadProgram(program); err != nil {
		t.Fatal(err)
	}

	tm.mc = cpu.NewCPU(tm.mem, tm.fb, tm.delay, tm.sound, tm.events, tm.quit)

	return tm
}

// step executes n instructions, failing the test on any fault.
func (tm *testMachine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := tm.mc.ExecuteInstruction(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResetState(t *testing.T) {
	tm := newTestMachine(t)
	test.Equate(t, tm.mc.PC, memory.LoadAddress)
	test.Equate(t, tm.mc.I, 0)
	test.Equate(t, tm.mc.SP, 0)
	for i := 0; i < cpu.NumRegisters; i++ {
		test.Equate(t, tm.mc.V[i], 0)
	}
}

func TestAddRegisterCarry(t *testing.T) {
	// ADD V3,V7 overflowing. the result wraps and VF records the carry
	tm := newTestMachine(t, 0x83, 0x74, 0x83, 0x74)
	tm.mc.V[0x3] = 0x01
	tm.mc.V[0x7] = 0xff

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x3], 0x00)
	test.Equate(t, tm.mc.V[0xf], 1)

	// second add does not overflow. VF must be reset
	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x3], 0xff)
	test.Equate(t, tm.mc.V[0xf], 0)
}

func TestAddValueLeavesFlagAlone(t *testing.T) {
	// ADD V1,0xff wraps but never touches VF
	tm := newTestMachine(t, 0x71, 0xff)
	tm.mc.V[0x1] = 0x02
	tm.mc.V[0xf] = 1

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0x01)
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestSubNotBorrow(t *testing.T) {
	// SUB V1,V2 three times: greater, equal, less
	tm := newTestMachine(t, 0x81, 0x25, 0x81, 0x25, 0x81, 0x25)

	tm.mc.V[0x1] = 0x05
	tm.mc.V[0x2] = 0x03
	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0x02)
	test.Equate(t, tm.mc.V[0xf], 1)

	// equal operands are NOT strictly greater. no flag
	tm.mc.V[0x1] = 0x03
	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0x00)
	test.Equate(t, tm.mc.V[0xf], 0)

	// borrow wraps
	tm.mc.V[0x1] = 0x02
	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0xff)
	test.Equate(t, tm.mc.V[0xf], 0)
}

func TestSubNReversed(t *testing.T) {
	// SUBN V1,V2 is V2-V1 stored in V1
	tm := newTestMachine(t, 0x81, 0x27)
	tm.mc.V[0x1] = 0x03
	tm.mc.V[0x2] = 0x05

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0x02)
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestShiftFlagRouting(t *testing.T) {
	// SHR V1 then SHL V2. the shifted-out bit goes to VF
	tm := newTestMachine(t, 0x81, 0x26, 0x82, 0x2e)
	tm.mc.V[0x1] = 0x05
	tm.mc.V[0x2] = 0x81

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0x02)
	test.Equate(t, tm.mc.V[0xf], 1)

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x2], 0x02)
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestShiftFlagWhenRegisterIsFlag(t *testing.T) {
	// SHR VF: the flag is assigned before the shift so the register ends
	// up holding the shifted flag, not the shifted value
	tm := newTestMachine(t, 0x8f, 0x06)
	tm.mc.V[0xf] = 0x03

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0xf], 0)
}

func TestCallReturn(t *testing.T) {
	// 0x200: CALL 0x206
	// 0x202: (never reached until the return)
	// 0x206: RET
	tm := newTestMachine(t, 0x22, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0xee)

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x206)
	test.Equate(t, tm.mc.SP, 1)
	test.Equate(t, tm.mc.Stack[0], 0x200)

	// the return continues after the call, not at it
	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x202)
	test.Equate(t, tm.mc.SP, 0)
}

func TestStackOverflow(t *testing.T) {
	// CALL 0x200 loops back on itself, pushing every time
	tm := newTestMachine(t, 0x22, 0x00)

	for i := 0; i < cpu.StackDepth; i++ {
		if err := tm.mc.ExecuteInstruction(); err != nil {
			t.Fatal(err)
		}
	}

	err := tm.mc.ExecuteInstruction()
	if !curated.Is(err, cpu.StackOverflow) {
		t.Fatalf("expected stack overflow, got %v", err)
	}
}

func TestStackUnderflow(t *testing.T) {
	tm := newTestMachine(t, 0x00, 0xee)

	err := tm.mc.ExecuteInstruction()
	if !curated.Is(err, cpu.StackUnderflow) {
		t.Fatalf("expected stack underflow, got %v", err)
	}
	test.ExpectedError(t, err, fmt.Sprintf(cpu.StackUnderflow, uint16(0x200)))
}

func TestSkipValue(t *testing.T) {
	// SE V1,0x42 (taken) followed by SNE V1,0x42 (not taken)
	tm := newTestMachine(t, 0x31, 0x42, 0x00, 0x00, 0x41, 0x42)
	tm.mc.V[0x1] = 0x42

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x204)

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x206)
}

func TestSkipRegister(t *testing.T) {
	// SE V1,V2 (not taken) then SNE V1,V2 (taken)
	tm := newTestMachine(t, 0x51, 0x20, 0x91, 0x20)
	tm.mc.V[0x1] = 0x01
	tm.mc.V[0x2] = 0x02

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x202)

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x206)
}

func TestJumpV0(t *testing.T) {
	tm := newTestMachine(t, 0xb3, 0x00)
	tm.mc.V[0x0] = 0x10

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC, 0x310)
}

func TestRandomMask(t *testing.T) {
	// RND V1,0x0f with a rigged random source
	tm := newTestMachine(t, 0xc1, 0x0f)
	tm.mc.Rand = func() uint8 { return 0xab }

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0x0b)
}

func TestBCD(t *testing.T) {
	// LD I,0x300 then LD B,V5
	tm := newTestMachine(t, 0xa3, 0x00, 0xf5, 0x33)
	tm.mc.V[0x5] = 254

	tm.step(t, 2)
	test.Equate(t, tm.mem.Read(0x300), 2)
	test.Equate(t, tm.mem.Read(0x301), 5)
	test.Equate(t, tm.mem.Read(0x302), 4)
}

func TestStoreLoadRegisters(t *testing.T) {
	// LD I,0x300; LD [I],V2; LD I,0x300; LD V2,[I]
	tm := newTestMachine(t, 0xa3, 0x00, 0xf2, 0x55, 0xa3, 0x00, 0xf2, 0x65)
	tm.mc.V[0x0] = 0x11
	tm.mc.V[0x1] = 0x22
	tm.mc.V[0x2] = 0x33
	tm.mc.V[0x3] = 0x44

	tm.step(t, 2)
	test.Equate(t, tm.mem.Read(0x300), 0x11)
	test.Equate(t, tm.mem.Read(0x301), 0x22)
	test.Equate(t, tm.mem.Read(0x302), 0x33)

	// V3 is past the last register and must not be stored
	test.Equate(t, tm.mem.Read(0x303), 0x00)

	// the index register advances past the stored block
	test.Equate(t, tm.mc.I, 0x303)

	tm.mc.V[0x0] = 0
	tm.mc.V[0x1] = 0
	tm.mc.V[0x2] = 0

	tm.step(t, 2)
	test.Equate(t, tm.mc.V[0x0], 0x11)
	test.Equate(t, tm.mc.V[0x1], 0x22)
	test.Equate(t, tm.mc.V[0x2], 0x33)
	test.Equate(t, tm.mc.I, 0x303)
}

func TestLoadDigit(t *testing.T) {
	// LD F,V1 points the index register at the digit sprite table
	tm := newTestMachine(t, 0xf1, 0x29)
	tm.mc.V[0x1] = 0x0a

	tm.step(t, 1)
	test.Equate(t, tm.mc.I, 10*memory.DigitSpriteSize)
}

func TestDrawCollision(t *testing.T) {
	// LD I,0x300; DRW V0,V1,1; DRW V0,V1,1. the second draw erases the
	// first and reports the collision
	tm := newTestMachine(t, 0xa3, 0x00, 0xd0, 0x11, 0xd0, 0x11)
	tm.mem.Write(0x300, 0x80)

	tm.step(t, 2)
	test.Equate(t, tm.fb.Peek(0), 0x80)
	test.Equate(t, tm.mc.V[0xf], 0)

	tm.step(t, 1)
	test.Equate(t, tm.fb.Peek(0), 0x00)
	test.Equate(t, tm.mc.V[0xf], 1)
}

func TestClear(t *testing.T) {
	tm := newTestMachine(t, 0x00, 0xe0)
	tm.fb.Poke(0, 0xff)

	tm.step(t, 1)
	test.Equate(t, tm.fb.Peek(0), 0x00)
}

func TestDelayAndSoundCounters(t *testing.T) {
	// LD DT,V2; LD V3,DT; LD ST,V2
	tm := newTestMachine(t, 0xf2, 0x15, 0xf3, 0x07, 0xf2, 0x18)
	tm.mc.V[0x2] = 42

	tm.step(t, 3)
	test.Equate(t, tm.mc.V[0x3], 42)
	test.Equate(t, tm.sound.Value(), 42)
}

func TestWaitKey(t *testing.T) {
	tm := newTestMachine(t, 0xf1, 0x0a)

	// a release must not satisfy the wait; the press that follows does
	tm.events <- userinput.Event{Key: 0x5, Down: false}
	tm.events <- userinput.Event{Key: 0x5, Down: true}

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x1], 0x5)
	test.Equate(t, tm.mc.PC, 0x202)
}

func TestWaitKeyShutdown(t *testing.T) {
	tm := newTestMachine(t, 0xf1, 0x0a)
	close(tm.quit)

	if err := tm.mc.ExecuteInstruction(); err != nil {
		t.Fatal(err)
	}

	// the wait was abandoned. the program counter must not advance
	test.Equate(t, tm.mc.PC, 0x200)
	test.Equate(t, tm.mc.Halted(), true)
}

func TestSkipKey(t *testing.T) {
	// LD V4,0x04; SKP V4 with key 4 pressed
	tm := newTestMachine(t, 0x64, 0x04, 0xe4, 0x9e)
	tm.events <- userinput.Event{Key: 0x4, Down: true}

	instructions := 0
	err := tm.mc.Run(func() (bool, error) {
		instructions++
		return instructions < 2, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	test.Equate(t, tm.mc.PC, 0x206)
}

func TestRunShutdown(t *testing.T) {
	// a closed shutdown signal stops the loop before any instruction
	tm := newTestMachine(t, 0x12, 0x00)
	close(tm.quit)

	if err := tm.mc.Run(nil); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, tm.mc.PC, 0x200)
}

func TestRunClosedEventChannel(t *testing.T) {
	// a closed event channel is treated as the shutdown signal
	tm := newTestMachine(t, 0x12, 0x00)
	close(tm.events)

	if err := tm.mc.Run(nil); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, tm.mc.Halted(), true)
}
