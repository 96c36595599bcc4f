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

package hardware

import (
	"sync"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/userinput"
)

// Chip8 is the assembled machine: the execution engine, the 4KiB address
// space, the shared framebuffer, the timer service and the input channel.
// Everything is created once and lives for the lifetime of the machine.
type Chip8 struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	FB    *video.Framebuffer
	Delay *timer.Counter
	Sound *timer.Counter

	Timers *timer.Timers

	// Events is where a playback surface delivers key events
	Events chan userinput.Event

	// closed by Quit(). the one-shot peripheral shutdown signal
	quit     chan struct{}
	quitOnce sync.Once
}

// NewChip8 creates a new machine and everything associated with the
// hardware.
func NewChip8() *Chip8 {
	ch := &Chip8{
		Mem:    memory.NewMemory(),
		FB:     video.NewFramebuffer(),
		Delay:  &timer.Counter{},
		Sound:  &timer.Counter{},
		Events: userinput.NewChannel(),
		quit:   make(chan struct{}),
	}

	ch.Timers = timer.NewTimers(ch.Delay, ch.Sound)
	ch.CPU = cpu.NewCPU(ch.Mem, ch.FB, ch.Delay, ch.Sound, ch.Events, ch.quit)

	return ch
}

// AttachProgram loads program data into memory at the conventional load
// address and resets the engine. A load failure leaves no partial state:
// it is reported before the engine starts.
func (ch *Chip8) AttachProgram(ld romloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	if err := ch.Mem.LoadProgram(ld.Data); err != nil {
		return err
	}

	ch.CPU.Reset()
	logger.Logf(logger.Allow, "chip8", "%s: %d bytes at %#04x", ld.Filename, len(ld.Data), memory.LoadAddress)

	return nil
}

// Run the machine until the shutdown signal or a fatal engine error.
// The timer service is started on entry and deterministically stopped on
// the way out.
//
// continueCheck is called after every instruction; nil means run until
// shutdown.
func (ch *Chip8) Run(continueCheck func() (bool, error)) error {
	ch.Timers.Start()
	defer ch.Timers.Stop()

	return ch.CPU.Run(continueCheck)
}

// Quit raises the one-shot shutdown signal. Safe to call from any
// goroutine and more than once.
func (ch *Chip8) Quit() {
	ch.quitOnce.Do(func() {
		close(ch.quit)
	})
}
