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

package timer

import (
	"sync"
	"time"
)

// TicksPerSecond is the rate at which the timer service decrements the
// counters.
const TicksPerSecond = 60

// Counter is an 8-bit countdown value shared between the CPU and the
// timer service. The CPU loads and reads it; the timer service
// decrements it towards zero. It never goes below zero.
type Counter struct {
	crit  sync.Mutex
	value uint8
}

// Load the counter with a new value.
func (ct *Counter) Load(value uint8) {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	ct.value = value
}

// Value returns the current counter value.
func (ct *Counter) Value() uint8 {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	return ct.value
}

// decrement the counter, saturating at zero.
func (ct *Counter) decrement() {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	if ct.value > 0 {
		ct.value--
	}
}

// Timers is the 60Hz timer service. It decrements the delay and sound
// counters on a fixed-rate schedule, independently of the CPU.
type Timers struct {
	delay *Counter
	sound *Counter

	quit chan struct{}
	done chan struct{}
}

// NewTimers is the preferred method of initialisation for the Timers
// type. The service does not run until Start() is called.
func NewTimers(delay *Counter, sound *Counter) *Timers {
	return &Timers{
		delay: delay,
		sound: sound,
	}
}

// Start the timer service. The first tick happens immediately and
// subsequent ticks at the fixed rate. Start after Start is a no-op until
// Stop has been called.
func (tmr *Timers) Start() {
	if tmr.quit != nil {
		return
	}

	tmr.quit = make(chan struct{})
	tmr.done = make(chan struct{})

	go func(quit chan struct{}, done chan struct{}) {
		defer close(done)

		// zero initial delay before the first tick
		tmr.tick()

		tck := time.NewTicker(time.Second / TicksPerSecond)
		defer tck.Stop()

		for {
			select {
			case <-tck.C:
				tmr.tick()
			case <-quit:
				return
			}
		}
	}(tmr.quit, tmr.done)
}

// Stop the timer service. Deterministic: when Stop returns no further
// tick can happen. Stop without a preceding Start is a no-op.
func (tmr *Timers) Stop() {
	if tmr.quit == nil {
		return
	}
	close(tmr.quit)
	<-tmr.done
	tmr.quit = nil
	tmr.done = nil
}

func (tmr *Timers) tick() {
	tmr.delay.decrement()
	tmr.sound.decrement()
}
