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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. A new FpsLimiter is created with:
//
//	fps, _ := limiter.NewFpsLimiter(60)
//
// Operations can then be stalled with the Wait() function:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error pattern.
const Limiter = "limiter: %v"

// this is a rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// FpsLimiter triggers at a fixed number of events per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFpsLimiter is the preferred method of initialisation for the
// FpsLimiter type.
func NewFpsLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(Limiter, fmt.Errorf("rate must be positive (%d)", framesPerSecond))
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
	}

	// run ticker concurrently. the sleep duration is adjusted every
	// trigger to account for drift
	go func() {
		adjustedSecondsPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondsPerFrame)
			nt := time.Now()
			adjustedSecondsPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim, nil
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the trigger has already elapsed and false if
// it is still to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
