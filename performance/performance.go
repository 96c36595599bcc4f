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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
)

// Sentinel error pattern for all performance mode failures.
const Performance = "performance: %v"

// Check runs the machine headless (no playback surface, no input) for
// the specified duration and reports how many instructions per second
// the engine managed.
//
// If profile is true, a pprof CPU profile covering the run and a memory
// profile taken at the end of the run are written to the working
// directory. If dumpState is not empty the machine structure is written
// to that file in Graphviz dot format at the end of the run.
func Check(output io.Writer, profile bool, duration string, dumpState string, romFile string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(Performance, err)
	}

	ch := hardware.NewChip8()

	err = ch.AttachProgram(romloader.NewLoader(romFile))
	if err != nil {
		return curated.Errorf(Performance, err)
	}

	// instruction count over the measured period
	numInstructions := 0

	runner := func() error {
		// setup trigger that expires when duration has elapsed. the
		// machine's own shutdown signal is raised too, in case the program
		// is blocked waiting for a key that will never arrive
		timesUp := make(chan bool)

		time.AfterFunc(dur, func() {
			close(timesUp)
			ch.Quit()
		})

		return ch.Run(func() (bool, error) {
			numInstructions++
			select {
			case <-timesUp:
				return false, nil
			default:
				return true, nil
			}
		})
	}

	if profile {
		err = cpuProfile("cpu.profile", runner)
	} else {
		err = runner()
	}
	if err != nil {
		return curated.Errorf(Performance, err)
	}

	ips := float64(numInstructions) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f instructions per second (%d in %.2f seconds)\n",
		ips, numInstructions, dur.Seconds())))

	if dumpState != "" {
		if err := dumpMachine(dumpState, ch); err != nil {
			return curated.Errorf(Performance, err)
		}
	}

	if profile {
		return memProfile("mem.profile")
	}

	return nil
}
