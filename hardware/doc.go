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

// Package hardware assembles the components of the CHIP-8 into a single
// machine. Three schedules run in parallel once the machine is running:
// the engine's fetch-decode-execute loop, the timer service's fixed-rate
// tick, and the playback surface's redraw loop. They coordinate only
// through the shared framebuffer (readers-writer lock), the timer
// counters (mutexes), the key event channel and the one-shot shutdown
// signal.
package hardware
