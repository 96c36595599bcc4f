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

package gui

// GUI is the interface implemented by every playback surface. A surface
// reads the shared framebuffer on its own redraw cadence, translates its
// native key events into userinput events and raises the machine's
// shutdown signal when the user closes it.
type GUI interface {
	// Run the surface's event/redraw loop. Blocks until the surface is
	// closed by the user or stopped with Stop(). SDL surfaces must be
	// Run() on the main thread.
	Run() error

	// Stop the Run() loop. Safe to call from any goroutine.
	Stop()

	// Destroy releases the surface's resources. Call after Run() has
	// returned.
	Destroy()
}
