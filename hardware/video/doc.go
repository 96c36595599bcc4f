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

// Package video implements the shared framebuffer of the CHIP-8. The CPU
// writes to it (the CLS and DRW operations) and a playback surface reads
// from it on its own redraw cadence. The two sides never see a partially
// composited sprite: every blit happens inside the framebuffer's
// readers-writer lock.
//
// Renderers access the pixels with BorrowPixels:
//
//	fb.BorrowPixels(func(bits []uint8) {
//		// paint bits to the surface
//	})
package video
