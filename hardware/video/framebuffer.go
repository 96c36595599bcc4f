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

package video

import (
	"sync"
)

// Dimensions of the CHIP-8 display.
const (
	Width       = 64
	Height      = 32
	BytesPerRow = Width / 8
	NumBytes    = BytesPerRow * Height
)

// Framebuffer is the 64x32 monochrome bitmap shared between the CPU and
// the playback surface. Each byte holds eight pixels, most significant
// bit leftmost: bit b of byte i is the pixel at column (i%8)*8 + (7-b),
// row i/8.
//
// The CPU is the sole writer and a renderer is the sole reader. Both
// sides synchronise through the embedded readers-writer lock.
type Framebuffer struct {
	crit sync.RWMutex
	bits [NumBytes]uint8
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Clear every pixel. Implements the CLS operation.
func (fb *Framebuffer) Clear() {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.bits = [NumBytes]uint8{}
}

// BlitSprite XOR-composites a sprite onto the framebuffer at pixel
// coordinates (x, y). Each sprite byte is one eight-pixel row. Returns
// true if any pixel was extinguished by the blit (a set pixel XORed back
// to unset), which is the collision condition for the DRW operation. A
// pixel turning on is not a collision.
//
// Sprite rows are byte-aligned vertically but not horizontally: a sprite
// byte lands across two adjacent framebuffer bytes, split at x%8.
// Horizontal overflow wraps within the same row and vertical overflow
// wraps to the top of the buffer.
func (fb *Framebuffer) BlitSprite(sprite []uint8, x uint8, y uint8) bool {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	first := (int(y)*BytesPerRow + int(x)/8) % NumBytes
	second := first + 1

	// wrap around rather than spilling into the next row
	if second%BytesPerRow == 0 {
		second -= BytesPerRow
	}

	shift := x % 8
	collision := false

	for i, b := range sprite {
		idxA := (first + i*BytesPerRow) % NumBytes
		idxB := (second + i*BytesPerRow) % NumBytes

		oldA := fb.bits[idxA]
		oldB := fb.bits[idxB]

		fb.bits[idxA] ^= b >> shift
		if shift != 0 {
			fb.bits[idxB] ^= b << (8 - shift)
		}

		// collision is any pixel going from set to unset
		if oldA&^fb.bits[idxA] != 0 || oldB&^fb.bits[idxB] != 0 {
			collision = true
		}
	}

	return collision
}

// BorrowPixels gives the provided function the critical section and
// read access to the pixel bytes. The function must not retain the
// slice after returning.
func (fb *Framebuffer) BorrowPixels(f func(bits []uint8)) {
	fb.crit.RLock()
	defer fb.crit.RUnlock()
	f(fb.bits[:])
}

// Poke sets the byte at the specified index. Only used by tests to
// prepare the framebuffer in a known state.
func (fb *Framebuffer) Poke(idx int, value uint8) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.bits[idx%NumBytes] = value
}

// Peek returns the byte at the specified index.
func (fb *Framebuffer) Peek(idx int) uint8 {
	fb.crit.RLock()
	defer fb.crit.RUnlock()
	return fb.bits[idx%NumBytes]
}
