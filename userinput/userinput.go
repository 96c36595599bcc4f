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

package userinput

// Event is a single key transition on the CHIP-8 keypad. Key is a hex
// key code in the range 0x0 to 0xf.
type Event struct {
	Key  uint8
	Down bool
}

// ChannelCapacity is the buffer size for the event channel between a
// playback surface and the machine. Key events arrive at human rates so
// the channel never realistically fills; surfaces drop events rather
// than block if it does.
const ChannelCapacity = 64

// NewChannel creates the event channel connecting a playback surface to
// the machine.
func NewChannel() chan Event {
	return make(chan Event, ChannelCapacity)
}
