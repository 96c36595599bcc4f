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

package sdlplay

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Run implements the gui.GUI interface. SDL window and event handling
// must happen on the main thread.
//
// #mainthread
func (scr *SdlPlay) Run() error {
	for atomic.LoadInt32(&scr.stopped) == 0 {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				scr.quit()
				return nil

			case *sdl.KeyboardEvent:
				if ev.Repeat != 0 {
					continue
				}
				scr.serviceKeyboard(ev)
			}
		}

		if err := scr.render(); err != nil {
			return err
		}

		scr.lmtr.Wait()
	}

	return nil
}

func (scr *SdlPlay) serviceKeyboard(ev *sdl.KeyboardEvent) {
	name := sdl.GetKeyName(ev.Keysym.Sym)

	if name == "Escape" && ev.Type == sdl.KEYDOWN {
		scr.quit()
		return
	}

	key, ok := userinput.MapKey(name)
	if !ok {
		// key has no place on the CHIP-8 keypad
		return
	}

	// never block the render loop on event delivery
	select {
	case scr.events <- userinput.Event{Key: key, Down: ev.Type == sdl.KEYDOWN}:
	default:
		logger.Log(logger.Allow, "sdlplay", "event channel full: key event dropped")
	}
}

// render copies the shared framebuffer to the texture and presents it.
func (scr *SdlPlay) render() error {
	scr.fb.BorrowPixels(func(bits []uint8) {
		for i, b := range bits {
			row := i / video.BytesPerRow
			for bit := 0; bit < 8; bit++ {
				col := (i%video.BytesPerRow)*8 + (7 - bit)
				o := (row*video.Width + col) * pixelDepth

				if b&(1<<uint(bit)) != 0 {
					scr.pixels[o] = 0
					scr.pixels[o+1] = 255
					scr.pixels[o+2] = 0
				} else {
					scr.pixels[o] = 0
					scr.pixels[o+1] = 0
					scr.pixels[o+2] = 0
				}
			}
		}
	})

	if err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth); err != nil {
		return err
	}
	if err := scr.renderer.Clear(); err != nil {
		return err
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}
