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

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel error pattern for all SDL failures.
const SDL = "sdlplay: %v"

// number of bytes per pixel in the texture
const pixelDepth = 4

// redraws per second
const redrawRate = 60

// SdlPlay is the SDL playback surface: a window showing the shared
// framebuffer, with the host keyboard mapped onto the CHIP-8 keypad.
type SdlPlay struct {
	fb *video.Framebuffer

	// key events are delivered to the machine on this channel
	events chan<- userinput.Event

	// raises the machine's shutdown signal. called once when the window
	// is closed
	quit func()

	// limit redraws to a fixed rate
	lmtr *limiter.FpsLimiter

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array copied to the texture on every redraw
	pixels []byte

	// stopped is set by Stop(), possibly from another goroutine
	stopped int32
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. The scale argument is the size of a CHIP-8 pixel in host pixels.
func NewSdlPlay(fb *video.Framebuffer, events chan<- userinput.Event, quit func(), scale int) (gui.GUI, error) {
	scr := &SdlPlay{
		fb:     fb,
		events: events,
		quit:   quit,
		pixels: make([]byte, video.Width*video.Height*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// texture is the same size as the framebuffer. the renderer scales
	// it to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.lmtr, err = limiter.NewFpsLimiter(redrawRate)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	return scr, nil
}

// Stop implements the gui.GUI interface.
func (scr *SdlPlay) Stop() {
	atomic.StoreInt32(&scr.stopped, 1)
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
