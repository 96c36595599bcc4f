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

package termplay

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Sentinel error pattern for terminal failures.
const Terminal = "termplay: %v"

// redraws per second. terminals are slow; no need for the full 60
const redrawRate = 30

// the terminal reports key presses only. a release is synthesised this
// long after each press
const releaseDelay = 120 * time.Millisecond

// ansi control sequences
const (
	ansiClear      = "\033[2J"
	ansiHome       = "\033[H"
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
)

// TermPlay is a playback surface for posix terminals. The framebuffer is
// redrawn in place with ANSI control sequences and keys are read from
// stdin in cbreak mode.
//
// Terminals cannot observe key releases so TermPlay synthesises one
// shortly after every press. Games that rely on held keys will feel
// different than under sdlplay.
type TermPlay struct {
	fb *video.Framebuffer

	events chan<- userinput.Event
	quit   func()

	lmtr *limiter.FpsLimiter

	input  *os.File
	output *os.File

	// terminal attributes on entry, restored by Destroy()
	savedAttr unix.Termios

	stopped int32
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is placed in cbreak mode until Destroy() is called.
func NewTermPlay(fb *video.Framebuffer, events chan<- userinput.Event, quit func()) (gui.GUI, error) {
	scr := &TermPlay{
		fb:     fb,
		events: events,
		quit:   quit,
		input:  os.Stdin,
		output: os.Stdout,
	}

	if err := termios.Tcgetattr(scr.input.Fd(), &scr.savedAttr); err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	cbreakAttr := scr.savedAttr
	termios.Cfmakecbreak(&cbreakAttr)
	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &cbreakAttr); err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	var err error
	scr.lmtr, err = limiter.NewFpsLimiter(redrawRate)
	if err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	scr.output.WriteString(ansiHideCursor)
	scr.output.WriteString(ansiClear)

	// keys are serviced concurrently with the redraw loop
	go scr.serviceKeyboard()

	return scr, nil
}

// Stop implements the gui.GUI interface.
func (scr *TermPlay) Stop() {
	atomic.StoreInt32(&scr.stopped, 1)
}

// Destroy implements the gui.GUI interface. Restores the terminal to the
// state it was in before NewTermPlay().
func (scr *TermPlay) Destroy() {
	scr.output.WriteString(ansiShowCursor)
	termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.savedAttr)
}

// Run implements the gui.GUI interface.
func (scr *TermPlay) Run() error {
	for atomic.LoadInt32(&scr.stopped) == 0 {
		scr.render()
		scr.lmtr.Wait()
	}
	return nil
}

// serviceKeyboard reads stdin a byte at a time, translating mapped keys
// into press events (with a synthesised release) and ESC into the
// shutdown signal.
func (scr *TermPlay) serviceKeyboard() {
	buf := make([]byte, 1)
	for atomic.LoadInt32(&scr.stopped) == 0 {
		n, err := scr.input.Read(buf)
		if err != nil || n == 0 {
			return
		}

		if buf[0] == 27 { // ESC
			scr.quit()
			return
		}

		key, ok := userinput.MapKey(string(buf[0]))
		if !ok {
			continue
		}

		scr.send(userinput.Event{Key: key, Down: true})
		time.AfterFunc(releaseDelay, func() {
			scr.send(userinput.Event{Key: key, Down: false})
		})
	}
}

func (scr *TermPlay) send(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
		logger.Log(logger.Allow, "termplay", "event channel full: key event dropped")
	}
}

// render redraws the framebuffer in place. Every CHIP-8 pixel is two
// terminal cells wide to keep the aspect ratio roughly square.
func (scr *TermPlay) render() {
	s := strings.Builder{}
	s.WriteString(ansiHome)

	scr.fb.BorrowPixels(func(bits []uint8) {
		for i, b := range bits {
			for bit := 7; bit >= 0; bit-- {
				if b&(1<<uint(bit)) != 0 {
					s.WriteString("██")
				} else {
					s.WriteString("  ")
				}
			}
			if (i+1)%video.BytesPerRow == 0 {
				s.WriteString("\r\n")
			}
		}
	})

	fmt.Fprint(scr.output, s.String())
}
