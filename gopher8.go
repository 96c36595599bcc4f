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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. the play mode installs its own handler so that the
	// machine can be shut down gracefully.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this
// is required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//
	// when a gui is created its Run() loop is serviced here, in the main
	// thread, until the gui is stopped.
	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			scr, err := creator()
			if err != nil {
				sync.creationError <- err
				continue // for loop
			}
			sync.creation <- scr

			// #mainthread
			err = scr.Run()
			if err != nil {
				fmt.Printf("* error in player: %v\n", err)
				exitVal = 20
			}
			scr.Destroy()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = play(md, sync)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scale := md.AddInt("scale", 10, "window scaling (size of a single pixel)")
	term := md.AddBool("term", false, "play in the terminal rather than an SDL window")
	trace := md.AddBool("trace", false, "log every instruction as it executes")
	stats := md.AddBool("stats", false, "launch statistics server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo. the terminal player owns the terminal so the
	// echo would corrupt the display
	if *log && !*term {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		ch := hardware.NewChip8()
		ch.CPU.Trace = *trace

		err := ch.AttachProgram(romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}

		// turn off fallback ctrl-c handling before the gui is created. once
		// the gui is running the main thread is servicing it, not the state
		// channel. our replacement handler shuts the machine down
		// gracefully, leaving the terminal in a usable state
		sync.state <- stateRequest{req: reqNoIntSig}

		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		go func() {
			<-intChan
			ch.Quit()
		}()

		// create gui
		sync.creator <- func() (gui.GUI, error) {
			if *term {
				return termplay.NewTermPlay(ch.FB, ch.Events, ch.Quit)
			}
			return sdlplay.NewSdlPlay(ch.FB, ch.Events, ch.Quit, *scale)
		}

		// wait for creator result
		var scr gui.GUI
		select {
		case g := <-sync.creation:
			scr = g
		case err := <-sync.creationError:
			return err
		}

		// the machine runs in this goroutine while the gui is serviced by
		// the main thread. the gui is stopped once the machine has ended,
		// however that has come about
		err = ch.Run(nil)
		scr.Stop()
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	dumpState := md.AddString("dumpstate", "", "write machine state graph to file on completion")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		return performance.Check(md.Output, *profile, *duration, *dumpState, md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
