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

package hardware_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, program ...uint8) romloader.Loader {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := ioutil.WriteFile(fn, program, 0600); err != nil {
		t.Fatal(err)
	}
	return romloader.NewLoader(fn)
}

func TestAttachAndRun(t *testing.T) {
	// a program that draws the digit 0 and then spins
	//
	// 0x200: LD V1,0x00
	// 0x202: LD F,V1
	// 0x204: DRW V1,V1,5
	// 0x206: JP 0x206
	ch := hardware.NewChip8()
	err := ch.AttachProgram(writeROM(t,
		0x61, 0x00,
		0xf1, 0x29,
		0xd1, 0x15,
		0x12, 0x06,
	))
	if err != nil {
		t.Fatal(err)
	}

	instructions := 0
	err = ch.Run(func() (bool, error) {
		instructions++
		return instructions < 10, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	// the digit sprite is on screen, top left
	test.Equate(t, ch.FB.Peek(0), 0xf0)
	test.Equate(t, ch.FB.Peek(8), 0x90)
	test.Equate(t, ch.CPU.PC, 0x206)
}

func TestQuitStopsRun(t *testing.T) {
	ch := hardware.NewChip8()
	err := ch.AttachProgram(writeROM(t, 0x12, 0x00))
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error)
	go func() {
		done <- ch.Run(nil)
	}()

	ch.Quit()
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	// quitting twice is safe
	ch.Quit()
}

func TestAttachBadProgram(t *testing.T) {
	ch := hardware.NewChip8()
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	if err := ch.AttachProgram(ld); err == nil {
		t.Fatal("expected error attaching missing program")
	}
}
