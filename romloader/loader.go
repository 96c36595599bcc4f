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

package romloader

import (
	"io/ioutil"

	"github.com/jetsetilly/gopher8/curated"
)

// error patterns for load failures.
const (
	FileError  = "rom: %v"
	EmptyError = "rom: %s: file is empty"
)

// Loader is used to specify the program to load into the machine. The
// raw format has no header and no length prefix: the file content is the
// big-endian instruction stream, loaded verbatim at the conventional
// load address.
type Loader struct {
	// Filename of the program to load
	Filename string

	// copy of the loaded data. valid after a successful call to Load()
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader
// type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load reads the program file into the Data field. Missing, unreadable
// and empty files are errors. Programs too big for the address space are
// caught later, by Memory.LoadProgram().
func (ld *Loader) Load() error {
	data, err := ioutil.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyError, ld.Filename)
	}

	ld.Data = data

	return nil
}
