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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinal errors returned by Load().
const (
	EmptyROM       = "romloader: ROM is empty (%s)"
	ROMTooLarge    = "romloader: ROM is too large (%d bytes)"
	UnexpectedHash = "romloader: unexpected hash value"
)

// Loader specifies the ROM to attach to the machine.
type Loader struct {
	// filename of the ROM to load. can be a URL
	Filename string

	// expected hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a successful load
	// operation the value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// FileExtensions is the list of file extensions that are commonly used for
// CHIP-8 programs.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// ShortName returns a shortened version of the loader filename. The file
// extension is removed only if it is one of the FileExtensions.
func (ld Loader) ShortName() string {
	n := path.Base(filepath.ToSlash(ld.Filename))
	if IsROMExtension(path.Ext(n)) {
		return strings.TrimSuffix(n, path.Ext(n))
	}
	return n
}

// IsROMExtension returns true if the extension is in the FileExtensions
// list. The comparison is not case sensitive and the leading period is
// required.
func IsROMExtension(ext string) bool {
	for _, e := range FileExtensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

func (ld Loader) String() string {
	if ld.Hash == "" {
		return ld.ShortName()
	}
	return fmt.Sprintf("%s [%s]", ld.ShortName(), ld.Hash)
}

// Load the ROM data. Filenames with a scheme will use that method to load
// the data.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	var data []byte

	scheme := "file"
	filename := ld.Filename

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
		if scheme == "file" {
			filename = u.Path
		}
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", fmt.Sprintf("http status (%s)", resp.Status))
		}

		// read one byte more than the maximum so that we can tell if the ROM
		// is too large without reading everything the server sends
		data, err = io.ReadAll(io.LimitReader(resp.Body, memory.MaxProgramSize+1))
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		data, err = os.ReadFile(filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyROM, ld.ShortName())
	}

	if len(data) > memory.MaxProgramSize {
		return curated.Errorf(ROMTooLarge, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && !strings.EqualFold(ld.Hash, hash) {
		return curated.Errorf(UnexpectedHash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
