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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Values for the RandomMode preference.
const (
	// Vx = random byte AND KK
	RandomAND = "AND"

	// Vx = random number modulo KK+1
	RandomModulus = "MODULUS"
)

// Default values for hardware preferences.
const (
	DefaultCyclesPerFrame = 4
	DefaultRandomMode     = RandomAND
	DefaultFPS            = 60.0
	DefaultRandomState    = false
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions executed by the CPU in every frame
	CyclesPerFrame prefs.Int

	// how the CXKK instruction produces a random number
	RandomMode prefs.String

	// the number of frames per second when the frame limiter is active
	FPS prefs.Float

	// initialise data registers to random values after reset
	RandomState prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile creates a new Preferences instance using the named
// file for storage. The file is created if it doesn't exist.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.CyclesPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("preferences: cycles per frame must be at least one (%d)", v.(int))
		}
		return nil
	})

	p.RandomMode.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case RandomAND, RandomModulus:
			return nil
		}
		return curated.Errorf("preferences: unrecognised random mode (%s)", v.(string))
	})

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf("preferences: fps must be positive (%.2f)", v.(float64))
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cyclesPerFrame", &p.CyclesPerFrame)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.random.mode", &p.RandomMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.fps", &p.FPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware settings to default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with the default values
	_ = p.CyclesPerFrame.Set(DefaultCyclesPerFrame)
	_ = p.RandomMode.Set(DefaultRandomMode)
	_ = p.FPS.Set(DefaultFPS)
	_ = p.RandomState.Set(DefaultRandomState)
}

// Reset all hardware preferences to the default values. Unlike SetDefaults()
// the change is not visible on disk until Save() is called.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Summary returns a one line description of the current preferences.
func (p *Preferences) Summary() string {
	return fmt.Sprintf("cycles=%d random=%s fps=%.2f", p.CyclesPerFrame.Get().(int), p.RandomMode.String(), p.FPS.Get().(float64))
}
