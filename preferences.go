// This file is part of SuperChocChip.
//
// SuperChocChip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SuperChocChip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SuperChocChip.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/gui/terminal"
	"github.com/superchocchip/superchocchip/paths"
	"github.com/superchocchip/superchocchip/prefs"
	"github.com/superchocchip/superchocchip/userinput"
)

// preferences stored on disk. command line flags take priority over these
// values.
type preferences struct {
	dsk *prefs.Disk

	keymap  prefs.String
	scale   prefs.Int
	palette prefs.String
	backend prefs.String
	cursor  prefs.Int
}

// newPreferences loads the preferences from the file. An empty path means the
// default preferences file.
func newPreferences(path string) (*preferences, error) {
	var err error

	if path == "" {
		path, err = paths.ResourcePath("preferences")
		if err != nil {
			return nil, err
		}
	}

	p := &preferences{}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	// validation hooks. a scale of zero means the default scale for the
	// backend and an empty palette means the default palette
	p.keymap.SetHookPre(func(v prefs.Value) error {
		_, err := userinput.ParseKeymap(v.(string))
		return err
	})
	p.scale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("scale cannot be negative (%d)", v.(int))
		}
		return nil
	})
	p.palette.SetHookPre(func(v prefs.Value) error {
		_, err := gui.ParsePalette(v.(string), gui.DefaultPalette(true))
		return err
	})
	p.backend.SetHookPre(func(v prefs.Value) error {
		_, err := gui.ValidateBackend(v.(string))
		return err
	})
	p.cursor.SetHookPre(func(v prefs.Value) error {
		_, err := parseCursor(v.(int))
		return err
	})

	err = p.setDefaults()
	if err != nil {
		return nil, err
	}

	for _, e := range []error{
		p.dsk.Add("keymap", &p.keymap),
		p.dsk.Add("scale", &p.scale),
		p.dsk.Add("palette", &p.palette),
		p.dsk.Add("backend", &p.backend),
		p.dsk.Add("cursor", &p.cursor),
	} {
		if e != nil {
			return nil, e
		}
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() error {
	if err := p.keymap.Set(userinput.DefaultKeymap); err != nil {
		return err
	}
	if err := p.scale.Set(0); err != nil {
		return err
	}
	if err := p.palette.Set(""); err != nil {
		return err
	}
	if err := p.backend.Set(gui.DefaultBackend); err != nil {
		return err
	}
	return p.cursor.Set(int(terminal.CursorHidden))
}

func (p *preferences) save() error {
	return p.dsk.Save()
}

// parseCursor converts the value of the -cursor flag to a CursorMode.
func parseCursor(v int) (terminal.CursorMode, error) {
	switch terminal.CursorMode(v) {
	case terminal.CursorHidden, terminal.CursorVisible, terminal.CursorBlock:
		return terminal.CursorMode(v), nil
	}
	return terminal.CursorHidden, fmt.Errorf("cursor mode must be 0, 1 or 2 (%d)", v)
}
