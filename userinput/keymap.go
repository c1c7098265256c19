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

package userinput

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/superchocchip/superchocchip/curated"
)

// KeymapError is the pattern used for errors raised by ParseKeymap().
const KeymapError = "keymap: %v"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// DefaultKeymap maps the keypad to the left hand side of a QWERTY keyboard.
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D        q w e r
//	7 8 9 E        a s d f
//	A 0 B F        z x c v
const DefaultKeymap = "120,49,50,51,113,119,101,97,115,100,122,99,52,114,102,118"

// Keymap maps host key codes to keypad keys.
type Keymap struct {
	codes [NumKeys]int
	keys  map[int]uint8
}

// ParseKeymap creates a new Keymap from a comma separated list of sixteen
// decimal key codes.
func ParseKeymap(s string) (Keymap, error) {
	km := Keymap{
		keys: make(map[int]uint8),
	}

	parts := strings.Split(s, ",")
	if len(parts) != NumKeys {
		return Keymap{}, curated.Errorf(KeymapError, fmt.Sprintf("%d keys defined, %d are required", len(parts), NumKeys))
	}

	for i, p := range parts {
		code, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Keymap{}, curated.Errorf(KeymapError, fmt.Sprintf("key code is not an integer (%s)", strings.TrimSpace(p)))
		}
		if k, ok := km.keys[code]; ok {
			return Keymap{}, curated.Errorf(KeymapError, fmt.Sprintf("key code %d is used for both key %X and key %X", code, k, i))
		}
		km.codes[i] = code
		km.keys[code] = uint8(i)
	}

	return km, nil
}

// Lookup returns the keypad key for the host key code. The ok value is false
// if the code is not in the keymap.
func (km Keymap) Lookup(code int) (uint8, bool) {
	k, ok := km.keys[code]
	return k, ok
}

// Code returns the host key code for the keypad key.
func (km Keymap) Code(key uint8) int {
	return km.codes[key&0x0f]
}

// String returns the keymap in the form accepted by ParseKeymap().
func (km Keymap) String() string {
	s := make([]string, NumKeys)
	for i, c := range km.codes {
		s[i] = strconv.Itoa(c)
	}
	return strings.Join(s, ",")
}
