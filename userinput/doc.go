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

// Package userinput translates the keyboard of the host into the sixteen key
// hexadecimal keypad of the emulated machine.
//
// A Keymap is created from a list of sixteen host key codes. The first code
// is mapped to keypad key 0x0, the second to keypad key 0x1 and so on. Key
// codes are those used by the GUI backend, which for the default keymap are
// the ASCII values of lower case characters.
//
// The Keypad type records the state of the sixteen keys. GUI backends that
// receive both key down and key up events use Press() and Release(). Backends
// that only see characters, such as a terminal, use Tap() which holds the key
// down for a short time. Either way, the Keypad implements the keypress
// latch used by the Fx0A instruction.
//
// The Null type is an input collaborator for when no input is required.
package userinput
