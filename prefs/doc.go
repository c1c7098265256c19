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

// Package prefs facilitates the storage of preferential values in the
// SuperChocChip system. It is intended to store values that are persistent
// between program executions, for example the keymap and the window scale.
//
// Values are created with the Bool, String and Int types and added to a Disk
// instance. The Disk handles the loading and saving of the values. Values
// added to a Disk are identified by a key string which should be unique for
// the file.
//
// Hooks can be attached to a value with SetHookPre() and SetHookPost(). An
// error returned by a pre hook prevents the value from being changed, which
// makes it a convenient place to validate the value.
package prefs
