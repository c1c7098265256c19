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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "disasm")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected sub-mode. If the first non-flag
// argument is not a listed sub-mode then the first sub-mode in the list is
// chosen as the default. Each mode then calls NewMode() to define its own
// flags before calling Parse() again:
//
//	md.NewMode()
//	arch := md.AddString("arch", "xochip16", "architecture to emulate")
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
// Flags added with AddOptionalBool() remember whether they were given on the
// command line. The Value() function returns nil if they were not, which
// allows the caller to fall back to a default that depends on other flags.
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg().
package modalflag
