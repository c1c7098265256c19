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

// Package logger is the central log repository for SuperChocChip. Log
// entries are tagged and held in a bounded list. Identical consecutive entries
// are folded together.
//
// The package level functions operate on a central Logger that is created
// when the package is initialised. Components that need their own log, for
// example tests, can create a separate instance with NewLogger().
//
// Logging is not a substitute for error handling. Faults raised by the
// emulated hardware are returned as curated errors and are not logged by the
// component that raises them.
package logger
