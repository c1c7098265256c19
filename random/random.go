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

package random

import (
	"math/rand"
	"sync/atomic"
	"time"
)

var baseSeed int64

// number of Random instances created with a zero seed.
var instances atomic.Int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a source of random numbers for the emulated machine.
type Random struct {
	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = baseSeed + instances.Add(1)
	}
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed used to create the Random instance.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Intn returns a number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n)
}

// Byte returns a number in the range [0,255].
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rnd.Intn(256))
}
