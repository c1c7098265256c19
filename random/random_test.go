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

package random_test

import (
	"testing"

	"github.com/superchocchip/superchocchip/random"
	"github.com/superchocchip/superchocchip/test"
)

func TestSeeded(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(100)
	test.ExpectEquality(t, a.Seed(), int64(100))

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Byte(), b.Byte(), i)
		test.ExpectEquality(t, a.Intn(i), b.Intn(i), i)
	}
}

func TestUnseeded(t *testing.T) {
	a := random.NewRandom(0)
	b := random.NewRandom(0)
	test.ExpectInequality(t, a.Seed(), int64(0))
	test.ExpectInequality(t, a.Seed(), b.Seed())
}

func TestRange(t *testing.T) {
	a := random.NewRandom(1)
	for i := 0; i < 1000; i++ {
		n := a.Intn(16)
		test.ExpectSuccess(t, n >= 0 && n < 16, i)
	}
}
