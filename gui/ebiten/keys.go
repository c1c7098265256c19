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

package ebiten

import "github.com/hajimehoshi/ebiten/v2"

var letters = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE,
	ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ,
	ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO,
	ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT,
	ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY,
	ebiten.KeyZ,
}

var digits = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
	ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var punctuation = map[int]ebiten.Key{
	' ':  ebiten.KeySpace,
	',':  ebiten.KeyComma,
	'.':  ebiten.KeyPeriod,
	'/':  ebiten.KeySlash,
	';':  ebiten.KeySemicolon,
	'\'': ebiten.KeyQuote,
	'-':  ebiten.KeyMinus,
	'=':  ebiten.KeyEqual,
	'[':  ebiten.KeyBracketLeft,
	']':  ebiten.KeyBracketRight,
	'\\': ebiten.KeyBackslash,
	'`':  ebiten.KeyBackquote,
}

// keyFromCode converts a keymap code to an ebiten key. Keymap codes are the
// ASCII value of the unshifted character printed on the key.
func keyFromCode(code int) (ebiten.Key, bool) {
	switch {
	case code >= 'a' && code <= 'z':
		return letters[code-'a'], true
	case code >= 'A' && code <= 'Z':
		return letters[code-'A'], true
	case code >= '0' && code <= '9':
		return digits[code-'0'], true
	}
	k, ok := punctuation[code]
	return k, ok
}
