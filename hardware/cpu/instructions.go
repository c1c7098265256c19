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

package cpu

import (
	"fmt"
	"math"
	"time"

	"github.com/superchocchip/superchocchip/curated"
	"github.com/superchocchip/superchocchip/hardware/arch"
)

// opcode fields. the positions of the fields are the same for every
// instruction that uses them.
func (mc *CPU) x() int {
	return int(mc.Opcode>>8) & 0x0f
}

func (mc *CPU) y() int {
	return int(mc.Opcode>>4) & 0x0f
}

func (mc *CPU) nnn() uint16 {
	return mc.Opcode & 0x0fff
}

func (mc *CPU) kk() uint8 {
	return uint8(mc.Opcode)
}

func (mc *CPU) n() int {
	return int(mc.Opcode & 0x0f)
}

// skip the next instruction. the XO-CHIP long index load is four bytes long
// so the skip must take that into account.
func (mc *CPU) skip() {
	if mc.Arch >= arch.XOCHIP && mc.Fetch() == 0xf000 {
		mc.IncPC()
	}
	mc.IncPC()
}

// 00E0 CLS
func (mc *CPU) cls() error {
	return mc.fb.Clear()
}

// 00EE RET
func (mc *CPU) ret() error {
	pc, err := mc.stack.Pop()
	if err != nil {
		return err
	}
	mc.PC = pc
	return nil
}

// 1nnn JP addr
func (mc *CPU) jp() error {
	mc.PC = mc.nnn()
	return nil
}

// 2nnn CALL addr
func (mc *CPU) call() error {
	if err := mc.stack.Push(mc.PC); err != nil {
		return err
	}
	mc.PC = mc.nnn()
	return nil
}

// 3xkk SE Vx, byte
func (mc *CPU) seByte() error {
	if mc.V[mc.x()] == mc.kk() {
		mc.skip()
	}
	return nil
}

// 4xkk SNE Vx, byte
func (mc *CPU) sneByte() error {
	if mc.V[mc.x()] != mc.kk() {
		mc.skip()
	}
	return nil
}

// 5xy0 SE Vx, Vy
func (mc *CPU) seRegister() error {
	if mc.V[mc.x()] == mc.V[mc.y()] {
		mc.skip()
	}
	return nil
}

// 6xkk LD Vx, byte
func (mc *CPU) ldByte() error {
	mc.V[mc.x()] = mc.kk()
	return nil
}

// 7xkk ADD Vx, byte. the carry flag is not affected
func (mc *CPU) addByte() error {
	mc.V[mc.x()] += mc.kk()
	return nil
}

// the logic quirk resets VF after the logical instructions
func (mc *CPU) logicQuirk() {
	if mc.Quirks.Logic {
		mc.V[0xf] = 0
	}
}

// 8xy0 LD Vx, Vy
func (mc *CPU) ldRegister() error {
	mc.V[mc.x()] = mc.V[mc.y()]
	mc.logicQuirk()
	return nil
}

// 8xy1 OR Vx, Vy
func (mc *CPU) or() error {
	mc.V[mc.x()] |= mc.V[mc.y()]
	mc.logicQuirk()
	return nil
}

// 8xy2 AND Vx, Vy
func (mc *CPU) and() error {
	mc.V[mc.x()] &= mc.V[mc.y()]
	mc.logicQuirk()
	return nil
}

// 8xy3 XOR Vx, Vy
func (mc *CPU) xor() error {
	mc.V[mc.x()] ^= mc.V[mc.y()]
	mc.logicQuirk()
	return nil
}

// boolean to flag register value
func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// the arithmetic instructions write the result before the flag. if x is 0xf
// then the flag is the value that survives.

// 8xy4 ADD Vx, Vy
func (mc *CPU) addRegister() error {
	v := int(mc.V[mc.x()]) + int(mc.V[mc.y()])
	mc.V[mc.x()] = uint8(v)
	mc.V[0xf] = flag(v > 0xff)
	return nil
}

// 8xy5 SUB Vx, Vy
func (mc *CPU) sub() error {
	v := int(mc.V[mc.x()]) - int(mc.V[mc.y()])
	mc.V[mc.x()] = uint8(v)
	mc.V[0xf] = flag(v >= 0)
	return nil
}

// 8xy7 SUBN Vx, Vy
func (mc *CPU) subn() error {
	v := int(mc.V[mc.y()]) - int(mc.V[mc.x()])
	mc.V[mc.x()] = uint8(v)
	mc.V[0xf] = flag(v >= 0)
	return nil
}

// the source register of the shift instructions is Vx if the shift quirk is
// set, otherwise it is Vy. the result is always stored in Vx
func (mc *CPU) shiftSource() uint8 {
	if mc.Quirks.Shift {
		return mc.V[mc.x()]
	}
	return mc.V[mc.y()]
}

// 8xy6 SHR Vx {, Vy}
func (mc *CPU) shr() error {
	v := mc.shiftSource()
	mc.V[mc.x()] = v >> 1
	mc.V[0xf] = v & 0x01
	return nil
}

// 8xyE SHL Vx {, Vy}
func (mc *CPU) shl() error {
	v := mc.shiftSource()
	mc.V[mc.x()] = v << 1
	mc.V[0xf] = v >> 7
	return nil
}

// 9xy0 SNE Vx, Vy
func (mc *CPU) sneRegister() error {
	if mc.V[mc.x()] != mc.V[mc.y()] {
		mc.skip()
	}
	return nil
}

// Annn LD I, addr
func (mc *CPU) ldI() error {
	mc.I = mc.nnn()
	return nil
}

// Bnnn JP V0, addr. with the jump quirk the register is Vx, where x is the
// top nibble of the address
func (mc *CPU) jpOffset() error {
	r := 0
	if mc.Quirks.Jump {
		r = mc.x()
	}
	mc.PC = (mc.nnn() + uint16(mc.V[r])) & 0x0fff
	return nil
}

// Cxkk RND Vx, byte
func (mc *CPU) rnd() error {
	mc.V[mc.x()] = mc.random.Byte() & mc.kk()
	return nil
}

// Dxyn DRW Vx, Vy, nibble
func (mc *CPU) drw() error {
	height := mc.n()
	width := 8

	if height == 0 && mc.Arch >= arch.SCHIP10 {
		height = 16
		if mc.Arch >= arch.XOCHIP || !mc.loRes {
			width = 16
		}
	}
	big := width > 8

	// the start position always wraps. whether the rest of the sprite wraps
	// is decided by the framebuffer
	vidWidth, vidHeight := mc.fb.VidSize()
	xpos := int(mc.V[mc.x()]) % vidWidth
	ypos := int(mc.V[mc.y()]) % vidHeight

	read := func(addr uint16) uint16 {
		return uint16(mc.mem.Read(int(addr & mc.addrMask)))
	}

	var rowsCollided int
	i := mc.I

	for _, p := range mc.fb.AffectedPlanes() {
		for y := 0; y < height; y++ {
			var data, mask uint16
			if big {
				data = read(i+uint16(y*2))<<8 | read(i+uint16(y*2)+1)
				mask = 0x8000
			} else {
				data = read(i + uint16(y))
				mask = 0x80
			}

			// once a row has collided it stays collided
			var collided bool
			for x := 0; x < width; x++ {
				if data&(mask>>x) == 0 {
					continue
				}
				if c, _ := mc.fb.XORPixel(xpos+x, ypos+y, p); c {
					collided = true
				}
			}
			if collided {
				rowsCollided++
			}
		}

		// each plane is drawn with the data that follows the data for the
		// previous plane
		if big {
			i += uint16(height * 2)
		} else {
			i += uint16(height)
		}
	}

	if mc.Arch >= arch.SCHIP11 {
		mc.V[0xf] = uint8(rowsCollided)
	} else {
		mc.V[0xf] = flag(rowsCollided > 0)
	}

	if mc.Quirks.SpriteDelay && mc.loRes {
		mc.vblankWait = true
	}

	return nil
}

// Ex9E SKP Vx
func (mc *CPU) skp() error {
	if mc.inputs.IsKeyDown(mc.V[mc.x()]) {
		mc.skip()
	}
	return nil
}

// ExA1 SKNP Vx
func (mc *CPU) sknp() error {
	if !mc.inputs.IsKeyDown(mc.V[mc.x()]) {
		mc.skip()
	}
	return nil
}

// Fx07 LD Vx, DT
func (mc *CPU) ldVxDT() error {
	mc.V[mc.x()] = mc.DT
	return nil
}

// Fx0A LD Vx, K
//
// the instruction is repeated until a key is pressed so that timers and the
// display continue to be serviced. the first time the instruction is
// executed, any key that is already pressed is forgotten.
func (mc *CPU) ldVxK() error {
	var key uint8
	var ok bool

	if mc.awaitingKeypress {
		key, ok = mc.inputs.GetKeypress()
	} else {
		mc.inputs.SetupKeypress()
		mc.awaitingKeypress = true
	}

	if !ok {
		mc.DecPC()
		return nil
	}

	mc.V[mc.x()] = key
	mc.awaitingKeypress = false
	return nil
}

// deadline for a timer value set at the start of the current cycle
func (mc *CPU) timerTarget(v uint8) time.Duration {
	return mc.thisTime + time.Duration(v)*time.Second/timerFrequency
}

// Fx15 LD DT, Vx
func (mc *CPU) ldDTVx() error {
	mc.DT = mc.V[mc.x()]
	mc.dtTarget = mc.timerTarget(mc.DT)
	return nil
}

// Fx18 LD ST, Vx. a value of zero stops the buzzer immediately
func (mc *CPU) ldSTVx() error {
	v := mc.V[mc.x()]
	mc.audio.EnableBuzzer(v > 0)
	mc.ST = v
	mc.stTarget = mc.timerTarget(v)
	return nil
}

// Fx1E ADD I, Vx
func (mc *CPU) addI() error {
	v := int(mc.I) + int(mc.V[mc.x()])
	mc.I = uint16(v) & mc.addrMask
	if mc.Quirks.IndexOverflow {
		mc.V[0xf] = flag(v > int(mc.addrMask))
	}
	return nil
}

// Fx29 LD F, Vx
func (mc *CPU) ldF() error {
	mc.I = smallGlyph(mc.V[mc.x()]) & mc.addrMask
	return nil
}

// Fx30 LD HF, Vx
func (mc *CPU) ldHF() error {
	mc.I = bigGlyph(mc.V[mc.x()]) & mc.addrMask
	return nil
}

// Fx33 LD B, Vx. the three digits wrap around the address space
func (mc *CPU) ldB() error {
	v := mc.V[mc.x()]
	digits := [3]uint8{v / 100, (v / 10) % 10, v % 10}
	for o, d := range digits {
		if err := mc.mem.Write(int((mc.I+uint16(o))&mc.addrMask), d); err != nil {
			return err
		}
	}
	return nil
}

// the load quirk advances the index register after Fx55 and Fx65
func (mc *CPU) loadQuirk() {
	if mc.Quirks.Load {
		mc.I += uint16(mc.x())
		if !mc.Quirks.IndexIncrement {
			mc.I++
		}
		mc.I &= mc.addrMask
	}
}

// Fx55 LD [I], Vx
func (mc *CPU) store() error {
	for r := 0; r <= mc.x(); r++ {
		if err := mc.mem.Write(int((mc.I+uint16(r))&mc.addrMask), mc.V[r]); err != nil {
			return err
		}
	}
	mc.loadQuirk()
	return nil
}

// Fx65 LD Vx, [I]
func (mc *CPU) load() error {
	for r := 0; r <= mc.x(); r++ {
		mc.V[r] = mc.mem.Read(int((mc.I + uint16(r)) & mc.addrMask))
	}
	mc.loadQuirk()
	return nil
}

// 00FD EXIT. the instruction repeats forever
func (mc *CPU) exit() error {
	mc.DecPC()
	return nil
}

// 00FE LOW
func (mc *CPU) low() error {
	if !mc.loRes {
		mc.fb.ResizeVid(64, 32)
		mc.loRes = true
	}
	return nil
}

// 00FF HIGH
func (mc *CPU) high() error {
	if mc.loRes {
		mc.fb.ResizeVid(128, 64)
		mc.loRes = false
	}
	return nil
}

// only XO-CHIP can use RPL registers above V7
func (mc *CPU) rplRange() (int, error) {
	x := mc.x()
	if mc.Arch < arch.XOCHIP && x > 7 {
		return 0, mc.unsupported()
	}
	return x, nil
}

// Fx75 LD R, Vx
func (mc *CPU) storeRPL() error {
	x, err := mc.rplRange()
	if err != nil {
		return err
	}
	copy(mc.RPL[:x+1], mc.V[:x+1])
	return nil
}

// Fx85 LD Vx, R
func (mc *CPU) loadRPL() error {
	x, err := mc.rplRange()
	if err != nil {
		return err
	}
	copy(mc.V[:x+1], mc.RPL[:x+1])
	return nil
}

// the horizontal scroll distance is four hi-res pixels, which is two pixels
// in lo-res
func (mc *CPU) horizontalScroll() int {
	if mc.loRes {
		return 2
	}
	return 4
}

// 00FB SCR
func (mc *CPU) scr() error {
	return mc.fb.ScrollRight(mc.horizontalScroll())
}

// 00FC SCL
func (mc *CPU) scl() error {
	return mc.fb.ScrollLeft(mc.horizontalScroll())
}

// the vertical scroll distance is measured in hi-res pixels. an odd distance
// can not be represented in lo-res
func (mc *CPU) verticalScroll(direction string) (int, error) {
	n := mc.n()
	if mc.loRes {
		if n&0x01 != 0 {
			return 0, curated.Errorf(UnsupportedScroll,
				fmt.Sprintf("scrolling %s by a half-pixel (%d) in lo-res mode at address 0x%03x", direction, n, mc.DebugPC))
		}
		n /= 2
	}
	return n, nil
}

// 00Cn SCD n
func (mc *CPU) scd() error {
	n, err := mc.verticalScroll("down")
	if err != nil {
		return err
	}
	return mc.fb.ScrollDown(n)
}

// 00Dn SCU n
func (mc *CPU) scu() error {
	n, err := mc.verticalScroll("up")
	if err != nil {
		return err
	}
	return mc.fb.ScrollUp(n)
}

// 5xy2 XST Vx, Vy. the registers are stored in the order given, which may be
// descending
func (mc *CPU) xst() error {
	x, y := mc.x(), mc.y()
	step, count := 1, y-x+1
	if x > y {
		step, count = -1, x-y+1
	}
	for o := 0; o < count; o++ {
		addr := int((mc.I + uint16(o)) & mc.addrMask)
		if err := mc.mem.Write(addr, mc.V[x+o*step]); err != nil {
			return err
		}
	}
	return nil
}

// 5xy3 XLD Vx, Vy
func (mc *CPU) xld() error {
	x, y := mc.x(), mc.y()
	step, count := 1, y-x+1
	if x > y {
		step, count = -1, x-y+1
	}
	for o := 0; o < count; o++ {
		mc.V[x+o*step] = mc.mem.Read(int((mc.I + uint16(o)) & mc.addrMask))
	}
	return nil
}

// F000 XLDL I, addr. the address is the word following the opcode
func (mc *CPU) xldl() error {
	if mc.x() != 0 {
		return mc.unsupported()
	}
	mc.I = mc.Fetch()
	mc.IncPC()
	return nil
}

// Fn01 XPLA n. n is a bitmask of planes
func (mc *CPU) xpla() error {
	return mc.fb.SwitchPlanes(uint8(mc.x()))
}

// F002 XSTA. the audio buffer is the 16 bytes at I
func (mc *CPU) xsta() error {
	if mc.x() != 0 {
		return mc.unsupported()
	}
	if mc.audioNull {
		return nil
	}
	mc.audio.SetBuffer(mc.mem.ReadBlock(int(mc.I), 16))
	return nil
}

// PitchFrequency converts an XO-CHIP pitch value to a playback rate.
func PitchFrequency(pitch uint8) float64 {
	return 4000 * math.Pow(2, (float64(pitch)-64)/48)
}

// Fx3A XPR Vx
func (mc *CPU) xpr() error {
	if mc.audioNull {
		return nil
	}
	mc.audio.SetFrequency(PitchFrequency(mc.V[mc.x()]))
	return nil
}

