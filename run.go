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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/superchocchip/superchocchip/audio"
	"github.com/superchocchip/superchocchip/audio/otoplayer"
	"github.com/superchocchip/superchocchip/debugger"
	"github.com/superchocchip/superchocchip/disassembly"
	"github.com/superchocchip/superchocchip/gui"
	"github.com/superchocchip/superchocchip/gui/ebiten"
	"github.com/superchocchip/superchocchip/gui/null"
	"github.com/superchocchip/superchocchip/gui/sdl"
	"github.com/superchocchip/superchocchip/gui/sdlimgui"
	"github.com/superchocchip/superchocchip/gui/terminal"
	"github.com/superchocchip/superchocchip/hardware"
	"github.com/superchocchip/superchocchip/hardware/arch"
	"github.com/superchocchip/superchocchip/hardware/clocks"
	"github.com/superchocchip/superchocchip/hardware/cpu"
	"github.com/superchocchip/superchocchip/logger"
	"github.com/superchocchip/superchocchip/modalflag"
	"github.com/superchocchip/superchocchip/performance"
	"github.com/superchocchip/superchocchip/prefs"
	"github.com/superchocchip/superchocchip/screenshot"
	"github.com/superchocchip/superchocchip/statsview"
	"github.com/superchocchip/superchocchip/userinput"
	"github.com/superchocchip/superchocchip/wavwriter"

	"golang.org/x/term"
)

// list of audio outputs
const (
	audioSDL  = "sdl"
	audioOto  = "oto"
	audioBell = "bell"
	audioNone = "none"
)

// resolveAudio returns the audio output to use with the backend. An empty
// name means the default output for the backend.
func resolveAudio(backend string, name string, mute bool) (string, error) {
	if mute {
		return audioNone, nil
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		switch backend {
		case gui.BackendSDL, gui.BackendImGui:
			return audioSDL, nil
		case gui.BackendEbiten:
			return audioOto, nil
		case gui.BackendTerminal:
			return audioBell, nil
		}
		return audioNone, nil
	}

	switch name {
	case audioOto, audioNone:
		return name, nil
	case audioSDL:
		if backend == gui.BackendSDL || backend == gui.BackendImGui {
			return name, nil
		}
	case audioBell:
		if backend == gui.BackendTerminal {
			return name, nil
		}
	default:
		return "", fmt.Errorf("unknown audio output (%s): valid outputs are sdl, oto, bell, none", name)
	}

	return "", fmt.Errorf("%s audio is not available with the %s backend", name, backend)
}

// setLogEcho echoes new log entries to stdout.
func setLogEcho(echo bool) {
	switch {
	case !echo:
		logger.SetEcho(nil)
	case term.IsTerminal(int(os.Stdout.Fd())):
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	default:
		logger.SetEcho(os.Stdout)
	}
}

// interruptible ends the emulation when an interrupt signal is received.
type interruptible struct {
	cpu.Inputs
	sig <-chan os.Signal
}

// ProcessMessages implements the cpu.Inputs interface.
func (in interruptible) ProcessMessages() bool {
	select {
	case <-in.sig:
		return true
	default:
	}
	return in.Inputs.ProcessMessages()
}

// the resolved settings for the RUN mode.
type runConfig struct {
	romName string
	rom     []uint8

	machine hardware.Config

	backend string
	scale   int
	palette gui.Palette
	keymap  userinput.Keymap
	cursor  terminal.CursorMode
	audio   string

	debug    bool
	wav      string
	snapshot string
	memviz   string

	interrupt <-chan os.Signal
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	archName := md.AddString("arch", arch.Default.String(), fmt.Sprintf("architecture: %s", strings.Join(arch.List(), ", ")))
	clockSpeed := md.AddInt("clock", -1, "instructions per second. 0 is uncapped and -1 is the default for the architecture")
	backend := md.AddString("backend", "", fmt.Sprintf("gui backend: %s", strings.Join(gui.Backends, ", ")))
	scale := md.AddInt("scale", 0, "window width of graphical backends or the characters per pixel of the terminal")
	keymap := md.AddString("keymap", "", "sixteen comma separated key codes, in keypad order")
	palette := md.AddString("palette", "", "up to sixteen comma separated RRGGBB colours")
	cursor := md.AddInt("cursor", -1, "terminal cursor: 0 hidden, 1 visible, 2 block")
	mute := md.AddBool("mute", false, "disable audio")
	audioName := md.AddString("audio", "", "audio output: sdl, oto, bell, none")

	quirks := arch.Overrides{}
	load := md.AddOptionalBool("load", "quirk: Fx55 and Fx65 advance the index register")
	shift := md.AddOptionalBool("shift", "quirk: 8xy6 and 8xyE shift Vx rather than Vy")
	logic := md.AddOptionalBool("logic", "quirk: 8xy1, 8xy2 and 8xy3 reset VF")
	indexOverflow := md.AddOptionalBool("indexoverflow", "quirk: Fx1E sets VF on overflow")
	indexIncrement := md.AddOptionalBool("indexincrement", "quirk: Fx55 and Fx65 advance the index register by x rather than x+1")
	jump := md.AddOptionalBool("jump", "quirk: Bnnn uses Vx rather than V0")
	spriteDelay := md.AddOptionalBool("spritedelay", "quirk: Dxyn waits for the vertical blank")
	wrap := md.AddOptionalBool("wrap", "sprites wrap around the edges of the screen")

	seed := md.AddInt("seed", 0, "seed for the random number generator. 0 is a random seed")
	debug := md.AddBool("debug", false, "output trace of every instruction")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	wav := md.AddString("wav", "", "record audio to wav file")
	snapshot := md.AddString("snapshot", "", "save screen as PNG file on exit")
	memviz := md.AddString("memviz", "", "write memviz graph of machine state on fault")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	profile := md.AddString("profile", "none", "run emulation with profiling: comma separated CPU, MEM, TRACE or ALL")
	savePrefs := md.AddBool("saveprefs", false, "save keymap, scale, palette, backend and cursor as preferences")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	cfg := runConfig{
		debug:    *debug,
		wav:      *wav,
		snapshot: *snapshot,
		memviz:   *memviz,
	}

	cfg.machine.Arch, err = arch.Parse(*archName)
	if err != nil {
		return err
	}

	cfg.romName, err = romArg(md)
	if err != nil {
		return err
	}

	cfg.rom, err = os.ReadFile(cfg.romName)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *clockSpeed >= 0 {
		cfg.machine.ClockSpeed = clockSpeed
	}

	quirks.Load = load.Value()
	quirks.Shift = shift.Value()
	quirks.Logic = logic.Value()
	quirks.IndexOverflow = indexOverflow.Value()
	quirks.IndexIncrement = indexIncrement.Value()
	quirks.Jump = jump.Value()
	quirks.SpriteDelay = spriteDelay.Value()
	cfg.machine.Quirks = quirks
	cfg.machine.Wrap = wrap.Value()
	cfg.machine.Seed = int64(*seed)

	pr, err := newPreferences("")
	if err != nil {
		return err
	}

	// command line flags override preferences
	var perr error
	set := func(p interface{ Set(prefs.Value) error }, v prefs.Value) {
		if perr == nil {
			perr = p.Set(v)
		}
	}
	md.Visit(func(flag string) {
		switch flag {
		case "keymap":
			set(&pr.keymap, *keymap)
		case "scale":
			set(&pr.scale, *scale)
		case "palette":
			set(&pr.palette, *palette)
		case "backend":
			set(&pr.backend, *backend)
		case "cursor":
			set(&pr.cursor, *cursor)
		}
	})
	if perr != nil {
		return perr
	}

	if *savePrefs {
		err = pr.save()
		if err != nil {
			return err
		}
	}

	cfg.backend, err = gui.ValidateBackend(pr.backend.String())
	if err != nil {
		return err
	}

	cfg.keymap, err = userinput.ParseKeymap(pr.keymap.String())
	if err != nil {
		return err
	}

	cfg.palette, err = gui.ParsePalette(pr.palette.String(), gui.DefaultPalette(cfg.machine.Arch.Colour()))
	if err != nil {
		return err
	}

	cfg.scale = pr.scale.Get().(int)
	if cfg.scale == 0 {
		cfg.scale = gui.DefaultScale(cfg.backend)
	}

	cfg.cursor, err = parseCursor(pr.cursor.Get().(int))
	if err != nil {
		return err
	}

	cfg.audio, err = resolveAudio(cfg.backend, *audioName, *mute)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout, "")
	}

	// the emulation handles interrupt signals so that the host can be
	// restored before the program ends
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	cfg.interrupt = intChan

	return sync.runOnMainThread(func() error {
		return performance.RunProfiler(prf, "superchocchip", func() error {
			return emulate(cfg)
		})
	})
}

// screenshotWidth returns the width of screenshots for the backend.
func (cfg runConfig) screenshotWidth() int {
	switch cfg.backend {
	case gui.BackendSDL, gui.BackendImGui, gui.BackendEbiten:
		return cfg.scale
	}
	return gui.DefaultScale(gui.BackendSDL)
}

func createGUI(cfg runConfig, takeScreenshot func(), registers func() string) (gui.GUI, error) {
	switch cfg.backend {
	case gui.BackendSDL:
		return sdl.NewGUI(sdl.Config{
			Scale:      cfg.scale,
			Palette:    cfg.palette,
			Keymap:     cfg.keymap,
			Audio:      cfg.audio == audioSDL,
			Screenshot: takeScreenshot,
		})

	case gui.BackendImGui:
		return sdlimgui.NewGUI(sdlimgui.Config{
			Scale:      cfg.scale,
			Palette:    cfg.palette,
			Keymap:     cfg.keymap,
			Audio:      cfg.audio == audioSDL,
			Screenshot: takeScreenshot,
			Registers:  registers,
		})

	case gui.BackendEbiten:
		return ebiten.NewGUI(ebiten.Config{
			Scale:      cfg.scale,
			Palette:    cfg.palette,
			Keymap:     cfg.keymap,
			Audio:      cfg.audio == audioOto,
			Screenshot: takeScreenshot,
		})

	case gui.BackendTerminal:
		return terminal.NewGUI(terminal.Config{
			Scale:     cfg.scale,
			Palette:   cfg.palette,
			UseColour: cfg.machine.Arch.Colour(),
			Cursor:    cfg.cursor,
			Keymap:    cfg.keymap,
			Clock:     cfg.machine.Clock,
		})
	}

	return null.NewGUI(), nil
}

// emulate creates the GUI and the machine and runs the emulation until the
// user quits or there is a fault. must be called from the main thread.
func emulate(cfg runConfig) (rerr error) {
	cfg.machine.Clock = clocks.NewMonotonic()

	var m *hardware.Machine

	takeScreenshot := func() {
		if m == nil {
			return
		}
		err := screenshot.Save(screenshot.UniqueFilename(cfg.romName), m.FB.Snapshot(), cfg.palette, cfg.screenshotWidth())
		if err != nil {
			logger.Log(logger.Allow, "screenshot", err)
		}
	}

	registers := func() string {
		if m == nil {
			return ""
		}
		st := m.CPU.State()
		var next uint16
		if addr := int(st.DebugPC) + 2; addr+1 < m.Mem.Size() {
			next = uint16(m.Mem.Read(addr))<<8 | uint16(m.Mem.Read(addr+1))
		}
		return debugger.Describe(st, disassembly.Mnemonic(st.Opcode, next, st.Arch, st.Quirks), true)
	}

	g, err := createGUI(cfg, takeScreenshot, registers)
	if err != nil {
		return err
	}
	defer func() {
		rerr = errors.Join(rerr, g.Destroy())
	}()

	logger.Logf(logger.Allow, "superchocchip", "%s backend with %s audio", cfg.backend, cfg.audio)

	var snd cpu.Audio
	switch {
	case cfg.audio == audioNone:
		snd = audio.Null{}
	case cfg.audio == audioOto && cfg.backend != gui.BackendEbiten:
		player, err := otoplayer.NewPlayer()
		if err != nil {
			return err
		}
		defer func() {
			rerr = errors.Join(rerr, player.Close())
		}()
		snd = player
	default:
		snd = g.Audio()
	}

	if cfg.wav != "" {
		ww, err := wavwriter.New(cfg.wav, snd, cfg.machine.Clock)
		if err != nil {
			return err
		}
		defer func() {
			rerr = errors.Join(rerr, ww.Close())
		}()
		snd = ww
	}

	dbg := debugger.NewDebugger(os.Stdout)
	dbg.SetLive(cfg.debug)

	inputs := interruptible{Inputs: g, sig: cfg.interrupt}

	m, err = hardware.NewMachine(cfg.machine, g, inputs, snd, dbg)
	if err != nil {
		return err
	}

	err = m.LoadROM(cfg.rom)
	if err != nil {
		return err
	}

	emulation := func() error {
		err := m.Run()
		if err != nil {
			logger.Log(logger.Allow, "superchocchip", err)
			if cfg.memviz != "" {
				err = errors.Join(err, debugger.DumpMemvizFile(cfg.memviz, m.CPU))
			}
		}
		if cfg.snapshot != "" {
			err = errors.Join(err, screenshot.Save(cfg.snapshot, m.FB.Snapshot(), cfg.palette, cfg.screenshotWidth()))
		}
		return err
	}

	if mt, ok := g.(gui.MainThread); ok {
		return mt.Run(emulation)
	}
	return emulation()
}
