// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlimgui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
)

type stateReq string

const (
	// main thread should end as soon as possible. takes an optional int
	// argument, which is used as the exit status.
	reqQuit stateReq = "QUIT"

	// stop the main thread handling interrupt signals. used by modes that
	// handle the signal themselves. takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// There is no Create() function. Instead, the mainSync creator channel
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() is called repeatedly by the main thread and must return
	// promptly. It should service all gui events that are not safe to handle
	// in other goroutines.
	Service()
}

// communication between the main() function and the launch() function. many
// gui solutions (notably SDL) require window creation and event handling to
// happen on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// exit status values.
const (
	exitParseError = 10
	exitModeError  = 20
)

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	// the gui is serviced whenever there is nothing else to do
	var current GuiCreator

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if current != nil {
				current.Destroy(os.Stderr)
				current = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				current = g
				sync.creation <- g
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if current != nil {
				current.Service()
			}
		}
	}

	if current != nil {
		current.Destroy(os.Stderr)
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "TERM", "PERFORMANCE", "DIGEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitParseError}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "DIGEST":
		err = videoDigest(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: exitModeError}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// createGUI sends the creator function to the main thread and waits for the
// result.
func createGUI(sync *mainSync, creator func() (GuiCreator, error)) (gui.GUI, error) {
	sync.creator <- creator

	select {
	case g := <-sync.creation:
		scr, ok := g.(gui.GUI)
		if !ok {
			return nil, curated.Errorf("gui: %T does not implement gui.GUI", g)
		}
		return scr, nil
	case err := <-sync.creationError:
		return nil, err
	}
}

// setLogEcho sets whether the log is echoed to the terminal.
func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}
}

// pushPrefs adds the -prefs argument to the preferences command line stack.
// the returned function must be called when the mode has finished.
func pushPrefs(output io.Writer, s string) func() {
	prefs.PushCommandLineStack(s)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "! unused preferences: %s\n", unused)
		}
	}
}

// machineForPlay creates a machine with the ROM attached.
func machineForPlay(md *modalflag.Modes, fpsCap bool) (*hardware.Machine, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("CHIP-8 ROM required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := hardware.NewMachine(instance.Main, nil)
	if err != nil {
		return nil, err
	}

	err = m.AttachROM(romloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return nil, err
	}

	m.SetFPSCap(fpsCap)

	return m, nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	useImgui := md.AddBool("imgui", false, "use the imgui interface")
	scaling := md.AddFloat64("scale", 0.0, "size of each CHIP-8 pixel in screen pixels")
	keymap := md.AddString("keymap", userinput.DefaultKeymap, "keyboard layout: numpad, qwerty")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the hardware.fps preference")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences. eg. \"hardware.cyclesPerFrame::10\"")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)
	defer pushPrefs(md.Output, *prefsOverride)()

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	km, err := userinput.GetKeymap(*keymap)
	if err != nil {
		return err
	}

	m, err := machineForPlay(md, *fpsCap)
	if err != nil {
		return err
	}
	defer m.End()

	scr, err := createGUI(sync, func() (GuiCreator, error) {
		if *useImgui {
			return sdlimgui.NewSdlImgui(float32(*scaling))
		}
		return sdlplay.NewSdlPlay(float32(*scaling))
	})
	if err != nil {
		return err
	}

	// playmode handles interrupt signals
	sync.state <- stateRequest{req: reqNoIntSig}

	return playmode.Play(m, scr, km)
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	keymap := md.AddString("keymap", userinput.DefaultKeymap, "keyboard layout: numpad, qwerty")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the hardware.fps preference")
	prefsOverride := md.AddString("prefs", "", "override preferences. eg. \"hardware.cyclesPerFrame::10\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// echoing the log would corrupt the display
	setLogEcho(false)
	defer pushPrefs(md.Output, *prefsOverride)()

	km, err := userinput.GetKeymap(*keymap)
	if err != nil {
		return err
	}

	m, err := machineForPlay(md, *fpsCap)
	if err != nil {
		return err
	}
	defer m.End()

	scr, err := createGUI(sync, func() (GuiCreator, error) {
		return termplay.NewTermPlay(os.Stdin, os.Stdout)
	})
	if err != nil {
		return err
	}

	// ctrl-c is received as a key press in raw mode but playmode will handle
	// the signal if it arrives some other way
	sync.state <- stateRequest{req: reqNoIntSig}

	return playmode.Play(m, scr, km)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", false, "cap fps to the hardware.fps preference")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run with profiler: cpu, mem, trace, all (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences. eg. \"hardware.cyclesPerFrame::10\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)
	defer pushPrefs(md.Output, *prefsOverride)()

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 ROM required for %s mode", md)
	case 1:
		return performance.Check(md.Output, prf, romloader.NewLoader(md.GetArg(0)), nil, !*fpsCap, *duration)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

// dumpProgramMemory writes a hex listing of memory from the program origin to
// the end of memory.
func dumpProgramMemory(output io.Writer, m *hardware.Machine) error {
	s, err := m.Mem.Dump(memory.ProgramOrigin, memory.Size)
	if err != nil {
		return err
	}
	_, err = io.WriteString(output, s)
	return err
}

func videoDigest(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 600, "number of frames to run")
	expected := md.AddString("hash", "", "compare digest with this value")
	memvizFile := md.AddString("memviz", "", "write a graphviz diagram of the CPU structure to the named file")
	dump := md.AddBool("dump", false, "print a hex listing of program memory after the run")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := hardware.NewMachine(instance.Digest, nil)
	if err != nil {
		return err
	}
	defer m.End()

	// digests must not depend on the user's preferences or on the time the
	// program was run
	m.Instance.Normalise()

	err = m.AttachROM(romloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return err
	}

	dig := digest.NewVideo()
	m.AddPixelRenderer(dig)

	err = m.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, dig.Hash())

	if *dump {
		err = dumpProgramMemory(md.Output, m)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, m.CPU)
		if err := f.Close(); err != nil {
			return err
		}
	}

	if *expected != "" && !strings.EqualFold(*expected, dig.Hash()) {
		return curated.Errorf("digest: does not match expected value (%s)", *expected)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintln(md.Output, rev)
		return nil
	}

	fmt.Fprintln(md.Output, version.String())

	return nil
}
