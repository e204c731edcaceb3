package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"cnes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

const zoom = 4

func init() {
	runtime.LockOSThread()
}

func run(console *nes.Console) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	gameWin, gameID, err := newGameWindow(zoom, "cnes")
	if err != nil {
		return err
	}
	defer gameWin.Free()

	patternWin, patternID, err := newPatternWindow(zoom)
	if err != nil {
		return err
	}
	defer patternWin.Free()

	nametableWin, nametableID, err := newNametableWindow(zoom)
	if err != nil {
		return err
	}
	defer nametableWin.Free()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	paused := false

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch evt := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				switch {
				case evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_SPACE:
					paused = !paused
				case evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_F1:
					patternWin.Toggle()
				case evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_F2:
					nametableWin.Toggle()
				case evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_r:
					console.Reset()
				default:
					gameWin.Handle(evt, console)
					patternWin.Handle(evt, console)
				}

			case *sdl.WindowEvent:
				switch evt.WindowID {
				case gameID:
					gameWin.Handle(evt, console)
				case patternID:
					patternWin.Handle(evt, console)
				case nametableID:
					nametableWin.Handle(evt, console)
				}
			}
		}

		if !gameWin.Visible() {
			return nil
		}

		<-ticker.C

		if !paused {
			console.StepFrame()
		}

		if err := gameWin.Render(console); err != nil {
			return err
		}
		if err := patternWin.Render(console); err != nil {
			return err
		}
		if err := nametableWin.Render(console); err != nil {
			return err
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s rom.nes [--trace]\n", os.Args[0])
		os.Exit(2)
	}

	var out io.Writer
	if len(os.Args) > 2 && os.Args[2] == "--trace" {
		out = os.Stdout
	}

	console := nes.NewConsole(out)
	if err := console.LoadPath(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(console); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
