package main

import (
	"fmt"

	"cnes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

// patternWindow shows both pattern tables side by side, decoded through the
// current palette RAM. Toggled with F1.
type patternWindow struct {
	visible  bool
	palette  byte
	window   *sdl.Window
	renderer *sdl.Renderer
	tex      *sdl.Texture
	rect     *sdl.Rect
	indices  []byte
}

func newPatternWindow(scale int32) (*patternWindow, uint32, error) {
	var baseWidth, baseHeight int32 = 256, 128

	window, renderer, err := sdl.CreateWindowAndRenderer(baseWidth*scale, baseHeight*scale, sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to create pattern window: %s", err)
	}

	id, err := window.GetID()
	if err != nil {
		return nil, 0, fmt.Errorf("unable to get pattern window id: %s", err)
	}

	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, baseWidth, baseHeight)
	if err != nil {
		return nil, id, fmt.Errorf("unable to create pattern texture: %s", err)
	}

	window.SetTitle("pattern tables")

	return &patternWindow{
		window:   window,
		renderer: renderer,
		tex:      tex,
		rect:     &sdl.Rect{X: 0, Y: 0, W: baseWidth * scale, H: baseHeight * scale},
		indices:  make([]byte, baseWidth*baseHeight),
	}, id, nil
}

func (w *patternWindow) Handle(event sdl.Event, console *nes.Console) error {
	switch evt := event.(type) {
	case *sdl.KeyboardEvent:
		// p cycles the palette group used for decoding
		if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_p {
			w.palette = (w.palette + 1) % 8
		}
	case *sdl.WindowEvent:
		if evt.Event == sdl.WINDOWEVENT_CLOSE {
			w.visible = false
			w.window.Hide()
		}
	}
	return nil
}

func (w *patternWindow) Toggle() {
	w.visible = !w.visible
	if w.visible {
		w.window.Show()
	} else {
		w.window.Hide()
	}
}

func (w *patternWindow) Render(console *nes.Console) error {
	if !w.visible {
		return nil
	}

	console.DrawPatternTables(w.indices, w.palette)

	pixels, _, err := w.tex.Lock(nil)
	if err != nil {
		return fmt.Errorf("unable to lock pattern texture: %s", err)
	}
	blit(pixels, w.indices)
	w.tex.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("unable to clear pattern renderer: %s", err)
	}

	if err := w.renderer.Copy(w.tex, nil, w.rect); err != nil {
		return fmt.Errorf("unable to copy pattern tables: %s", err)
	}

	w.renderer.Present()
	return nil
}

func (w *patternWindow) Free() error {
	if w.tex != nil {
		w.tex.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		return w.window.Destroy()
	}
	return nil
}
