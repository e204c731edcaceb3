package main

import (
	"fmt"

	"cnes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

// nametableWindow shows all four logical nametables in a 2x2 grid, useful
// for watching scrolling and mirroring. Toggled with F2.
type nametableWindow struct {
	visible  bool
	window   *sdl.Window
	renderer *sdl.Renderer
	tex      *sdl.Texture
	rect     *sdl.Rect
	indices  []byte
}

func newNametableWindow(scale int32) (*nametableWindow, uint32, error) {
	var baseWidth, baseHeight int32 = 512, 480

	window, renderer, err := sdl.CreateWindowAndRenderer(baseWidth*scale/2, baseHeight*scale/2, sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to create nametable window: %s", err)
	}

	id, err := window.GetID()
	if err != nil {
		return nil, 0, fmt.Errorf("unable to get nametable window id: %s", err)
	}

	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, baseWidth, baseHeight)
	if err != nil {
		return nil, id, fmt.Errorf("unable to create nametable texture: %s", err)
	}

	window.SetTitle("nametables")

	return &nametableWindow{
		window:   window,
		renderer: renderer,
		tex:      tex,
		rect:     &sdl.Rect{X: 0, Y: 0, W: baseWidth * scale / 2, H: baseHeight * scale / 2},
		indices:  make([]byte, baseWidth*baseHeight),
	}, id, nil
}

func (w *nametableWindow) Handle(event sdl.Event, console *nes.Console) error {
	if evt, ok := event.(*sdl.WindowEvent); ok && evt.Event == sdl.WINDOWEVENT_CLOSE {
		w.visible = false
		w.window.Hide()
	}
	return nil
}

func (w *nametableWindow) Toggle() {
	w.visible = !w.visible
	if w.visible {
		w.window.Show()
	} else {
		w.window.Hide()
	}
}

func (w *nametableWindow) Render(console *nes.Console) error {
	if !w.visible {
		return nil
	}

	console.DrawNametables(w.indices)

	pixels, _, err := w.tex.Lock(nil)
	if err != nil {
		return fmt.Errorf("unable to lock nametable texture: %s", err)
	}
	blit(pixels, w.indices)
	w.tex.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("unable to clear nametable renderer: %s", err)
	}

	if err := w.renderer.Copy(w.tex, nil, w.rect); err != nil {
		return fmt.Errorf("unable to copy nametables: %s", err)
	}

	w.renderer.Present()
	return nil
}

func (w *nametableWindow) Free() error {
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
