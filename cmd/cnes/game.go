package main

import (
	"fmt"

	"cnes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

type gameWindow struct {
	baseWidth  int32
	baseHeight int32
	visible    bool
	window     *sdl.Window
	renderer   *sdl.Renderer
	tex        *sdl.Texture
	rect       *sdl.Rect
}

func newGameWindow(scale int32, title string) (*gameWindow, uint32, error) {
	var baseWidth, baseHeight int32 = 256, 240

	window, renderer, err := sdl.CreateWindowAndRenderer(baseWidth*scale, baseHeight*scale, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to create game window: %s", err)
	}

	id, err := window.GetID()
	if err != nil {
		return nil, 0, fmt.Errorf("unable to get game window id: %s", err)
	}

	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, baseWidth, baseHeight)
	if err != nil {
		return nil, id, fmt.Errorf("unable to create game texture: %s", err)
	}

	window.SetTitle(title)

	return &gameWindow{
		baseWidth:  baseWidth,
		baseHeight: baseHeight,
		visible:    true,
		window:     window,
		renderer:   renderer,
		tex:        tex,
		rect:       &sdl.Rect{X: 0, Y: 0, W: baseWidth * scale, H: baseHeight * scale},
	}, id, nil
}

var keyBindings = map[sdl.Keycode]nes.Button{
	sdl.K_z:      nes.A,
	sdl.K_x:      nes.B,
	sdl.K_RSHIFT: nes.Select,
	sdl.K_RETURN: nes.Start,
	sdl.K_UP:     nes.Up,
	sdl.K_DOWN:   nes.Down,
	sdl.K_LEFT:   nes.Left,
	sdl.K_RIGHT:  nes.Right,
}

func (w *gameWindow) Handle(event sdl.Event, console *nes.Console) error {
	switch evt := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := keyBindings[evt.Keysym.Sym]
		if !ok {
			return nil
		}

		switch evt.Type {
		case sdl.KEYDOWN:
			console.Press(0, button)
		case sdl.KEYUP:
			console.Release(0, button)
		}

	case *sdl.WindowEvent:
		if evt.Event == sdl.WINDOWEVENT_CLOSE {
			w.visible = false
		}
	}

	return nil
}

func (w *gameWindow) Render(console *nes.Console) error {
	pixels, _, err := w.tex.Lock(nil)
	if err != nil {
		return fmt.Errorf("unable to lock game texture: %s", err)
	}
	blit(pixels, console.Framebuffer()[:])
	w.tex.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("unable to clear game renderer: %s", err)
	}

	if err := w.renderer.Copy(w.tex, nil, w.rect); err != nil {
		return fmt.Errorf("unable to copy game: %s", err)
	}

	w.renderer.Present()
	return nil
}

func (w *gameWindow) Visible() bool {
	return w.visible
}

func (w *gameWindow) Free() error {
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
