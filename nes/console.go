package nes

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects how LoadCartridge interprets a ROM image.
type Format int

const (
	// INES is the standard .nes container: header, optional trainer, PRG
	// banks, CHR banks.
	INES Format = iota

	// Raw is a flat 48 KiB image mapped verbatim over the whole cartridge
	// window, for hand-assembled programs.
	Raw
)

// Console wires the CPU, PPU, bus and cartridge together and owns all of
// them. It is single-threaded and cooperative: the host drives it by
// calling Tick in a loop, and may read the framebuffer between ticks.
//
// One master tick is one CPU cycle and three PPU dots; given the same ROM
// and input sequence, two runs produce identical framebuffer sequences.
type Console struct {
	cart cartridge
	ram  *ram
	cpu  *cpu
	apu  *apu
	ppu  *ppu

	controller1 *controller
	controller2 *controller

	bus *sysBus
}

// NewConsole builds an empty console. If debug is non-nil the CPU writes an
// execution trace line per instruction to it.
func NewConsole(debug io.Writer) *Console {
	ram := newRAM()
	ctrl1 := &controller{}
	ctrl2 := &controller{}

	ppu := newPPU()
	apu := newAPU()
	cpu := newCPU(debug)

	bus := &sysBus{
		ram:   ram,
		ppu:   ppu,
		apu:   apu,
		ctrl1: ctrl1,
		ctrl2: ctrl2,
	}

	return &Console{
		ram:         ram,
		cpu:         cpu,
		apu:         apu,
		ppu:         ppu,
		controller1: ctrl1,
		controller2: ctrl2,
		bus:         bus,
	}
}

// Empty reports whether a cartridge has been loaded yet.
func (c *Console) Empty() bool {
	return c.cart == nil
}

// LoadCartridge ingests a ROM image and resets the console into it. On
// error no partial state is left behind.
func (c *Console) LoadCartridge(r io.Reader, format Format) error {
	var (
		cart cartridge
		err  error
	)

	switch format {
	case INES:
		cart, err = loadINES(r)
	case Raw:
		image, readErr := io.ReadAll(r)
		if readErr != nil {
			err = fmt.Errorf("nes: unable to read raw image: %w", readErr)
			break
		}
		cart, err = newRawCartridge(image)
	default:
		err = fmt.Errorf("nes: unknown rom format %d", format)
	}

	if err != nil {
		return err
	}

	c.load(cart)
	return nil
}

// LoadPath loads a ROM file, picking the format from the extension: .nes
// images are iNES, anything else is treated as a raw image.
func (c *Console) LoadPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("nes: unable to open rom: %w", err)
	}
	defer f.Close()

	format := INES
	if !strings.HasSuffix(path, ".nes") {
		format = Raw
	}

	return c.LoadCartridge(f, format)
}

func (c *Console) load(cart cartridge) {
	c.cart = cart
	c.bus.cart = cart
	c.ppu.setCartridge(cart)

	c.Reset()
}

// Reset brings the CPU back to the reset vector and reinitialises the
// PPU's register state. The cartridge and VRAM keep their contents.
func (c *Console) Reset() {
	c.ppu.reset()
	c.cpu.reset(c.bus)
}

// Tick advances the console by one master tick: one CPU cycle, three PPU
// dots, then a sample of the PPU's NMI line into the CPU. A PPU write
// landing in this tick is visible to the PPU from this tick's dots onward,
// never retroactively.
//
// It returns true when the PPU just finished the visible frame; the
// framebuffer is consistent until the next Tick.
func (c *Console) Tick() bool {
	c.cpu.tick(c.bus)

	c.ppu.tick()
	c.ppu.tick()
	c.ppu.tick()

	c.sampleNMI()

	done := c.ppu.frameComplete
	c.ppu.frameComplete = false
	return done
}

// TickInstruction runs exactly one CPU instruction and the matching number
// of PPU dots, for single-step debugging.
func (c *Console) TickInstruction() {
	cost := int(c.cpu.nextCost)

	c.cpu.tickInstruction(c.bus)

	for i := 0; i < cost*3; i++ {
		c.ppu.tick()
	}
	c.ppu.frameComplete = false

	c.sampleNMI()
}

// StepFrame ticks until the current frame completes.
func (c *Console) StepFrame() {
	if c.Empty() {
		return
	}

	for !c.Tick() {
	}
}

// sampleNMI pushes the PPU's NMI output into the CPU. The line is active
// low; the CPU latches on the high-to-low transition.
func (c *Console) sampleNMI() {
	if c.ppu.nmiLine() {
		c.cpu.setNMILo()
	} else {
		c.cpu.setNMIHi()
	}
}

// SetIRQ drives the IRQ input level. IRQ is level-triggered: the CPU keeps
// taking it while asserted and interrupts are enabled.
func (c *Console) SetIRQ(asserted bool) {
	if asserted {
		c.cpu.setIRQLo()
	} else {
		c.cpu.setIRQHi()
	}
}

// SetNMI drives the NMI input level directly, for hosts that bypass the
// PPU. NMI is edge-triggered: only a fresh assertion latches an interrupt.
func (c *Console) SetNMI(asserted bool) {
	if asserted {
		c.cpu.setNMILo()
	} else {
		c.cpu.setNMIHi()
	}
}

// Press pushes a button down on the given controller port (0 or 1).
func (c *Console) Press(port int, button Button) {
	switch port {
	case 0:
		c.controller1.press(button)
	case 1:
		c.controller2.press(button)
	}
}

// Release lets a button up on the given controller port.
func (c *Console) Release(port int, button Button) {
	switch port {
	case 0:
		c.controller1.release(button)
	case 1:
		c.controller2.release(button)
	}
}

// SetButtons replaces the whole button state of a port with a packed byte,
// bit 0 = A through bit 7 = Right.
func (c *Console) SetButtons(port int, buttons byte) {
	switch port {
	case 0:
		c.controller1.set(buttons)
	case 1:
		c.controller2.set(buttons)
	}
}

// Framebuffer exposes the 256x240 buffer of 6-bit palette indices for the
// frame being rendered. The host translates indices to RGB; the buffer is
// only consistent on the tick that reported frame completion.
func (c *Console) Framebuffer() *[256 * 240]byte {
	return &c.ppu.framebuffer
}

// DrawPatternTables decodes both pattern tables through palette group
// palette into buf, a 256x128 buffer of palette indices.
func (c *Console) DrawPatternTables(buf []byte, palette byte) {
	c.ppu.drawPatternTables(buf, palette)
}

// DrawNametables decodes all four logical nametables into buf, a 512x480
// buffer of palette indices.
func (c *Console) DrawNametables(buf []byte) {
	c.ppu.drawNametables(buf)
}

// CPUState is a read-only snapshot of the CPU's registers and counters.
type CPUState struct {
	A, X, Y, S byte
	P          byte
	PC         uint16

	Cycles       uint64
	Instructions uint64
}

func (c *Console) CPUState() CPUState {
	return CPUState{
		A:            c.cpu.state.a,
		X:            c.cpu.state.x,
		Y:            c.cpu.state.y,
		S:            c.cpu.state.s,
		P:            byte(c.cpu.state.p),
		PC:           c.cpu.state.pc,
		Cycles:       c.cpu.cycles,
		Instructions: c.cpu.instructions,
	}
}

// PPUState is a read-only snapshot of the PPU's externally interesting
// state.
type PPUState struct {
	Scanline, Dot int
	Frame         uint64

	V, T  uint16
	FineX byte

	Ctrl, Mask, Status byte
}

func (c *Console) PPUState() PPUState {
	return PPUState{
		Scanline: c.ppu.scanline,
		Dot:      c.ppu.dot,
		Frame:    c.ppu.frame,
		V:        c.ppu.v,
		T:        c.ppu.t,
		FineX:    c.ppu.x,
		Ctrl:     byte(c.ppu.ctrl),
		Mask:     byte(c.ppu.mask),
		Status:   byte(c.ppu.status),
	}
}

// Read exposes a bus read, for debuggers. Beware of read side effects on
// the PPU register window.
func (c *Console) Read(addr uint16) byte {
	return c.bus.read(addr)
}

// Write exposes a bus write, for debuggers.
func (c *Console) Write(addr uint16, v byte) {
	c.bus.write(addr, v)
}
