package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_RAMMirroring(t *testing.T) {
	bus := newTestBus()

	bus.write(0x0000, 0x42)
	assert.EqualValues(t, 0x42, bus.read(0x0800))
	assert.EqualValues(t, 0x42, bus.read(0x1000))
	assert.EqualValues(t, 0x42, bus.read(0x1800))

	bus.write(0x1FFF, 0x99)
	assert.EqualValues(t, 0x99, bus.read(0x07FF))
}

func TestBus_ReadWord(t *testing.T) {
	bus := newTestBus()

	bus.write(0x0010, 0x34)
	bus.write(0x0011, 0x12)
	assert.EqualValues(t, 0x1234, bus.readWord(0x0010))
}

func TestBus_PPURegisterMirroring(t *testing.T) {
	bus := newTestBus()

	// $2006/$2007 mirrored at $3FFE/$3FFF: write through the top mirror,
	// read back through the canonical window
	bus.write(0x3FFE, 0x21)
	bus.write(0x3FFE, 0x08)
	bus.write(0x3FFF, 0x55)

	bus.write(0x2006, 0x21)
	bus.write(0x2006, 0x08)
	bus.read(0x2007) // prime the read buffer
	assert.EqualValues(t, 0x55, bus.read(0x2007))
}

func TestBus_ControllerRead(t *testing.T) {
	bus := newTestBus()

	bus.ctrl1.press(A)
	bus.ctrl1.press(Start)

	// strobe, then clock the shift register out
	bus.write(ctrl1Addr, 1)
	bus.write(ctrl1Addr, 0)

	got := make([]byte, 8)
	for i := range got {
		got[i] = bus.read(ctrl1Addr)
	}
	assert.Equal(t, []byte{1, 0, 0, 1, 0, 0, 0, 0}, got)

	// past the eighth read the official controller reports 1
	assert.EqualValues(t, 1, bus.read(ctrl1Addr))
}

func TestBus_ControllerStrobeHolds(t *testing.T) {
	bus := newTestBus()
	bus.ctrl1.press(A)

	// with the strobe held high every read reports button A
	bus.write(ctrl1Addr, 1)
	assert.EqualValues(t, 1, bus.read(ctrl1Addr))
	assert.EqualValues(t, 1, bus.read(ctrl1Addr))
}

func TestBus_OAMDMA(t *testing.T) {
	bus := newTestBus()

	for i := 0; i < 256; i++ {
		bus.write(uint16(0x0200+i), byte(i))
	}

	bus.write(oamDMAAddr, 0x02)

	require.EqualValues(t, 0x00, bus.ppu.oam[0])
	assert.EqualValues(t, 0x7F, bus.ppu.oam[0x7F])
	assert.EqualValues(t, 0xFF, bus.ppu.oam[0xFF])
}

func TestBus_DisabledRegion(t *testing.T) {
	bus := newTestBus()

	// $4018-$401F reads as open bus zero and swallows writes
	assert.EqualValues(t, 0, bus.read(0x4018))
	bus.write(0x401F, 0xFF)
	assert.EqualValues(t, 0, bus.read(0x401F))
}

func TestBus_APUStubAcceptsWrites(t *testing.T) {
	bus := newTestBus()

	bus.write(0x4000, 0x30)
	bus.write(0x4015, 0x0F)
	bus.write(0x4017, 0x40)

	assert.EqualValues(t, 0x30, bus.apu.registers[0x00])
	assert.EqualValues(t, 0x0F, bus.apu.registers[0x15])
	assert.EqualValues(t, 0x40, bus.apu.registers[0x17])

	// reads are open bus
	assert.EqualValues(t, 0, bus.read(0x4015))
}
