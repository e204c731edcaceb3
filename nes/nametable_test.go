package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNametable_Horizontal(t *testing.T) {
	n := &nametableMemory{mirrorMode: horizontal}

	// the two vertical halves of the window share banks
	assert.Equal(t, n.physical(0x2000), n.physical(0x2400))
	assert.Equal(t, n.physical(0x2001), n.physical(0x2401))
	assert.Equal(t, n.physical(0x23FF), n.physical(0x27FF))

	assert.Equal(t, n.physical(0x2800), n.physical(0x2C00))
	assert.Equal(t, n.physical(0x2BFF), n.physical(0x2FFF))

	assert.NotEqual(t, n.physical(0x2000), n.physical(0x2800))
	assert.NotEqual(t, n.physical(0x2400), n.physical(0x2C00))
}

func TestNametable_Vertical(t *testing.T) {
	n := &nametableMemory{mirrorMode: vertical}

	assert.Equal(t, n.physical(0x2000), n.physical(0x2800))
	assert.Equal(t, n.physical(0x2001), n.physical(0x2801))
	assert.Equal(t, n.physical(0x23FF), n.physical(0x2BFF))

	assert.Equal(t, n.physical(0x2400), n.physical(0x2C00))
	assert.Equal(t, n.physical(0x27FF), n.physical(0x2FFF))

	assert.NotEqual(t, n.physical(0x2000), n.physical(0x2400))
	assert.NotEqual(t, n.physical(0x2800), n.physical(0x2C00))
}

func TestNametable_HorizontalReadWrite(t *testing.T) {
	n := &nametableMemory{mirrorMode: horizontal}

	n.write(0x2000, 0xAA)
	assert.EqualValues(t, 0xAA, n.read(0x2400))
	assert.EqualValues(t, 0, n.read(0x2800))
}

func TestNametable_VerticalReadWrite(t *testing.T) {
	n := &nametableMemory{mirrorMode: vertical}

	n.write(0x2000, 0xBB)
	assert.EqualValues(t, 0xBB, n.read(0x2800))
	assert.EqualValues(t, 0, n.read(0x2400))
}
