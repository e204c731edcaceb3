package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every documented operation of the 6502 must appear in the decode table.
func TestOpcodes_RosterComplete(t *testing.T) {
	want := []operation{
		opADC, opAND, opASL, opBCC, opBCS, opBEQ, opBIT, opBMI, opBNE,
		opBPL, opBRK, opBVC, opBVS, opCLC, opCLD, opCLI, opCLV, opCMP,
		opCPX, opCPY, opDEC, opDEX, opDEY, opEOR, opINC, opINX, opINY,
		opJMP, opJSR, opLDA, opLDX, opLDY, opLSR, opNOP, opORA, opPHA,
		opPHP, opPLA, opPLP, opROL, opROR, opRTI, opRTS, opSBC, opSEC,
		opSED, opSEI, opSTA, opSTX, opSTY, opTAX, opTAY, opTSX, opTXA,
		opTXS, opTYA,
	}

	present := make(map[operation]bool)
	for _, oc := range opcodes {
		present[oc.op] = true
	}

	for _, op := range want {
		assert.True(t, present[op], "missing %s", op)
	}
}

// Table rows must agree with their addressing mode about instruction size.
func TestOpcodes_SizesMatchModes(t *testing.T) {
	for code, oc := range opcodes {
		if oc.op == opUnknown {
			continue
		}
		if oc.op == opBRK {
			// BRK carries a padding byte its implied mode does not
			assert.EqualValues(t, 2, oc.size)
			continue
		}

		assert.Equal(t, 1+oc.mode.operandSize(), oc.size,
			"opcode %02X (%s) size disagrees with its mode", code, oc.op)
	}
}

// Only the penalty-bearing modes may carry the page-cross penalty flag.
func TestOpcodes_PenaltyOnlyOnIndexedReads(t *testing.T) {
	for code, oc := range opcodes {
		if !oc.penalty {
			continue
		}

		switch oc.mode {
		case absoluteX, absoluteY, indirectIndexed:
		default:
			t.Errorf("opcode %02X (%s) has a penalty flag on mode %d", code, oc.op, oc.mode)
		}
	}
}

// Branches never carry the mode penalty; their timing is the taken/page
// pair instead.
func TestOpcodes_BranchesHaveNoModePenalty(t *testing.T) {
	for code, oc := range opcodes {
		if oc.mode != relative {
			continue
		}

		assert.False(t, oc.penalty, "opcode %02X", code)
		assert.EqualValues(t, 2, oc.cycles, "branches cost 2 before penalties")
	}
}

func TestDecodeInstruction(t *testing.T) {
	bus := newTestBus(0xA9, 0x42, 0x8D, 0x34, 0x12)

	inst := decodeInstruction(bus, 0)
	assert.Equal(t, opLDA, inst.opcode.op)
	assert.Equal(t, immediate, inst.opcode.mode)
	assert.EqualValues(t, 0x42, inst.operand)

	inst = decodeInstruction(bus, 2)
	assert.Equal(t, opSTA, inst.opcode.op)
	assert.Equal(t, absolute, inst.opcode.mode)
	assert.EqualValues(t, 0x1234, inst.operand, "operands read little-endian")
}

func TestDecodeInstruction_Unknown(t *testing.T) {
	bus := newTestBus(0xFF)

	inst := decodeInstruction(bus, 0)
	require.Equal(t, opUnknown, inst.opcode.op)
	assert.EqualValues(t, 1, inst.opcode.size)
	assert.EqualValues(t, 2, inst.opcode.cycles)
}

func TestSyntheticInterruptInstructions(t *testing.T) {
	assert.EqualValues(t, 0, irqInstruction.opcode.size)
	assert.EqualValues(t, 7, irqInstruction.opcode.cycles)
	assert.EqualValues(t, 0, nmiInstruction.opcode.size)
	assert.EqualValues(t, 7, nmiInstruction.opcode.cycles)
}
