package nes

// addressingMode names one of the ways an instruction locates its operand.
type addressingMode byte

const (
	// implied addressing occurs when there is no operand. The addressing
	// mode is implied by the instruction.
	implied addressingMode = iota

	// accumulator addressing is a special type of implied addressing that
	// only addresses the accumulator.
	accumulator

	// immediate addressing is used when the operand's 1-byte value is given
	// in the instruction itself.
	immediate

	// relative addressing is used by the branch instructions. A 1-byte
	// signed operand is added to the address of the following instruction.
	relative

	// zeroPage addressing requires a 1-byte address and can only access the
	// zero page ($0000-$00FF).
	zeroPage

	// zeroPageX works like zeroPage but adds the X register, wrapping within
	// page zero.
	zeroPageX

	// zeroPageY works like zeroPage but adds the Y register, wrapping within
	// page zero.
	zeroPageY

	// absolute addressing carries a full 2-byte address.
	absolute

	// absoluteX works like absolute but adds the X register. Crossing a page
	// costs the "oops" cycle on read instructions.
	absoluteX

	// absoluteY works like absolute but adds the Y register.
	absoluteY

	// indirect reads the target address from a 2-byte pointer. Only JMP uses
	// it. If the pointer lies on the last byte of a page, the high byte of
	// the target is fetched from the start of that same page rather than the
	// next one; the 6502 never carries into the pointer's high byte.
	indirect

	// indexedIndirect ($nn,X) adds X to a zero-page operand, wrapping within
	// page zero, and reads the target address from there.
	indexedIndirect

	// indirectIndexed ($nn),Y reads a base address from the zero-page
	// operand and adds Y to it afterwards.
	indirectIndexed
)

// eval resolves a mode against the current register file into an effective
// address. For immediate the "address" is the operand byte itself; callers
// use it as a value. The second result reports whether indexing crossed a
// page boundary, which is only meaningful for the penalty-bearing modes
// (absoluteX, absoluteY, indirectIndexed).
//
// Resolving the penalty-bearing modes never fires memory-mapped side
// effects: the only reads they perform are zero-page pointer reads, which
// always land in internal RAM. The pointer read of indirect (JMP only) goes
// through the bus at whatever address the operand names.
func (m addressingMode) eval(st *state, bus *sysBus, operand uint16) (address uint16, pageCross bool) {
	switch m {
	case implied, accumulator:
		return 0, false

	case immediate:
		return operand & 0x00FF, false

	case relative:
		return st.nextPC + uint16(int8(operand)), false

	case zeroPage:
		return operand & 0x00FF, false

	case zeroPageX:
		return uint16(byte(operand) + st.x), false

	case zeroPageY:
		return uint16(byte(operand) + st.y), false

	case absolute:
		return operand, false

	case absoluteX:
		addr := operand + uint16(st.x)
		return addr, crossesPage(operand, addr)

	case absoluteY:
		addr := operand + uint16(st.y)
		return addr, crossesPage(operand, addr)

	case indirect:
		lo := bus.read(operand)
		hi := bus.read(operand&0xFF00 | uint16(byte(operand)+1))
		return uint16(hi)<<8 | uint16(lo), false

	case indexedIndirect:
		pointer := byte(operand) + st.x
		lo := bus.read(uint16(pointer))
		hi := bus.read(uint16(pointer + 1))
		return uint16(hi)<<8 | uint16(lo), false

	case indirectIndexed:
		pointer := byte(operand)
		lo := bus.read(uint16(pointer))
		hi := bus.read(uint16(pointer + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(st.y)
		return addr, crossesPage(base, addr)
	}

	return 0, false
}

func crossesPage(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// operandSize is the number of operand bytes the mode carries.
func (m addressingMode) operandSize() byte {
	switch m {
	case implied, accumulator:
		return 0
	case absolute, absoluteX, absoluteY, indirect:
		return 2
	default:
		return 1
	}
}

// addressingFormats renders operands in standard 6502 assembly syntax.
var addressingFormats = map[addressingMode]string{
	implied:         "",
	accumulator:     "A",
	immediate:       "#$%02X",
	relative:        "$%04X",
	zeroPage:        "$%02X",
	zeroPageX:       "$%02X,X",
	zeroPageY:       "$%02X,Y",
	absolute:        "$%04X",
	absoluteX:       "$%04X,X",
	absoluteY:       "$%04X,Y",
	indirect:        "($%04X)",
	indexedIndirect: "($%02X,X)",
	indirectIndexed: "($%02X),Y",
}
