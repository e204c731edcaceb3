package nes

// status holds the flags that make up the processor status register P.
type status byte

const (
	// Carry flag.
	//
	// After ADC, this is the carry result of the addition.
	// After SBC or CMP, this flag will be set if no borrow was the result, or
	// alternatively a "greater than or equal" result.
	// After a shift instruction (ASL, LSR, ROL, ROR), this contains the bit
	// that was shifted out.
	carry status = 1 << iota

	// Zero flag is set when the result of an instruction is zero.
	zero

	// InterruptDisable flag.
	//
	// When set, all interrupts except the NMI are inhibited.
	// Automatically set by the cpu when an interrupt is taken, and restored
	// to its previous state by RTI.
	interruptDisable

	// Decimal flag. The NES 6502 has decimal mode disabled in hardware, so
	// this flag can be set and cleared but has no effect on arithmetic.
	decimal

	// Break flag.
	//
	// Not a real register bit: it only exists in the byte pushed to the
	// stack. In that byte, Break is 1 if the flags were pushed by an
	// instruction (PHP or BRK) and 0 if they were pushed by an interrupt
	// line (/IRQ or /NMI). PLP and RTI ignore it when restoring flags.
	brk

	// Unused flag. Always set in pushed status bytes.
	unused

	// Overflow flag.
	//
	// ADC and SBC set this flag if the signed result would be invalid.
	// BIT loads bit 6 of the addressed value directly into it.
	overflow

	// Negative flag.
	//
	// After most instructions that have a value result, this flag contains
	// bit 7 of that result. BIT loads bit 7 of the addressed value directly.
	negative
)

func (p status) get(mask status) bool {
	return p&mask > 0
}

func (p *status) set(mask status, value bool) {
	if value {
		*p |= mask
	} else {
		*p &^= mask
	}
}

// state is the register file of the 6502.
//
// pc always names a committed instruction boundary. nextPC holds the
// destination of the instruction in flight: it is seeded with pc+size before
// the operation runs, may be overwritten by jumps, branches and interrupts,
// and is committed at end-of-execute.
type state struct {
	// a, along with the arithmetic logic unit, supports using the status
	// register for carrying, overflow detection, and so on.
	a byte

	// x and y are used for several addressing modes, and work well as loop
	// counters via INC/DEC and the branch instructions.
	x, y byte

	// s names a byte inside page 1; the absolute stack address is 0x0100|s.
	s byte

	pc     uint16
	nextPC uint16

	p status
}

func newState() state {
	return state{
		p: interruptDisable,
		s: 0xFD,
	}
}

func (st *state) clear() {
	*st = newState()
}

func (st *state) commitPC() {
	st.pc = st.nextPC
}

func (st *state) updateZero(v byte) {
	st.p.set(zero, v == 0)
}

func (st *state) updateNegative(v byte) {
	st.p.set(negative, v&0x80 > 0)
}
