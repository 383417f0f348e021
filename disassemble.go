package main

// opcodeClass identifies an instruction family by the leading bits of
// its first byte. Direction and width bits are per-instruction flags,
// not part of the family selector.
type opcodeClass int

const (
	opRegMemToFromReg opcodeClass = iota
	opImmToReg
	opImmToRegMem

	// Recognized encodings that are not decoded yet.
	opMemToAcc
	opAccToMem
	opSegRegMove
)

// MOD field values of the secondary byte.
const (
	modeNoDisp byte = 0b00
	modeDisp8  byte = 0b01
	modeDisp16 byte = 0b10
	modeReg    byte = 0b11
)

func classify(b byte) (opcodeClass, bool) {
	switch {
	case b>>2 == 0b100010:
		return opRegMemToFromReg, true
	case b>>4 == 0b1011:
		return opImmToReg, true
	case b>>2 == 0b110001:
		return opImmToRegMem, true
	case b>>2 == 0b101000:
		if b>>1&1 == 0 {
			return opMemToAcc, true
		}
		return opAccToMem, true
	case b>>2 == 0b100011:
		return opSegRegMove, true
	}
	return 0, false
}

// disassembler is a forward-only cursor over the instruction bytes.
// pos only ever advances, by exactly the byte count of each matched
// encoding.
type disassembler struct {
	data []byte
	pos  int
}

func (d *disassembler) hasMore() bool {
	return d.pos < len(d.data)
}

func (d *disassembler) peekByte() (byte, bool) {
	if !d.hasMore() {
		return 0, false
	}
	return d.data[d.pos], true
}

func (d *disassembler) nextByte() (byte, bool) {
	b, ok := d.peekByte()
	if ok {
		d.pos++
	}
	return b, ok
}

// need fails with a truncation error unless n more bytes remain for the
// instruction that started at offset.
func (d *disassembler) need(offset, n int) error {
	if len(d.data)-d.pos >= n {
		return nil
	}
	return &truncatedInstructionError{
		offset:    offset,
		available: len(d.data) - offset,
		required:  d.pos - offset + n,
	}
}

// signedValue reads a 1- or 2-byte little-endian value, sign-extended
// to 16 bits. Both displacements and immediates come through here.
func (d *disassembler) signedValue(offset int, wide bool) (int16, error) {
	n := 1
	if wide {
		n = 2
	}
	if err := d.need(offset, n); err != nil {
		return 0, err
	}
	lo, _ := d.nextByte()
	if !wide {
		return int16(int8(lo)), nil
	}
	hi, _ := d.nextByte()
	return int16(uint16(lo) | uint16(hi)<<8), nil
}

// modRegRM reads the secondary byte and splits it into its MOD, REG and
// R/M fields.
func (d *disassembler) modRegRM(offset int) (mod, reg, rm byte, err error) {
	if err := d.need(offset, 1); err != nil {
		return 0, 0, 0, err
	}
	b, _ := d.nextByte()
	return b >> 6, b >> 3 & 0b111, b & 0b111, nil
}

// rmOperand resolves the R/M field under the given MOD, consuming any
// displacement or direct-address bytes the mode requires.
func (d *disassembler) rmOperand(offset int, mod, rm, w byte) (operand, error) {
	switch mod {
	case modeReg:
		return operand{kind: operandReg, reg: regName[w][rm]}, nil
	case modeNoDisp:
		if rm == directAddrRM {
			addr, err := d.signedValue(offset, true)
			if err != nil {
				return operand{}, err
			}
			return operand{kind: operandMemDirect, addr: uint16(addr)}, nil
		}
		return operand{kind: operandMemIndexed, base: effAddrBase[rm]}, nil
	case modeDisp8, modeDisp16:
		disp, err := d.signedValue(offset, mod == modeDisp16)
		if err != nil {
			return operand{}, err
		}
		return operand{kind: operandMemIndexed, base: effAddrBase[rm], disp: disp}, nil
	}
	return operand{}, &unsupportedAddressingModeError{offset: offset, mode: mod}
}

func (d *disassembler) nextInstruction() (instruction, error) {
	offset := d.pos
	b, ok := d.nextByte()
	if !ok {
		return instruction{}, &truncatedInstructionError{offset: offset, available: 0, required: 1}
	}

	class, ok := classify(b)
	if !ok {
		return instruction{}, &unsupportedOpcodeError{offset: offset, opcode: b}
	}

	switch class {
	case opRegMemToFromReg:
		return d.regMemToFromReg(offset, b)
	case opImmToReg:
		return d.immToReg(offset, b)
	case opImmToRegMem:
		return d.immToRegMem(offset, b)
	}
	// Families recognized for future extension but not decoded.
	return instruction{}, &unsupportedOpcodeError{offset: offset, opcode: b}
}

func (d *disassembler) regMemToFromReg(offset int, b byte) (instruction, error) {
	dir := b >> 1 & 1
	w := b & 1

	mod, reg, rm, err := d.modRegRM(offset)
	if err != nil {
		return instruction{}, err
	}

	regOp := operand{kind: operandReg, reg: regName[w][reg]}
	rmOp, err := d.rmOperand(offset, mod, rm, w)
	if err != nil {
		return instruction{}, err
	}

	// D selects whether REG names the destination or the source.
	dst, src := rmOp, regOp
	if dir == 1 {
		dst, src = regOp, rmOp
	}
	return instruction{mnemonic: "MOV", dst: dst, src: src}, nil
}

func (d *disassembler) immToReg(offset int, b byte) (instruction, error) {
	w := b >> 3 & 1
	reg := b & 0b111

	imm, err := d.signedValue(offset, w == 1)
	if err != nil {
		return instruction{}, err
	}
	return instruction{
		mnemonic: "MOV",
		dst:      operand{kind: operandReg, reg: regName[w][reg]},
		src:      operand{kind: operandImm, imm: imm, wide: w == 1},
	}, nil
}

func (d *disassembler) immToRegMem(offset int, b byte) (instruction, error) {
	w := b & 1

	mod, _, rm, err := d.modRegRM(offset)
	if err != nil {
		return instruction{}, err
	}
	if mod == modeReg {
		// Only the memory-directed forms are implemented.
		return instruction{}, &unsupportedAddressingModeError{offset: offset, mode: mod}
	}

	dst, err := d.rmOperand(offset, mod, rm, w)
	if err != nil {
		return instruction{}, err
	}
	imm, err := d.signedValue(offset, w == 1)
	if err != nil {
		return instruction{}, err
	}
	return instruction{
		mnemonic:     "MOV",
		dst:          dst,
		src:          operand{kind: operandImm, imm: imm, wide: w == 1},
		explicitSize: true,
	}, nil
}
