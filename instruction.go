package main

import (
	"fmt"
	"strings"
)

type operandKind int

const (
	operandReg operandKind = iota
	operandMemDirect
	operandMemIndexed
	operandImm
)

type operand struct {
	kind operandKind

	reg  string // operandReg
	addr uint16 // operandMemDirect
	base string // operandMemIndexed
	disp int16  // operandMemIndexed
	imm  int16  // operandImm
	wide bool   // operandImm: word-sized immediate
}

func (o operand) String() string {
	switch o.kind {
	case operandReg:
		return o.reg
	case operandMemDirect:
		return fmt.Sprintf("[%d]", o.addr)
	case operandMemIndexed:
		var sb strings.Builder
		sb.WriteString("[")
		sb.WriteString(o.base)
		// A zero displacement is omitted entirely; a negative one
		// renders as "- magnitude", never as a raw negative literal.
		if o.disp > 0 {
			fmt.Fprintf(&sb, " + %d", o.disp)
		} else if o.disp < 0 {
			fmt.Fprintf(&sb, " - %d", -int(o.disp))
		}
		sb.WriteString("]")
		return sb.String()
	case operandImm:
		return fmt.Sprintf("%d", o.imm)
	}
	return "INVALID OPERAND"
}

type instruction struct {
	mnemonic string
	dst      operand
	src      operand

	// explicitSize forces a BYTE/WORD qualifier on an immediate source
	// whose destination expression does not pin the operand width.
	explicitSize bool
}

func (i instruction) String() string {
	src := i.src.String()
	if i.explicitSize && i.src.kind == operandImm {
		if i.src.wide {
			src = "WORD " + src
		} else {
			src = "BYTE " + src
		}
	}
	return fmt.Sprintf("%s %s, %s", i.mnemonic, i.dst, src)
}
