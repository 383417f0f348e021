package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperandString(t *testing.T) {
	tests := []struct {
		name string
		op   operand
		want string
	}{
		{"register", operand{kind: operandReg, reg: "AX"}, "AX"},
		{"direct address", operand{kind: operandMemDirect, addr: 4660}, "[4660]"},
		{"direct address max", operand{kind: operandMemDirect, addr: math.MaxUint16}, "[65535]"},
		{"indexed no disp", operand{kind: operandMemIndexed, base: "BX"}, "[BX]"},
		{"indexed positive", operand{kind: operandMemIndexed, base: "BX + SI", disp: 4}, "[BX + SI + 4]"},
		{"indexed negative", operand{kind: operandMemIndexed, base: "BX + SI", disp: -37}, "[BX + SI - 37]"},
		{"indexed most negative", operand{kind: operandMemIndexed, base: "BP", disp: math.MinInt16}, "[BP - 32768]"},
		{"immediate", operand{kind: operandImm, imm: 5, wide: true}, "5"},
		{"immediate negative", operand{kind: operandImm, imm: -2}, "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestInstructionString(t *testing.T) {
	src := operand{kind: operandImm, imm: 66}
	dst := operand{kind: operandMemIndexed, base: "BX"}

	in := instruction{mnemonic: "MOV", dst: dst, src: src}
	assert.Equal(t, "MOV [BX], 66", in.String())

	in.explicitSize = true
	assert.Equal(t, "MOV [BX], BYTE 66", in.String())

	in.src.wide = true
	assert.Equal(t, "MOV [BX], WORD 66", in.String())

	// The qualifier only ever attaches to an immediate source.
	in.src = operand{kind: operandReg, reg: "CX"}
	assert.Equal(t, "MOV [BX], CX", in.String())
}
