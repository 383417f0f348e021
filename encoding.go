package main

// regName maps a 3-bit REG or R/M field to a register mnemonic,
// selected by the W bit (0 = byte registers, 1 = word registers).
var regName = [2][8]string{
	{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"},
	{"AX", "CX", "DX", "BX", "SP", "BP", "SI", "DI"},
}

// effAddrBase maps a 3-bit R/M field to the base-register expression
// of an effective address. R/M = 110 under MOD = 00 does not use this
// table: it selects a 16-bit direct address instead.
var effAddrBase = [8]string{
	"BX + SI",
	"BX + DI",
	"BP + SI",
	"BP + DI",
	"SI",
	"DI",
	"BP",
	"BX",
}

// directAddrRM is the R/M field value reserved for direct addressing
// under MOD = 00.
const directAddrRM = 0b110
