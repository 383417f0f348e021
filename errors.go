package main

import "fmt"

// unsupportedOpcodeError reports a first byte whose family bits match
// none of the known encodings.
type unsupportedOpcodeError struct {
	offset int
	opcode byte
}

func (e *unsupportedOpcodeError) Error() string {
	return fmt.Sprintf("unsupported opcode %08b at offset %d", e.opcode, e.offset)
}

// truncatedInstructionError reports a buffer that ends before a matched
// encoding's required byte count is satisfied.
type truncatedInstructionError struct {
	offset    int
	available int
	required  int
}

func (e *truncatedInstructionError) Error() string {
	return fmt.Sprintf("truncated instruction at offset %d: %d bytes available, %d required",
		e.offset, e.available, e.required)
}

// unsupportedAddressingModeError reports a MOD field combination the
// matched family decoder does not implement.
type unsupportedAddressingModeError struct {
	offset int
	mode   byte
}

func (e *unsupportedAddressingModeError) Error() string {
	return fmt.Sprintf("unsupported addressing mode %02b at offset %d", e.mode, e.offset)
}
