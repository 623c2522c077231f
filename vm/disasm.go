package vm

import (
	"fmt"
	"io"
)

// ---------------------------------------------------------------------------
// Disassembly
// ---------------------------------------------------------------------------

// DisassembleChunk writes a listing of every instruction in c to w,
// under a header line carrying the given label.
func DisassembleChunk(w io.Writer, c *Chunk, label string) {
	fmt.Fprintf(w, "== %s ==\n", label)
	for offset := 0; offset < len(c.Code); {
		offset = DisassembleInstruction(w, c, offset)
	}
}

// DisassembleInstruction writes the instruction at offset and returns
// the offset of the next one. Operand widths come from the opcode table,
// so the listing shows exactly what the interpreter would fetch. An
// instruction whose operand bytes run past the end of the stream is
// flagged and ends the listing.
func DisassembleInstruction(w io.Writer, c *Chunk, offset int) int {
	op := Opcode(c.Code[offset])
	info := op.Info()

	next := offset + 1 + info.OperandBytes
	if next > len(c.Code) {
		fmt.Fprintf(w, "%04d  %s <truncated>\n", offset, info.Name)
		return len(c.Code)
	}

	switch op {
	case OpConstant:
		idx := int(c.Code[offset+1])
		fmt.Fprintf(w, "%04d  %s %d (%s)\n", offset, info.Name, idx, constantString(c, idx))

	case OpConstantLong:
		idx := readUint24(c.Code, offset+1)
		fmt.Fprintf(w, "%04d  %s %d (%s)\n", offset, info.Name, idx, constantString(c, idx))

	default:
		fmt.Fprintf(w, "%04d  %s\n", offset, info.Name)
	}

	return next
}

// constantString renders a constant pool entry for a listing.
func constantString(c *Chunk, idx int) string {
	if idx >= len(c.Constants) {
		return "<bad index>"
	}
	return c.Constants[idx].String()
}
