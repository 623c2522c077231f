package vm

import "fmt"

// ---------------------------------------------------------------------------
// Opcode definitions
// ---------------------------------------------------------------------------

// Opcode represents a single bytecode instruction.
type Opcode byte

// Constant loads
const (
	OpConstant     Opcode = 0x00 // push constant (8-bit pool index)
	OpConstantLong Opcode = 0x01 // push constant (24-bit big-endian pool index)
)

// Arithmetic
const (
	OpAdd      Opcode = 0x02 // pop b, pop a, push a + b
	OpSubtract Opcode = 0x03 // pop b, pop a, push a - b
	OpMultiply Opcode = 0x04 // pop b, pop a, push a * b
	OpDivide   Opcode = 0x05 // pop b, pop a, push a / b
	OpNegate   Opcode = 0x06 // pop a, push -a
)

// Control
const (
	OpReturn Opcode = 0x07 // end the run, leaving the stack intact
)

// ---------------------------------------------------------------------------
// Opcode metadata
// ---------------------------------------------------------------------------

// OpcodeInfo holds metadata about an opcode.
type OpcodeInfo struct {
	Name         string // human-readable name
	OperandBytes int    // number of operand bytes
	StackEffect  int    // net effect on stack depth
}

// opcodeTable maps opcodes to their metadata. It is the single source of
// truth for operand widths: the interpreter and the disassembler both
// decode instruction boundaries from it.
var opcodeTable = map[Opcode]OpcodeInfo{
	OpConstant:     {"CONSTANT", 1, 1},
	OpConstantLong: {"CONSTANT_LONG", 3, 1},
	OpAdd:          {"ADD", 0, -1},
	OpSubtract:     {"SUBTRACT", 0, -1},
	OpMultiply:     {"MULTIPLY", 0, -1},
	OpDivide:       {"DIVIDE", 0, -1},
	OpNegate:       {"NEGATE", 0, 0},
	OpReturn:       {"RETURN", 0, 0},
}

// Info returns the metadata for an opcode.
func (op Opcode) Info() OpcodeInfo {
	if info, ok := opcodeTable[op]; ok {
		return info
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN_%02X", byte(op)), OperandBytes: 0, StackEffect: 0}
}

// Name returns the human-readable name for an opcode.
func (op Opcode) Name() string {
	return op.Info().Name
}

// OperandBytes returns the number of operand bytes for an opcode.
func (op Opcode) OperandBytes() int {
	return op.Info().OperandBytes
}

// Valid reports whether op is a defined instruction.
func (op Opcode) Valid() bool {
	_, ok := opcodeTable[op]
	return ok
}

// String implements the Stringer interface.
func (op Opcode) String() string {
	return op.Name()
}
