// Package vm implements the Brook bytecode machine.
//
// This package contains:
//   - the numeric value representation
//   - Chunk, a bytecode stream paired with its constant pool
//   - opcode metadata and a table-driven disassembler
//   - the stack-based interpreter
package vm
