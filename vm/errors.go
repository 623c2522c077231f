package vm

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions that abort a run. The VM wraps them
// in *RuntimeError to attach the faulting offset; errors.Is still matches
// the sentinel through the wrapper.
var (
	ErrStackOverflow  = errors.New("vm: stack overflow")
	ErrStackUnderflow = errors.New("vm: stack underflow")
	ErrUnknownOpcode  = errors.New("vm: unknown opcode")
	ErrBadConstant    = errors.New("vm: constant index out of range")
	ErrTruncatedChunk = errors.New("vm: truncated chunk")
)

// RuntimeError is an execution fault at a specific instruction.
type RuntimeError struct {
	Err    error // the sentinel condition
	Offset int   // byte offset of the faulting instruction
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%v at offset %04d", e.Err, e.Offset)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
