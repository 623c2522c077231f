package vm

import (
	"fmt"
	"io"
	"os"
)

// ---------------------------------------------------------------------------
// VM: The Brook Virtual Machine
// ---------------------------------------------------------------------------

// StackMax is the value stack capacity. A run that needs more resident
// values than this fails with ErrStackOverflow.
const StackMax = 256

// VM is a stack machine executing Brook bytecode. Instances are
// independent; create as many as needed and run each as often as needed.
// A VM is not safe for concurrent use.
type VM struct {
	chunk *Chunk // borrowed for the duration of a run
	ip    int    // offset of the next byte to fetch
	stack [StackMax]Value
	sp    int // next free slot; stack[0:sp] are resident

	// Trace, when non-nil, receives a stack dump and disassembled
	// instruction before each execution step.
	Trace io.Writer

	// Diag receives a diagnostic line for every runtime fault before
	// Interpret returns it.
	Diag io.Writer
}

// NewVM creates a VM with diagnostics going to stderr.
func NewVM() *VM {
	return &VM{Diag: os.Stderr}
}

// Push places v on top of the stack. When StackMax values are already
// resident it fails with ErrStackOverflow and writes nothing.
func (v *VM) Push(val Value) error {
	if v.sp >= StackMax {
		return ErrStackOverflow
	}
	v.stack[v.sp] = val
	v.sp++
	return nil
}

// Pop removes and returns the value on top of the stack. On an empty
// stack it fails with ErrStackUnderflow and reads nothing.
func (v *VM) Pop() (Value, error) {
	if v.sp == 0 {
		return 0, ErrStackUnderflow
	}
	v.sp--
	return v.stack[v.sp], nil
}

// Top returns the value on top of the stack without removing it.
func (v *VM) Top() (Value, bool) {
	if v.sp == 0 {
		return 0, false
	}
	return v.stack[v.sp-1], true
}

// StackDepth returns the number of resident values.
func (v *VM) StackDepth() int {
	return v.sp
}

// Interpret executes chunk from its first byte. Every call is a fresh,
// isolated run: the instruction pointer and the stack are reset first.
//
// A nil return means the program reached RETURN; the stack is left as
// the program left it, so the final value stays inspectable via Top.
// Any fault comes back as a *RuntimeError wrapping one of the package
// sentinels.
func (v *VM) Interpret(chunk *Chunk) error {
	v.chunk = chunk
	v.ip = 0
	v.sp = 0
	return v.run()
}

// run is the fetch-decode-execute loop.
func (v *VM) run() error {
	code := v.chunk.Code

	for {
		at := v.ip
		if at >= len(code) {
			// Ran off the end without hitting RETURN.
			return v.fault(ErrTruncatedChunk, at)
		}

		if v.Trace != nil {
			v.traceInstruction()
		}

		op := Opcode(code[v.ip])
		v.ip++

		switch op {
		case OpConstant:
			if v.ip+1 > len(code) {
				return v.fault(ErrTruncatedChunk, at)
			}
			idx := int(code[v.ip])
			v.ip++
			if err := v.pushConstant(idx); err != nil {
				return v.fault(err, at)
			}

		case OpConstantLong:
			if v.ip+3 > len(code) {
				return v.fault(ErrTruncatedChunk, at)
			}
			idx := readUint24(code, v.ip)
			v.ip += 3
			if err := v.pushConstant(idx); err != nil {
				return v.fault(err, at)
			}

		case OpAdd, OpSubtract, OpMultiply, OpDivide:
			if err := v.binary(op); err != nil {
				return v.fault(err, at)
			}

		case OpNegate:
			val, err := v.Pop()
			if err != nil {
				return v.fault(err, at)
			}
			if err := v.Push(-val); err != nil {
				return v.fault(err, at)
			}

		case OpReturn:
			return nil

		default:
			return v.fault(ErrUnknownOpcode, at)
		}
	}
}

// pushConstant loads constant pool entry idx onto the stack.
func (v *VM) pushConstant(idx int) error {
	if idx >= len(v.chunk.Constants) {
		return ErrBadConstant
	}
	return v.Push(v.chunk.Constants[idx])
}

// binary applies an arithmetic opcode to the top two stack values:
// the right operand is popped first, then the left.
func (v *VM) binary(op Opcode) error {
	b, err := v.Pop()
	if err != nil {
		return err
	}
	a, err := v.Pop()
	if err != nil {
		return err
	}

	var r Value
	switch op {
	case OpAdd:
		r = a + b
	case OpSubtract:
		r = a - b
	case OpMultiply:
		r = a * b
	case OpDivide:
		r = a / b
	}
	return v.Push(r)
}

// fault wraps a sentinel with the faulting offset, reports it to Diag,
// and returns the wrapped error.
func (v *VM) fault(err error, offset int) error {
	rerr := &RuntimeError{Err: err, Offset: offset}
	if v.Diag != nil {
		fmt.Fprintf(v.Diag, "%s\n", rerr)
	}
	return rerr
}

// traceInstruction dumps the stack and the next instruction to Trace.
func (v *VM) traceInstruction() {
	fmt.Fprintf(v.Trace, "          ")
	for i := 0; i < v.sp; i++ {
		fmt.Fprintf(v.Trace, "[ %s ]", v.stack[i])
	}
	fmt.Fprintln(v.Trace)
	DisassembleInstruction(v.Trace, v.chunk, v.ip)
}
