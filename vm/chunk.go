package vm

// ---------------------------------------------------------------------------
// Chunk: bytecode stream plus constant pool
// ---------------------------------------------------------------------------

// Chunk is a unit of compiled bytecode: a flat instruction stream and the
// constant pool its CONSTANT instructions index into. A chunk is owned by
// whoever builds it; the VM only borrows one for the duration of a run.
type Chunk struct {
	Code      []byte
	Constants []Value
}

// NewChunk creates an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Write appends a single byte to the instruction stream.
func (c *Chunk) Write(b byte) {
	c.Code = append(c.Code, b)
}

// WriteOp appends an opcode with no operands.
func (c *Chunk) WriteOp(op Opcode) {
	c.Code = append(c.Code, byte(op))
}

// AddConstant appends v to the constant pool and returns its index.
// Values are not deduplicated; every call appends.
func (c *Chunk) AddConstant(v Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// WriteConstant adds v to the constant pool and emits the instruction
// that loads it: CONSTANT with a one-byte index while the index fits in
// a byte, CONSTANT_LONG with a 24-bit big-endian index beyond that.
// It returns the pool index of v.
func (c *Chunk) WriteConstant(v Value) int {
	idx := c.AddConstant(v)
	if idx <= 0xFF {
		c.WriteOp(OpConstant)
		c.Write(byte(idx))
	} else {
		c.WriteOp(OpConstantLong)
		c.writeUint24(idx)
	}
	return idx
}

// writeUint24 appends v as three big-endian bytes.
func (c *Chunk) writeUint24(v int) {
	c.Code = append(c.Code, byte(v>>16), byte(v>>8), byte(v))
}

// readUint24 decodes three big-endian bytes starting at offset.
func readUint24(code []byte, offset int) int {
	return int(code[offset])<<16 | int(code[offset+1])<<8 | int(code[offset+2])
}

// Len returns the number of bytes in the instruction stream.
func (c *Chunk) Len() int {
	return len(c.Code)
}

// Free releases the chunk's code and constant pool. The chunk is
// afterwards indistinguishable from a freshly created one.
func (c *Chunk) Free() {
	c.Code = nil
	c.Constants = nil
}
