package vm

import (
	"testing"
)

func TestChunkWrite(t *testing.T) {
	c := NewChunk()
	if c.Len() != 0 {
		t.Errorf("new chunk len = %d, want 0", c.Len())
	}

	c.Write(0x01)
	c.Write(0x02)
	c.Write(0x03)

	if c.Len() != 3 {
		t.Errorf("len = %d, want 3", c.Len())
	}
	want := []byte{0x01, 0x02, 0x03}
	for i, b := range want {
		if c.Code[i] != b {
			t.Errorf("code[%d] = %#02x, want %#02x", i, c.Code[i], b)
		}
	}
}

func TestChunkWriteOp(t *testing.T) {
	c := NewChunk()
	c.WriteOp(OpReturn)

	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
	if Opcode(c.Code[0]) != OpReturn {
		t.Errorf("code[0] = %v, want RETURN", Opcode(c.Code[0]))
	}
}

func TestChunkAddConstant(t *testing.T) {
	c := NewChunk()

	for i := 0; i < 5; i++ {
		idx := c.AddConstant(Value(i) * 10)
		if idx != i {
			t.Errorf("AddConstant #%d returned index %d, want %d", i, idx, i)
		}
	}
	if len(c.Constants) != 5 {
		t.Errorf("pool size = %d, want 5", len(c.Constants))
	}
	if c.Constants[3] != 30 {
		t.Errorf("constants[3] = %v, want 30", c.Constants[3])
	}
}

func TestChunkAddConstantNoDedup(t *testing.T) {
	c := NewChunk()
	first := c.AddConstant(1.5)
	second := c.AddConstant(1.5)

	if first == second {
		t.Errorf("repeated AddConstant returned the same index %d; every call must append", first)
	}
	if len(c.Constants) != 2 {
		t.Errorf("pool size = %d, want 2", len(c.Constants))
	}
}

func TestChunkWriteConstantShortForm(t *testing.T) {
	c := NewChunk()
	idx := c.WriteConstant(1.2)

	if idx != 0 {
		t.Errorf("index = %d, want 0", idx)
	}
	want := []byte{byte(OpConstant), 0x00}
	if c.Len() != len(want) {
		t.Fatalf("code len = %d, want %d", c.Len(), len(want))
	}
	for i, b := range want {
		if c.Code[i] != b {
			t.Errorf("code[%d] = %#02x, want %#02x", i, c.Code[i], b)
		}
	}
}

func TestChunkWriteConstantSwitchesToLongForm(t *testing.T) {
	c := NewChunk()

	// Indices 0..255 use the one-byte form.
	for i := 0; i < 256; i++ {
		c.WriteConstant(Value(i))
	}
	if c.Len() != 256*2 {
		t.Fatalf("code len after 256 short constants = %d, want %d", c.Len(), 256*2)
	}
	if Opcode(c.Code[255*2]) != OpConstant {
		t.Errorf("opcode for index 255 = %v, want CONSTANT", Opcode(c.Code[255*2]))
	}
	if c.Code[255*2+1] != 0xFF {
		t.Errorf("operand for index 255 = %#02x, want 0xFF", c.Code[255*2+1])
	}

	// Index 256 is the first to need the 24-bit form.
	idx := c.WriteConstant(Value(256))
	if idx != 256 {
		t.Fatalf("index = %d, want 256", idx)
	}
	ins := c.Code[256*2:]
	if Opcode(ins[0]) != OpConstantLong {
		t.Errorf("opcode for index 256 = %v, want CONSTANT_LONG", Opcode(ins[0]))
	}
	if ins[1] != 0x00 || ins[2] != 0x01 || ins[3] != 0x00 {
		t.Errorf("operand bytes = %#02x %#02x %#02x, want 00 01 00 (big-endian)", ins[1], ins[2], ins[3])
	}
}

func TestChunkWriteConstantIndex299BigEndian(t *testing.T) {
	c := NewChunk()
	var last int
	for i := 0; i < 300; i++ {
		last = c.WriteConstant(Value(i))
	}
	if last != 299 {
		t.Fatalf("last index = %d, want 299", last)
	}

	// 299 = 0x00012B, most significant byte first.
	tail := c.Code[len(c.Code)-4:]
	if Opcode(tail[0]) != OpConstantLong {
		t.Fatalf("final opcode = %v, want CONSTANT_LONG", Opcode(tail[0]))
	}
	if tail[1] != 0x00 || tail[2] != 0x01 || tail[3] != 0x2B {
		t.Errorf("operand bytes = %#02x %#02x %#02x, want 00 01 2B", tail[1], tail[2], tail[3])
	}
	if got := readUint24(c.Code, len(c.Code)-3); got != 299 {
		t.Errorf("readUint24 = %d, want 299", got)
	}
}

func TestUint24RoundTrip(t *testing.T) {
	tests := []int{0, 1, 255, 256, 299, 4096, 65535, 65536, 0xFFFFFF}

	for _, v := range tests {
		c := NewChunk()
		c.writeUint24(v)
		if len(c.Code) != 3 {
			t.Fatalf("writeUint24(%d) wrote %d bytes, want 3", v, len(c.Code))
		}
		if got := readUint24(c.Code, 0); got != v {
			t.Errorf("readUint24(writeUint24(%d)) = %d", v, got)
		}
	}
}

func TestChunkFree(t *testing.T) {
	c := NewChunk()
	c.WriteConstant(1.2)
	c.WriteOp(OpReturn)

	c.Free()

	if c.Len() != 0 {
		t.Errorf("len after Free = %d, want 0", c.Len())
	}
	if len(c.Constants) != 0 {
		t.Errorf("pool size after Free = %d, want 0", len(c.Constants))
	}

	// A freed chunk is reusable as if freshly created.
	if idx := c.AddConstant(9); idx != 0 {
		t.Errorf("first index after Free = %d, want 0", idx)
	}
}
