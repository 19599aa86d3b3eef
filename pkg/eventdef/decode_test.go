package eventdef

import "testing"

func TestDecodeArgumentsDenseLittleEndian(t *testing.T) {
	def := EventDefinition{
		Arguments: []ArgumentDefinition{
			{Name: "a", Type: Uint8, EnumIndex: -1},
			{Name: "b", Type: Uint16, EnumIndex: -1},
			{Name: "c", Type: Uint32, EnumIndex: -1},
		},
	}

	buf := make([]byte, 32)
	buf[0] = 0x7F        // a = 127
	buf[1] = 0x34         // b low byte
	buf[2] = 0x12         // b high byte -> 0x1234
	buf[3] = 0x04         // c byte0
	buf[4] = 0x03         // c byte1
	buf[5] = 0x02         // c byte2
	buf[6] = 0x01         // c byte3 -> 0x01020304

	args := DecodeArguments(def, buf)
	if len(args) != 3 {
		t.Fatalf("expected 3 decoded arguments, got %d", len(args))
	}
	if args[0].U8 != 0x7F {
		t.Errorf("a = %#x, expected 0x7F", args[0].U8)
	}
	if args[1].U16 != 0x1234 {
		t.Errorf("b = %#x, expected 0x1234", args[1].U16)
	}
	if args[2].U32 != 0x01020304 {
		t.Errorf("c = %#x, expected 0x01020304", args[2].U32)
	}
}

func TestDecodeArgumentsTruncatesAtBufferBoundary(t *testing.T) {
	def := EventDefinition{
		Arguments: []ArgumentDefinition{
			{Name: "a", Type: Uint64, EnumIndex: -1},
			{Name: "b", Type: Uint64, EnumIndex: -1},
			{Name: "c", Type: Uint64, EnumIndex: -1},
			{Name: "d", Type: Uint64, EnumIndex: -1},
			{Name: "e", Type: Uint32, EnumIndex: -1}, // would read past byte 32
		},
	}

	buf := make([]byte, 32)
	args := DecodeArguments(def, buf)
	if len(args) != 4 {
		t.Fatalf("expected decoding to stop at 4 arguments, got %d", len(args))
	}
}

func TestDecodeFloat32(t *testing.T) {
	def := EventDefinition{
		Arguments: []ArgumentDefinition{
			{Name: "f", Type: Float32, EnumIndex: -1, NumDecimals: 2},
		},
	}
	buf := make([]byte, 32)
	// 3.14 as IEEE754 little-endian bytes.
	buf[0], buf[1], buf[2], buf[3] = 0xC3, 0xF5, 0x48, 0x40

	args := DecodeArguments(def, buf)
	if len(args) != 1 {
		t.Fatalf("expected 1 decoded argument, got %d", len(args))
	}
	got := args[0].F32
	if got < 3.13 || got > 3.15 {
		t.Errorf("decoded float = %v, expected ~3.14", got)
	}
}

func TestBaseTypeSizes(t *testing.T) {
	tests := []struct {
		bt   BaseType
		size int
	}{
		{Uint8, 1}, {Int8, 1},
		{Uint16, 2}, {Int16, 2},
		{Uint32, 4}, {Int32, 4}, {Float32, 4},
		{Uint64, 8}, {Int64, 8},
		{Invalid, 0},
	}
	for _, tt := range tests {
		if got := tt.bt.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, expected %d", tt.bt, got, tt.size)
		}
	}
}

func TestParseBaseTypeUnknownReturnsInvalid(t *testing.T) {
	if got := ParseBaseType("nonsense"); got != Invalid {
		t.Errorf("ParseBaseType(nonsense) = %v, expected Invalid", got)
	}
}
