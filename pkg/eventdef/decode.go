package eventdef

import (
	"encoding/binary"
	"math"
)

// Argument is a decoded, typed value for one ArgumentDefinition. Exactly one
// of the numeric fields is meaningful, selected by Type.
type Argument struct {
	Type        BaseType
	EnumIndex   int // -1 when not an enum reference, mirrors ArgumentDefinition
	NumDecimals int

	U8  uint8
	I8  int8
	U16 uint16
	I16 int16
	U32 uint32
	I32 int32
	U64 uint64
	I64 int64
	F32 float32
}

func (a Argument) IsEnum() bool {
	return a.EnumIndex >= 0
}

// AsUint64 returns the argument's value widened to uint64, for enum lookups
// where the wire type is any unsigned (or signed, reinterpreted) integer.
func (a Argument) AsUint64() uint64 {
	switch a.Type {
	case Uint8:
		return uint64(a.U8)
	case Int8:
		return uint64(a.I8)
	case Uint16:
		return uint64(a.U16)
	case Int16:
		return uint64(a.I16)
	case Uint32:
		return uint64(a.U32)
	case Int32:
		return uint64(a.I32)
	case Uint64:
		return a.U64
	case Int64:
		return uint64(a.I64)
	default:
		return 0
	}
}

// DecodeArguments reads buf (the event's fixed-length raw argument payload)
// densely, in declaration order, little-endian, with no alignment padding.
// If the next field would read past len(buf), decoding stops and the
// remaining argument definitions are simply omitted from the result.
func DecodeArguments(def EventDefinition, buf []byte) []Argument {
	args := make([]Argument, 0, len(def.Arguments))

	offset := 0
	for _, argDef := range def.Arguments {
		size := argDef.Type.Size()
		if offset+size > len(buf) {
			break
		}

		arg := Argument{
			Type:        argDef.Type,
			EnumIndex:   argDef.EnumIndex,
			NumDecimals: argDef.NumDecimals,
		}

		field := buf[offset : offset+size]
		switch argDef.Type {
		case Uint8:
			arg.U8 = field[0]
		case Int8:
			arg.I8 = int8(field[0])
		case Uint16:
			arg.U16 = binary.LittleEndian.Uint16(field)
		case Int16:
			arg.I16 = int16(binary.LittleEndian.Uint16(field))
		case Uint32:
			arg.U32 = binary.LittleEndian.Uint32(field)
		case Int32:
			arg.I32 = int32(binary.LittleEndian.Uint32(field))
		case Uint64:
			arg.U64 = binary.LittleEndian.Uint64(field)
		case Int64:
			arg.I64 = int64(binary.LittleEndian.Uint64(field))
		case Float32:
			bits := binary.LittleEndian.Uint32(field)
			arg.F32 = math.Float32frombits(bits)
		default:
			break
		}

		args = append(args, arg)
		offset += size
	}

	return args
}
