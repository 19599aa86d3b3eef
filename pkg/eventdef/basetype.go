// Package eventdef holds the event metadata model: enums, event definitions,
// the JSON loader that populates them, the argument decoder, and the
// message/description template renderer.
package eventdef

// BaseType is the closed set of primitive wire types an event argument or
// enum can be encoded as.
type BaseType int

const (
	Invalid BaseType = iota
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
)

// baseTypeSpellings mirrors the definition file's string tokens for each type.
var baseTypeSpellings = map[string]BaseType{
	"uint8_t":  Uint8,
	"int8_t":   Int8,
	"uint16_t": Uint16,
	"int16_t":  Int16,
	"uint32_t": Uint32,
	"int32_t":  Int32,
	"uint64_t": Uint64,
	"int64_t":  Int64,
	"float":    Float32,
}

// ParseBaseType maps a definition-file type token to a BaseType, returning
// Invalid for anything it doesn't recognize (including enum reference tokens,
// which the loader resolves separately).
func ParseBaseType(token string) BaseType {
	if bt, ok := baseTypeSpellings[token]; ok {
		return bt
	}
	return Invalid
}

// Size returns the fixed wire width in bytes for a BaseType, or 0 for Invalid.
func (bt BaseType) Size() int {
	switch bt {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64:
		return 8
	default:
		return 0
	}
}

func (bt BaseType) String() string {
	for token, v := range baseTypeSpellings {
		if v == bt {
			return token
		}
	}
	return "invalid"
}
