// Package format defines small enumerations used for diagnostics across the zfmt
// codec packages. None of these values appear on the wire — the wire format
// carries no top-level type tags (the reader must know the expected shape, except
// inside a Union where the key value itself discriminates) — they exist only to
// give error messages and logging call sites a readable name for "what shape was
// I decoding when this failed".
package format

// ShapeKind identifies one of the closed set of value shapes the codec supports.
type ShapeKind uint8

const (
	ShapePrimitive ShapeKind = 0x1 // fixed-width integer/float/bool/string
	ShapeNullable  ShapeKind = 0x2 // present/absent wrapper
	ShapeTime      ShapeKind = 0x3 // Instant or Duration
	ShapeSequence  ShapeKind = 0x4 // length-prefixed homogeneous vector
	ShapeTuple     ShapeKind = 0x5 // positional pair
	ShapeStruct    ShapeKind = 0x6 // fixed-order field concatenation
	ShapeObject    ShapeKind = 0x7 // indexed, versioned field set
	ShapeUnion     ShapeKind = 0x8 // tagged choice among cases
)

func (s ShapeKind) String() string {
	switch s {
	case ShapePrimitive:
		return "Primitive"
	case ShapeNullable:
		return "Nullable"
	case ShapeTime:
		return "Time"
	case ShapeSequence:
		return "Sequence"
	case ShapeTuple:
		return "Tuple"
	case ShapeStruct:
		return "Struct"
	case ShapeObject:
		return "Object"
	case ShapeUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// KeyKind identifies the wire width of a Union's discriminant key type.
//
// spec.md leaves the union key type as "the integer key type fixed by the
// schema (e.g., i32)" — original_source/src/union.rs takes the key type as a
// macro parameter rather than hardcoding i32, so this module supports all four
// signed integer widths the primitive codec already implements.
type KeyKind uint8

const (
	KeyInt8  KeyKind = 0x1
	KeyInt16 KeyKind = 0x2
	KeyInt32 KeyKind = 0x3
	KeyInt64 KeyKind = 0x4
)

func (k KeyKind) String() string {
	switch k {
	case KeyInt8:
		return "Int8"
	case KeyInt16:
		return "Int16"
	case KeyInt32:
		return "Int32"
	case KeyInt64:
		return "Int64"
	default:
		return "Unknown"
	}
}

// Width returns the key's wire width in bytes.
func (k KeyKind) Width() int {
	switch k {
	case KeyInt8:
		return 1
	case KeyInt16:
		return 2
	case KeyInt32:
		return 4
	case KeyInt64:
		return 8
	default:
		return 0
	}
}
