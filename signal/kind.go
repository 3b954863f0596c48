package signal

// Scalar is the closed set of scalar types that may appear on an edge
// or inside a Matrix. The set is exact: named types with scalar
// underlying types are not edge data.
type Scalar interface {
	bool | uint8 | uint16 | float32 | float64
}

// Numeric is the subset of Scalar that supports arithmetic. Promotion
// is only defined between numeric kinds and between a kind and itself.
type Numeric interface {
	uint8 | uint16 | float32 | float64
}

// Float is the subset of Scalar used by time-dependent generators.
type Float interface {
	float32 | float64
}

// Kind identifies a scalar kind at composition time. Code generation
// tooling uses Kind values to match producer and consumer edges and to
// resolve promotions before any code is emitted.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindU8
	KindU16
	KindF32
	KindF64
)

// String returns the canonical spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	default:
		return "invalid"
	}
}

// Size returns the width of one value of the kind in bytes.
func (k Kind) Size() int {
	switch k {
	case KindBool, KindU8:
		return 1
	case KindU16:
		return 2
	case KindF32:
		return 4
	case KindF64:
		return 8
	default:
		return 0
	}
}

func (k Kind) valid() bool {
	return k >= KindBool && k <= KindF64
}

// KindOf reports the Kind of a scalar type parameter.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case uint8:
		return KindU8
	case uint16:
		return KindU16
	case float32:
		return KindF32
	case float64:
		return KindF64
	}
	// Unreachable: Scalar is a closed set.
	return KindInvalid
}
