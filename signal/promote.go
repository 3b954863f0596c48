package signal

import (
	"errors"
	"fmt"
)

// ErrNoPromotion indicates that no widening is defined for a pair of
// scalar kinds. This is a composition-time error: the code generator
// must reject the graph before generation, so it never surfaces during
// a tick.
var ErrNoPromotion = errors.New("no promotion defined")

// Promote returns the unique scalar kind wide enough to represent
// values of both l and r without information loss.
//
// The table is closed:
//
//	k   x k   -> k     (every kind promotes with itself)
//	u8  x f32 -> f32
//	u16 x f32 -> f32
//	f32 x f64 -> f64
//
// The result is symmetric in its arguments. Pairs outside the table,
// including any pair mixing bool with a numeric kind, return
// ErrNoPromotion: treating bool as {0,1} would silently change the
// meaning of comparison outputs, so the combination is rejected
// outright.
func Promote(l, r Kind) (Kind, error) {
	if !l.valid() || !r.valid() {
		return KindInvalid, fmt.Errorf("promote %s with %s: %w", l, r, ErrNoPromotion)
	}
	if l == r {
		return l, nil
	}
	lo, hi := l, r
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case lo == KindU8 && hi == KindF32:
		return KindF32, nil
	case lo == KindU16 && hi == KindF32:
		return KindF32, nil
	case lo == KindF32 && hi == KindF64:
		return KindF64, nil
	}
	return KindInvalid, fmt.Errorf("promote %s with %s: %w", l, r, ErrNoPromotion)
}

// MustPromote is Promote for pairs the caller knows are defined.
// It panics on an undefined pair; intended for composition-time
// tooling, never for tick-time code.
func MustPromote(l, r Kind) Kind {
	k, err := Promote(l, r)
	if err != nil {
		panic(err)
	}
	return k
}

// Widen converts a numeric value to the promoted kind P. The caller
// (normally generated code) is responsible for instantiating P as the
// promotion of the operand kinds; Widen itself performs only the
// conversion step.
func Widen[P, T Numeric](v T) P {
	return P(v)
}
