package vmath

import (
	"errors"
	"math"
	"strconv"
)

// Q10 fixed point constants
const (
	Shift = 10
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)

	// DefaultSqrtIterations is the Newton iteration cap used by Sqrt
	DefaultSqrtIterations = 8
)

// Contract violations, raised with panic. A simulation that hits one of these has a caller bug
// and must not continue the tick, or client and server state will diverge.
var (
	ErrDivideByZero    = errors.New("vmath: divide by zero")
	ErrNegativeSqrt    = errors.New("vmath: square root of negative value")
	ErrIndexOutOfRange = errors.New("vmath: vector index out of range")
	ErrScaleMismatch   = errors.New("vmath: angle scale mismatch")
)

// Fixed is a Q10 fixed point number: the backing integer is the real value times 1024
type Fixed int64

// Common values
const (
	Zero Fixed = 0
	One  Fixed = Scale
)

// --- Conversion ---

func FromInt(i int) Fixed { return Fixed(int64(i) << Shift) }

// FromRaw wraps an already scaled integer
func FromRaw(raw int64) Fixed { return Fixed(raw) }

// FromFloat converts an authoring-time decimal into the fixed domain, rounding half away from zero.
// Level loading is the only place this belongs; simulation code never calls it.
func FromFloat(f float64) Fixed { return Fixed(math.Round(f * Scale)) }

// Raw returns the scaled backing integer
func (a Fixed) Raw() int64 { return int64(a) }

// ToInt truncates toward zero
func (a Fixed) ToInt() int { return int(roundShr(int64(a), Shift)) }

// Float is a display-only conversion. The result must never be fed back into the simulation.
func (a Fixed) Float() float64 { return float64(a) / Scale }

func (a Fixed) String() string { return strconv.FormatFloat(a.Float(), 'f', 4, 64) }

// --- Arithmetic ---

func (a Fixed) Add(b Fixed) Fixed { return a + b }
func (a Fixed) Sub(b Fixed) Fixed { return a - b }
func (a Fixed) Neg() Fixed        { return -a }

// Mul multiplies and rescales, rounding toward zero
func (a Fixed) Mul(b Fixed) Fixed {
	return Fixed(roundShr(int64(a)*int64(b), Shift))
}

// Div panics with ErrDivideByZero when b is zero. Go integer division truncates toward zero,
// which matches the rounding policy of Mul.
func (a Fixed) Div(b Fixed) Fixed {
	if b == 0 {
		panic(ErrDivideByZero)
	}
	return Fixed((int64(a) << Shift) / int64(b))
}

// Shr shifts right with the same round-toward-zero policy as Mul
func (a Fixed) Shr(n uint) Fixed { return Fixed(roundShr(int64(a), n)) }

func (a Fixed) Shl(n uint) Fixed { return Fixed(int64(a) << n) }

// roundShr divides v by 2^n rounding toward zero. A plain arithmetic shift rounds negative
// values toward negative infinity, one unit off on odd boundaries.
func roundShr(v int64, n uint) int64 {
	if v >= 0 {
		return v >> n
	}
	return -((-v) >> n)
}

// --- Comparison ---

func (a Fixed) Cmp(b Fixed) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (a Fixed) Abs() Fixed {
	if a < 0 {
		return -a
	}
	return a
}

// Sign returns -One, Zero or One
func (a Fixed) Sign() Fixed {
	if a < 0 {
		return -One
	}
	if a > 0 {
		return One
	}
	return 0
}

func Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

func Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi Fixed) Fixed {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Roots ---

// Sqrt returns the Q10 square root using DefaultSqrtIterations Newton steps
func Sqrt(x Fixed) Fixed {
	return SqrtN(x, DefaultSqrtIterations)
}

// SqrtN runs at most iterations Newton steps starting from x itself, stopping early once the
// estimate stops changing. The cap is what keeps the cost and the result identical on every peer;
// inputs of several thousand and up do not fully converge within the default cap.
func SqrtN(x Fixed, iterations int) Fixed {
	if x < 0 {
		panic(ErrNegativeSqrt)
	}
	if x == 0 {
		return 0
	}

	result := x
	for i := 0; i < iterations; i++ {
		next := (result + x.Div(result)).Shr(1)
		if next == result {
			break
		}
		result = next
	}
	return result
}

// --- Trigonometry ---

// Acos approximates arccosine through the precomputed table: [-1, 1] maps linearly onto
// [0, AcosLUTSize-1]. Inputs outside [-1, 1] clamp to the table ends.
func Acos(v Fixed) Angle {
	v = Clamp(v, -One, One)
	idx := v.Mul(FromInt(AcosLUTHalf)).ToInt() + AcosLUTHalf
	if idx < 0 {
		idx = 0
	}
	if idx > AcosLUTSize-1 {
		idx = AcosLUTSize - 1
	}
	return Angle{Value: acosLUT[idx], Scale: AngleScale}
}
