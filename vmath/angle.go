package vmath

import "math"

// AngleScale is the canonical multiplier shared by the named angle constants and the acos table:
// an Angle with this scale stores radians * 10000
const AngleScale = 10000

// Angle is a scaled angle or ratio. Two angles are only comparable when they carry the same
// Scale; comparing across scales panics with ErrScaleMismatch instead of coercing.
type Angle struct {
	Value int64
	Scale int64
}

// Named angles at AngleScale
var (
	AngleZero = Angle{Value: 0, Scale: AngleScale}
	HalfPi    = Angle{Value: 15708, Scale: AngleScale}
	Pi        = Angle{Value: 31416, Scale: AngleScale}
	TwoPi     = Angle{Value: 62832, Scale: AngleScale}
)

func (a Angle) mustMatch(b Angle) {
	if a.Scale != b.Scale {
		panic(ErrScaleMismatch)
	}
}

// Cmp returns -1, 0 or 1
func (a Angle) Cmp(b Angle) int {
	a.mustMatch(b)
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	}
	return 0
}

func (a Angle) Equal(b Angle) bool   { return a.Cmp(b) == 0 }
func (a Angle) Less(b Angle) bool    { return a.Cmp(b) < 0 }
func (a Angle) Greater(b Angle) bool { return a.Cmp(b) > 0 }

// Max returns the larger of two same-scale angles
func (a Angle) Max(b Angle) Angle {
	if a.Less(b) {
		return b
	}
	return a
}

// Radians is display-only
func (a Angle) Radians() float64 {
	if a.Scale == 0 {
		return 0
	}
	return float64(a.Value) / float64(a.Scale)
}

// Degrees is display-only
func (a Angle) Degrees() float64 {
	return a.Radians() * 180 / math.Pi
}
