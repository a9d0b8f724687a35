package vmath

//go:generate go run ../cmd/acosgen -o acos_table.go

// Arccosine table geometry. Index i holds acos((i - AcosLUTHalf) / AcosLUTHalf) in AngleScale
// units, so index 0 is Pi, AcosLUTHalf is HalfPi and the last entry is zero.
// AcosLUTHalf equals Scale: every Q10 input in [-1, 1] owns exactly one table slot.
const (
	AcosLUTHalf = Scale
	AcosLUTSize = 2*AcosLUTHalf + 1
)

// AcosTable returns a copy of the table for inspection and tooling
func AcosTable() [AcosLUTSize]int64 {
	return acosLUT
}
