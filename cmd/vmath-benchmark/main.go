package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/lixenwraith/fixphys/physics"
	"github.com/lixenwraith/fixphys/vmath"
)

const (
	sampleCount = 10000
	seed        = 42
)

// Test data: velocities in the ground plane and a cluster of statics around the origin
type testCase struct {
	mover    *physics.Collider
	velocity vmath.Vec3
}

var (
	testCases []testCase
	statics   []*physics.Collider
)

func init() {
	rng := rand.New(rand.NewSource(seed))
	axisX := vmath.V3(vmath.One, 0, 0)
	axisZ := vmath.V3(0, 0, vmath.One)

	statics = []*physics.Collider{
		physics.NewBox(vmath.V3(0, 0, vmath.FromInt(-2)), axisX, axisZ, vmath.FromInt(6), vmath.One),
		physics.NewBox(vmath.V3(vmath.FromInt(5), 0, 0), axisX, axisZ, vmath.One, vmath.FromInt(4)),
		physics.NewCircle(vmath.V3(vmath.FromInt(-2), 0, vmath.FromInt(1)), vmath.One),
		physics.NewCircle(vmath.V3(vmath.FromInt(2), 0, vmath.FromInt(2)), vmath.FromFloat(0.5)),
	}

	testCases = make([]testCase, sampleCount)
	for i := range testCases {
		pos := vmath.V3(vmath.FromRaw(rng.Int63n(8<<vmath.Shift)-4<<vmath.Shift), 0,
			vmath.FromRaw(rng.Int63n(4<<vmath.Shift)-1<<vmath.Shift))
		vel := vmath.V3(vmath.FromRaw(rng.Int63n(6<<vmath.Shift)-3<<vmath.Shift), 0,
			vmath.FromRaw(rng.Int63n(6<<vmath.Shift)-3<<vmath.Shift))
		testCases[i] = testCase{
			mover:    physics.NewCircle(pos, vmath.FromFloat(0.5)),
			velocity: vel,
		}
	}
}

// sqrtError returns the relative error of the capped fixed sqrt against math.Sqrt, in percent
func sqrtError(x float64) (fixed, exact, errPct float64) {
	fixed = vmath.Sqrt(vmath.FromFloat(x)).Float()
	exact = math.Sqrt(x)
	if exact == 0 {
		return fixed, exact, 0
	}
	return fixed, exact, math.Abs(fixed-exact) / exact * 100
}

// acosMaxError scans every Q10 cosine and returns the worst table error in radians
func acosMaxError() (worst float64, at vmath.Fixed) {
	for raw := -int64(vmath.Scale); raw <= vmath.Scale; raw++ {
		v := vmath.FromRaw(raw)
		e := math.Abs(vmath.Acos(v).Radians() - math.Acos(v.Float()))
		if e > worst {
			worst, at = e, v
		}
	}
	return worst, at
}

// === ACCURACY VERIFICATION ===

func verifyAccuracy() {
	fmt.Println("=== vmath.Sqrt Accuracy (iteration cap 8) ===")
	fmt.Println()
	fmt.Printf("%-10s %15s %15s %15s\n", "Input", "vmath.Sqrt", "math.Sqrt", "Error %")

	for _, x := range []float64{0.25, 1, 2, 9, 25, 100, 225, 500, 1000, 2000, 4000, 10000} {
		fixed, exact, errPct := sqrtError(x)
		fmt.Printf("%10.2f %15.6f %15.6f %14.4f%%\n", x, fixed, exact, errPct)
	}

	fmt.Println()
	fmt.Println("Inputs above a few thousand do not converge within the cap and come out high.")
	fmt.Println()

	worst, at := acosMaxError()
	fmt.Println("=== vmath.Acos Table Accuracy ===")
	fmt.Printf("Worst error %.6f rad at cos = %v (one angle unit = %.6f rad)\n", worst, at, 1.0/vmath.AngleScale)
}

func main() {
	fmt.Println("fixphys vmath Accuracy and Resolver Benchmark")
	fmt.Println("=============================================")
	fmt.Println()

	verifyAccuracy()

	fmt.Println()
	fmt.Println("=== Running Benchmarks ===")
	fmt.Println("Run with: go test -bench=. -benchmem ./cmd/vmath-benchmark/")
	fmt.Println()

	iterations := 200000
	r := physics.NewResolver(vmath.One.Div(vmath.FromInt(30)))

	start := time.Now()
	contacts, wedged := 0, 0
	for i := 0; i < iterations; i++ {
		tc := testCases[i%sampleCount]
		res := r.Resolve(tc.mover, tc.velocity, statics)
		contacts += len(res.Hits)
		if res.Wedged {
			wedged++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("Quick benchmark (%d resolves against %d statics):\n", iterations, len(statics))
	fmt.Printf("  Total:     %v\n", elapsed)
	fmt.Printf("  Per call:  %v\n", elapsed/time.Duration(iterations))
	fmt.Printf("  Contacts:  %d, wedged: %d\n", contacts, wedged)

	if contacts == 0 {
		fmt.Fprintln(os.Stderr, "warning: no contacts exercised")
	}
}
