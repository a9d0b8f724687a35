package vmath

// Vec3 is a 3D vector of Q10 components
// Value type: created per computation, never shared
type Vec3 struct {
	X, Y, Z Fixed
}

// V3Zero is the zero vector
var V3Zero = Vec3{}

func V3(x, y, z Fixed) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Neg(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func V3Scale(v Vec3, s Fixed) Vec3 {
	return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// V3Div panics with ErrDivideByZero when s is zero
func V3Div(v Vec3, s Fixed) Vec3 {
	return Vec3{v.X.Div(s), v.Y.Div(s), v.Z.Div(s)}
}

func V3Dot(a, b Vec3) Fixed {
	return a.X.Mul(b.X) + a.Y.Mul(b.Y) + a.Z.Mul(b.Z)
}

func V3Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y.Mul(b.Z) - a.Z.Mul(b.Y),
		Y: a.Z.Mul(b.X) - a.X.Mul(b.Z),
		Z: a.X.Mul(b.Y) - a.Y.Mul(b.X),
	}
}

func V3MagSq(v Vec3) Fixed {
	return V3Dot(v, v)
}

// maxSqrtMagSq bounds the squared magnitudes handed to Sqrt from vector code; the capped Newton
// iteration is exact below it
const maxSqrtMagSq = Fixed(256 << Shift)

// fitMag halves every component, rounding toward zero, until the squared magnitude is at most
// maxSqrtMagSq. It returns the scaled vector and the number of halvings.
func fitMag(v Vec3) (Vec3, uint) {
	var k uint
	for V3MagSq(v) > maxSqrtMagSq {
		v = Vec3{v.X.Shr(1), v.Y.Shr(1), v.Z.Shr(1)}
		k++
	}
	return v, k
}

func V3Mag(v Vec3) Fixed {
	s, k := fitMag(v)
	return Sqrt(V3MagSq(s)).Shl(k)
}

// V3Normalize returns the unit vector, or the zero vector when v has zero magnitude.
// Vectors shorter than ~0.03 have a zero squared magnitude in Q10 and normalize to zero as well.
func V3Normalize(v Vec3) Vec3 {
	s, _ := fitMag(v)
	mag := Sqrt(V3MagSq(s))
	if mag == 0 {
		return Vec3{}
	}
	return V3Div(s, mag)
}

// V3Angle returns the unsigned angle between from and to, AngleZero when either is zero length
func V3Angle(from, to Vec3) Angle {
	from, _ = fitMag(from)
	to, _ = fitMag(to)
	denom := Sqrt(V3MagSq(from)).Mul(Sqrt(V3MagSq(to)))
	if denom == 0 {
		return AngleZero
	}
	return Acos(V3Dot(from, to).Div(denom))
}

// V3Project removes the component of v along the unit normal n
func V3Project(v, n Vec3) Vec3 {
	return V3Sub(v, V3Scale(n, V3Dot(v, n)))
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// At returns component 0, 1 or 2; any other index panics with ErrIndexOutOfRange
func (v Vec3) At(i int) Fixed {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(ErrIndexOutOfRange)
}

// Set assigns component i with the same bounds as At
func (v *Vec3) Set(i int, f Fixed) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		panic(ErrIndexOutOfRange)
	}
}

func (v Vec3) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ", " + v.Z.String() + ")"
}
