package curves

import (
	"errors"
	"math/big"
)

// WeierstrassCurve is the parameter record of a short Weierstrass
// curve y² = x³ + ax + b over the prime field of p. The cofactor is
// optional: nil means "not supplied", which is distinct from a stored
// cofactor of zero or one.
//
// The record is immutable after construction.
type WeierstrassCurve struct {
	name string
	p    *big.Int
	a    *big.Int
	b    *big.Int
	h    *big.Int // nil when not supplied
}

var _ Curve = (*WeierstrassCurve)(nil)

// NewWeierstrassCurve builds a short Weierstrass curve record from the
// modulus p and the coefficients a and b. The coefficients are reduced
// mod p and all inputs are copied. Name may be empty for ad-hoc
// records.
func NewWeierstrassCurve(name string, p, a, b *big.Int) (*WeierstrassCurve, error) {
	if p == nil || a == nil || b == nil {
		return nil, ErrInvalidParameters.WithDetails("p, a, and b must be non-nil")
	}
	if p.Cmp(two) <= 0 || p.Bit(0) == 0 {
		return nil, ErrInvalidParameters.WithDetails("modulus must be an odd prime, got %s", p)
	}
	return &WeierstrassCurve{
		name: name,
		p:    new(big.Int).Set(p),
		a:    new(big.Int).Mod(a, p),
		b:    new(big.Int).Mod(b, p),
	}, nil
}

// WithCofactor returns a copy of the curve with the cofactor supplied.
// The receiver is left untouched.
func (c *WeierstrassCurve) WithCofactor(h *big.Int) (*WeierstrassCurve, error) {
	if h == nil || h.Sign() <= 0 {
		return nil, ErrInvalidParameters.WithDetails("cofactor must be positive")
	}
	clone := *c
	clone.h = new(big.Int).Set(h)
	return &clone, nil
}

// Name returns the curve identifier.
func (c *WeierstrassCurve) Name() string { return c.name }

// Family returns Weierstrass.
func (c *WeierstrassCurve) Family() CurveFamily { return Weierstrass }

// P returns a copy of the prime modulus.
func (c *WeierstrassCurve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns a copy of the coefficient a.
func (c *WeierstrassCurve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the coefficient b.
func (c *WeierstrassCurve) B() *big.Int { return new(big.Int).Set(c.b) }

// Cofactor returns the cofactor and whether one was supplied.
func (c *WeierstrassCurve) Cofactor() (*big.Int, bool) {
	if c.h == nil {
		return nil, false
	}
	return new(big.Int).Set(c.h), true
}

// BaseLen returns the minimal byte count to encode a value below p.
func (c *WeierstrassCurve) BaseLen() int { return baseLen(c.p) }

// VerifyingKeyLength is unsupported for the Weierstrass family: the
// encoded-key length is determined by the external encoding scheme
// (compressed, uncompressed, hybrid), not by the curve record.
func (c *WeierstrassCurve) VerifyingKeyLength() (int, error) {
	return 0, ErrNotImplemented.WithDetails("verifying key length is defined by the encoding scheme for %s curves", Weierstrass)
}

// rhs returns x³ + ax + b mod p, evaluated as (x²+a)·x + b.
func (c *WeierstrassCurve) rhs(x *big.Int) *big.Int {
	v := new(big.Int).Mul(x, x)
	v.Add(v, c.a)
	v.Mul(v, x)
	v.Add(v, c.b)
	return v.Mod(v, c.p)
}

// ContainsPoint reports whether (x, y) satisfies y² ≡ x³+ax+b (mod p).
func (c *WeierstrassCurve) ContainsPoint(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	y2 := new(big.Int).Mul(y, y)
	y2.Sub(y2, c.rhs(x))
	return y2.Mod(y2, c.p).Sign() == 0
}

// IsXCoord reports whether a point with the given x-coordinate exists
// on the curve, i.e. whether x³+ax+b is zero or a quadratic residue
// mod p.
func (c *WeierstrassCurve) IsXCoord(x *big.Int) (bool, error) {
	if x == nil {
		return false, ErrInvalidParameters.WithDetails("x-coordinate is nil")
	}
	return big.Jacobi(c.rhs(x), c.p) != -1, nil
}

// LiftX recovers an affine point (x, y, 1) whose y-coordinate is a
// square root of x³+ax+b mod p. When x is not the x-coordinate of any
// point on the curve, LiftX returns ErrNoSuchPoint instead of an
// arithmetically inconsistent result. The root's parity is unspecified;
// callers wanting the other root apply Negate.
func (c *WeierstrassCurve) LiftX(x *big.Int) (*Point, error) {
	if x == nil {
		return nil, ErrInvalidParameters.WithDetails("x-coordinate is nil")
	}
	y, err := SqrtMod(c.rhs(x), c.p)
	if err != nil {
		if errors.Is(err, ErrNonResidue) {
			return nil, ErrNoSuchPoint.WithDetails("x = %s", x)
		}
		return nil, err
	}
	return &Point{
		X: new(big.Int).Mod(x, c.p),
		Y: y,
		Z: big.NewInt(1),
	}, nil
}

// Negate returns (x, (p-y) mod p, z), the additive inverse of p0.
func (c *WeierstrassCurve) Negate(p0 *Point) (*Point, error) {
	if p0 == nil || p0.X == nil || p0.Y == nil || p0.Z == nil {
		return nil, ErrInvalidPoint.WithDetails("point or coordinate is nil")
	}
	negY := new(big.Int).Sub(c.p, p0.Y)
	negY.Mod(negY, c.p)
	return &Point{
		X: new(big.Int).Set(p0.X),
		Y: negY,
		Z: new(big.Int).Set(p0.Z),
	}, nil
}

// Equal reports structural equality over (p, a, b, h). A record with
// no cofactor never equals one with a cofactor, whatever its value.
// Names are labels, not parameters, and do not participate.
func (c *WeierstrassCurve) Equal(other Curve) bool {
	o, ok := other.(*WeierstrassCurve)
	if !ok {
		return false
	}
	if c.p.Cmp(o.p) != 0 || c.a.Cmp(o.a) != 0 || c.b.Cmp(o.b) != 0 {
		return false
	}
	if (c.h == nil) != (o.h == nil) {
		return false
	}
	return c.h == nil || c.h.Cmp(o.h) == 0
}

// Fingerprint returns the digest of (family, p, a, b, h).
func (c *WeierstrassCurve) Fingerprint() [32]byte {
	return fingerprint(Weierstrass, c.p, c.a, c.b, c.h)
}
