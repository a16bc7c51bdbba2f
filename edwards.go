package curves

import (
	"math/big"
)

// EdwardsCurve is the parameter record of a twisted Edwards curve
// a·x² + y² = 1 + d·x²·y² over the prime field of p. Unlike the
// Weierstrass family the cofactor is mandatory. The subgroup order is
// retained when supplied so cofactor-clearing layers can reach it, but
// it is a property of the generator rather than of the equation, so it
// does not participate in equality.
//
// The record is immutable after construction.
type EdwardsCurve struct {
	name  string
	p     *big.Int
	a     *big.Int
	d     *big.Int
	h     *big.Int
	order *big.Int // nil when not supplied
}

var _ Curve = (*EdwardsCurve)(nil)

// NewEdwardsCurve builds a twisted Edwards curve record. The
// coefficients a and d are reduced mod p and all inputs are copied.
// The cofactor h is required; order may be nil when the subgroup order
// is unknown at construction time.
func NewEdwardsCurve(name string, p, a, d, h, order *big.Int) (*EdwardsCurve, error) {
	if p == nil || a == nil || d == nil {
		return nil, ErrInvalidParameters.WithDetails("p, a, and d must be non-nil")
	}
	if p.Cmp(two) <= 0 || p.Bit(0) == 0 {
		return nil, ErrInvalidParameters.WithDetails("modulus must be an odd prime, got %s", p)
	}
	if h == nil || h.Sign() <= 0 {
		return nil, ErrInvalidParameters.WithDetails("cofactor is mandatory for twisted Edwards curves")
	}
	c := &EdwardsCurve{
		name: name,
		p:    new(big.Int).Set(p),
		a:    new(big.Int).Mod(a, p),
		d:    new(big.Int).Mod(d, p),
		h:    new(big.Int).Set(h),
	}
	if order != nil {
		if order.Sign() <= 0 {
			return nil, ErrInvalidParameters.WithDetails("order must be positive when supplied")
		}
		c.order = new(big.Int).Set(order)
	}
	return c, nil
}

// Name returns the curve identifier.
func (c *EdwardsCurve) Name() string { return c.name }

// Family returns TwistedEdwards.
func (c *EdwardsCurve) Family() CurveFamily { return TwistedEdwards }

// P returns a copy of the prime modulus.
func (c *EdwardsCurve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns a copy of the coefficient a.
func (c *EdwardsCurve) A() *big.Int { return new(big.Int).Set(c.a) }

// D returns a copy of the coefficient d.
func (c *EdwardsCurve) D() *big.Int { return new(big.Int).Set(c.d) }

// Cofactor returns a copy of the cofactor, always present for this
// family.
func (c *EdwardsCurve) Cofactor() *big.Int { return new(big.Int).Set(c.h) }

// Order returns a copy of the subgroup order, or nil when none was
// supplied at construction.
func (c *EdwardsCurve) Order() *big.Int {
	if c.order == nil {
		return nil
	}
	return new(big.Int).Set(c.order)
}

// BaseLen returns ceil((bitlen(p)+1)/8): one extra bit over the
// Weierstrass convention, reserved for the sign bit the point-encoding
// scheme packs alongside the y-coordinate.
func (c *EdwardsCurve) BaseLen() int {
	return (c.p.BitLen() + 1 + 7) / 8
}

// VerifyingKeyLength equals BaseLen: Edwards public keys are encoded
// in exactly that many bytes.
func (c *EdwardsCurve) VerifyingKeyLength() (int, error) {
	return c.BaseLen(), nil
}

// ContainsPoint reports whether (x, y) satisfies
// a·x² + y² ≡ 1 + d·x²·y² (mod p).
func (c *EdwardsCurve) ContainsPoint(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	x2 := new(big.Int).Mul(x, x)
	y2 := new(big.Int).Mul(y, y)

	lhs := new(big.Int).Mul(c.a, x2)
	lhs.Add(lhs, y2)

	rhs := new(big.Int).Mul(x2, y2)
	rhs.Mul(rhs, c.d)
	rhs.Add(rhs, one)

	lhs.Sub(lhs, rhs)
	return lhs.Mod(lhs, c.p).Sign() == 0
}

// IsXCoord is unsupported here: recovering y on a twisted Edwards
// curve solves a different closed form and needs cofactor handling,
// which lives in a higher layer.
func (c *EdwardsCurve) IsXCoord(x *big.Int) (bool, error) {
	return false, ErrNotImplemented.WithDetails("x-coordinate testing is deferred for %s curves", TwistedEdwards)
}

// LiftX is unsupported here; see IsXCoord.
func (c *EdwardsCurve) LiftX(x *big.Int) (*Point, error) {
	return nil, ErrNotImplemented.WithDetails("x-coordinate lifting is deferred for %s curves", TwistedEdwards)
}

// Negate is unsupported here; the Edwards inverse negates x rather
// than y and is handled by the point-arithmetic layer.
func (c *EdwardsCurve) Negate(p0 *Point) (*Point, error) {
	return nil, ErrNotImplemented.WithDetails("negation is deferred for %s curves", TwistedEdwards)
}

// Equal reports structural equality over (p, a, d, h). The retained
// order is deliberately excluded; see the type comment.
func (c *EdwardsCurve) Equal(other Curve) bool {
	o, ok := other.(*EdwardsCurve)
	if !ok {
		return false
	}
	return c.p.Cmp(o.p) == 0 && c.a.Cmp(o.a) == 0 &&
		c.d.Cmp(o.d) == 0 && c.h.Cmp(o.h) == 0
}

// Fingerprint returns the digest of (family, p, a, d, h).
func (c *EdwardsCurve) Fingerprint() [32]byte {
	return fingerprint(TwistedEdwards, c.p, c.a, c.d, c.h)
}
