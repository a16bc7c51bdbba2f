// Package curves provides the algebraic foundation for elliptic-curve
// cryptography: a uniform capability set over short Weierstrass curves
// y² = x³ + ax + b and twisted Edwards curves a·x² + y² = 1 + d·x²·y²,
// both over a prime field.
//
// The package covers curve-equation membership testing, x-coordinate
// existence testing, x-coordinate lifting via modular square roots,
// point negation, and structural curve equality. Scalar multiplication,
// point encoding, and key handling live in higher layers that consume
// the Curve interface.
//
// Curve records are immutable once constructed and safe for concurrent
// use without locking. All operations are pure, deterministic, and
// CPU-bound; none are constant-time, so this package must not be used
// where side-channel resistance is required.
package curves

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// CurveFamily identifies the curve equation a record satisfies.
type CurveFamily string

const (
	// Weierstrass is the family of curves y² = x³ + ax + b.
	Weierstrass CurveFamily = "weierstrass"
	// TwistedEdwards is the family of curves a·x² + y² = 1 + d·x²·y².
	TwistedEdwards CurveFamily = "twisted-edwards"
)

// Point is a point in projective-style coordinates (X, Y, Z). Affine
// points carry Z = 1. Points are transient values produced and consumed
// by curve operations; they are not owned or validated by the curve
// that produced them.
type Point struct {
	X, Y, Z *big.Int
}

// NewPoint returns the affine point (x, y, 1). The coordinates are
// copied so later mutation of the arguments does not alias the point.
func NewPoint(x, y *big.Int) *Point {
	return &Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
		Z: big.NewInt(1),
	}
}

// Equal reports whether p and q have identical coordinates. Nil points
// are only equal to nil.
func (p *Point) Equal(q *Point) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0 && p.Z.Cmp(q.Z) == 0
}

// Curve is the capability set every curve family must satisfy. Higher
// layers dispatch over it without knowing which concrete record they
// hold.
//
// Operations a family does not support here return ErrNotImplemented:
// VerifyingKeyLength for the Weierstrass family, and IsXCoord, LiftX,
// and Negate for the twisted Edwards family, whose x-recovery needs a
// different closed form plus cofactor handling and is deferred to a
// higher layer.
type Curve interface {
	// Name returns the curve identifier, or "" for unnamed records.
	Name() string

	// Family returns the curve family tag.
	Family() CurveFamily

	// P returns the prime field modulus.
	P() *big.Int

	// A returns the curve coefficient a, reduced mod p.
	A() *big.Int

	// BaseLen returns the number of bytes used to encode one field
	// element for this curve. The two families count differently: the
	// Edwards convention reserves one extra bit for the sign packed
	// next to the encoded y-coordinate.
	BaseLen() int

	// VerifyingKeyLength returns the encoded public-key length in
	// bytes for families that fix it here.
	VerifyingKeyLength() (int, error)

	// ContainsPoint reports whether (x, y) satisfies the curve
	// equation.
	ContainsPoint(x, y *big.Int) bool

	// IsXCoord reports whether some point on the curve has the given
	// x-coordinate.
	IsXCoord(x *big.Int) (bool, error)

	// LiftX recovers an affine point with the given x-coordinate by
	// solving the curve equation for y. Returns ErrNoSuchPoint when no
	// such point exists.
	LiftX(x *big.Int) (*Point, error)

	// Negate returns the additive inverse of p, leaving Z unchanged.
	Negate(p *Point) (*Point, error)

	// Equal reports structural equality of the stored parameters.
	// Records of different families are never equal.
	Equal(other Curve) bool

	// Fingerprint returns a stable digest of the stored parameters.
	// Two records are Equal exactly when their fingerprints match.
	Fingerprint() [32]byte
}

// baseLen returns the minimal byte count to encode a value below p.
func baseLen(p *big.Int) int {
	return (p.BitLen() + 7) / 8
}

// fingerprint digests a family tag and a sequence of parameter fields.
// Every field is length-prefixed so distinct parameter tuples can never
// collide by concatenation; a nil field (absent cofactor) is encoded
// distinctly from any value, including zero.
func fingerprint(family CurveFamily, fields ...*big.Int) [32]byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(family))
	var length [4]byte
	for _, field := range fields {
		if field == nil {
			binary.BigEndian.PutUint32(length[:], ^uint32(0))
			h.Write(length[:])
			continue
		}
		b := field.Bytes()
		binary.BigEndian.PutUint32(length[:], uint32(len(b)))
		h.Write(length[:])
		h.Write(b)
	}
	var sum [32]byte
	h.Sum(sum[:0])
	return sum
}
