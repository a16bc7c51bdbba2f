package curves

import (
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// Jacobi returns the Jacobi symbol (x/n). n must be odd and positive;
// for prime n the symbol is the Legendre symbol: 1 for quadratic
// residues, -1 for non-residues, 0 when x ≡ 0 (mod n).
func Jacobi(x, n *big.Int) (int, error) {
	if n == nil || n.Sign() <= 0 || n.Bit(0) == 0 {
		return 0, ErrInvalidParameters.WithDetails("jacobi modulus must be odd and positive")
	}
	if x == nil {
		return 0, ErrInvalidParameters.WithDetails("jacobi argument is nil")
	}
	return big.Jacobi(x, n), nil
}

// SqrtMod returns y with y² ≡ a (mod p) for an odd prime p. Primes
// p ≡ 3 (mod 4) take the direct exponentiation a^((p+1)/4); other
// primes fall back to Tonelli-Shanks. The returned root is whichever
// the algorithm produces; callers needing a specific parity negate it
// mod p.
//
// Returns ErrNonResidue when a has no square root mod p, rather than
// leaving the result undefined.
func SqrtMod(a, p *big.Int) (*big.Int, error) {
	if p == nil || p.Cmp(two) <= 0 || p.Bit(0) == 0 {
		return nil, ErrInvalidParameters.WithDetails("square-root modulus must be an odd prime")
	}
	if a == nil {
		return nil, ErrInvalidParameters.WithDetails("square-root argument is nil")
	}

	v := new(big.Int).Mod(a, p)
	if v.Sign() == 0 {
		return v, nil
	}
	if big.Jacobi(v, p) == -1 {
		return nil, ErrNonResidue
	}

	if new(big.Int).Mod(p, four).Cmp(three) == 0 {
		// y = v^((p+1)/4) mod p
		exp := new(big.Int).Add(p, one)
		exp.Rsh(exp, 2)
		return new(big.Int).Exp(v, exp, p), nil
	}

	// General case; v is a residue, so ModSqrt cannot fail here.
	return new(big.Int).ModSqrt(v, p), nil
}
