package curves

import (
	"errors"
	"math/big"
	"testing"
)

func TestJacobi(t *testing.T) {
	p := big.NewInt(23)

	tests := []struct {
		name string
		x    int64
		want int
	}{
		{"zero", 0, 0},
		{"residue", 2, 1}, // 5² = 2 (mod 23)
		{"non-residue", 5, -1},
		{"multiple of p", 46, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Jacobi(big.NewInt(tt.x), p)
			if err != nil {
				t.Fatalf("Jacobi(%d, 23): %v", tt.x, err)
			}
			if got != tt.want {
				t.Errorf("Jacobi(%d, 23) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}

	t.Run("even modulus", func(t *testing.T) {
		if _, err := Jacobi(big.NewInt(3), big.NewInt(8)); !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("expected ErrInvalidParameters, got %v", err)
		}
	})

	t.Run("nil argument", func(t *testing.T) {
		if _, err := Jacobi(nil, p); !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("expected ErrInvalidParameters, got %v", err)
		}
	})
}

func TestSqrtMod(t *testing.T) {
	// One prime from each branch: 23 ≡ 3 (mod 4) takes the direct
	// exponent, 13 ≡ 1 (mod 4) exercises the general fallback.
	for _, prime := range []int64{23, 13} {
		p := big.NewInt(prime)
		t.Run(p.String(), func(t *testing.T) {
			for v := int64(0); v < prime; v++ {
				square := big.NewInt(v * v)
				root, err := SqrtMod(square, p)
				if err != nil {
					t.Fatalf("SqrtMod(%d², %d): %v", v, prime, err)
				}
				check := new(big.Int).Mul(root, root)
				check.Mod(check, p)
				if check.Cmp(new(big.Int).Mod(square, p)) != 0 {
					t.Fatalf("SqrtMod(%d², %d) = %s, whose square is %s", v, prime, root, check)
				}
			}
		})
	}

	t.Run("non-residue", func(t *testing.T) {
		if _, err := SqrtMod(big.NewInt(5), big.NewInt(23)); !errors.Is(err, ErrNonResidue) {
			t.Errorf("expected ErrNonResidue, got %v", err)
		}
	})

	t.Run("large prime 3 mod 4", func(t *testing.T) {
		// secp256k1's field prime.
		p := Secp256k1().P()
		v := big.NewInt(123456789)
		square := new(big.Int).Mul(v, v)
		square.Mod(square, p)
		root, err := SqrtMod(square, p)
		if err != nil {
			t.Fatalf("SqrtMod: %v", err)
		}
		negV := new(big.Int).Sub(p, v)
		if root.Cmp(v) != 0 && root.Cmp(negV) != 0 {
			t.Errorf("SqrtMod returned %s, want ±%s", root, v)
		}
	})

	t.Run("large prime 1 mod 4", func(t *testing.T) {
		// The edwards25519 field prime is 1 mod 4.
		p := Ed25519().P()
		v := big.NewInt(987654321)
		square := new(big.Int).Mul(v, v)
		square.Mod(square, p)
		root, err := SqrtMod(square, p)
		if err != nil {
			t.Fatalf("SqrtMod: %v", err)
		}
		negV := new(big.Int).Sub(p, v)
		if root.Cmp(v) != 0 && root.Cmp(negV) != 0 {
			t.Errorf("SqrtMod returned %s, want ±%s", root, v)
		}
	})

	t.Run("even modulus", func(t *testing.T) {
		if _, err := SqrtMod(big.NewInt(4), big.NewInt(8)); !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("expected ErrInvalidParameters, got %v", err)
		}
	})

	t.Run("reduces argument", func(t *testing.T) {
		// 25 + 23 and 25 must give the same root set mod 23.
		a, err := SqrtMod(big.NewInt(25), big.NewInt(23))
		if err != nil {
			t.Fatal(err)
		}
		b, err := SqrtMod(big.NewInt(48), big.NewInt(23))
		if err != nil {
			t.Fatal(err)
		}
		negA := new(big.Int).Sub(big.NewInt(23), a)
		if b.Cmp(a) != 0 && b.Cmp(negA) != 0 {
			t.Errorf("SqrtMod(48) = %s, want ±%s", b, a)
		}
	})
}
