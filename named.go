package curves

import (
	"crypto/elliptic"
	"math/big"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
)

// Registered curve names, usable with CurveByName.
const (
	NameSecp256k1  = "secp256k1"
	NameP256       = "p256"
	NameP384       = "p384"
	NameP521       = "p521"
	NameEd25519    = "ed25519"
	NameEd448      = "ed448"
	NameBabyJubJub = "babyjubjub"
)

var (
	registryOnce sync.Once
	registry     map[string]Curve
)

// CurveByName returns the registered curve record for the given name.
// Lookup is case-insensitive. Unknown names return ErrUnknownCurve.
//
// Returned records are shared: they are immutable, so sharing is safe.
func CurveByName(name string) (Curve, error) {
	registryOnce.Do(buildRegistry)
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnknownCurve.WithDetails("%q", name)
	}
	return c, nil
}

// RegisteredCurves returns the names of all registered curves.
func RegisteredCurves() []string {
	registryOnce.Do(buildRegistry)
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Secp256k1 returns the secp256k1 record, parameters sourced from
// btcec. a = 0, b = 7, cofactor 1.
func Secp256k1() *WeierstrassCurve { return mustLookup(NameSecp256k1).(*WeierstrassCurve) }

// P256 returns the NIST P-256 record (a = -3 mod p).
func P256() *WeierstrassCurve { return mustLookup(NameP256).(*WeierstrassCurve) }

// P384 returns the NIST P-384 record (a = -3 mod p).
func P384() *WeierstrassCurve { return mustLookup(NameP384).(*WeierstrassCurve) }

// P521 returns the NIST P-521 record (a = -3 mod p).
func P521() *WeierstrassCurve { return mustLookup(NameP521).(*WeierstrassCurve) }

// Ed25519 returns the edwards25519 record with the RFC 8032
// parameters: p = 2^255-19, a = -1, d = -121665/121666, cofactor 8.
func Ed25519() *EdwardsCurve { return mustLookup(NameEd25519).(*EdwardsCurve) }

// Ed448 returns the edwards448 (Goldilocks) record with the RFC 8032
// parameters: p = 2^448-2^224-1, a = 1, d = -39081, cofactor 4.
func Ed448() *EdwardsCurve { return mustLookup(NameEd448).(*EdwardsCurve) }

// BabyJubJub returns the Baby Jubjub record over the BN254 scalar
// field, parameters sourced from gnark-crypto.
func BabyJubJub() *EdwardsCurve { return mustLookup(NameBabyJubJub).(*EdwardsCurve) }

func mustLookup(name string) Curve {
	c, err := CurveByName(name)
	if err != nil {
		panic(err)
	}
	return c
}

func buildRegistry() {
	registry = map[string]Curve{
		NameSecp256k1:  newSecp256k1(),
		NameP256:       newNIST(NameP256, elliptic.P256()),
		NameP384:       newNIST(NameP384, elliptic.P384()),
		NameP521:       newNIST(NameP521, elliptic.P521()),
		NameEd25519:    newEd25519(),
		NameEd448:      newEd448(),
		NameBabyJubJub: newBabyJubJub(),
	}
}

func newSecp256k1() *WeierstrassCurve {
	params := btcec.S256().Params()
	c, err := NewWeierstrassCurve(NameSecp256k1, params.P, big.NewInt(0), params.B)
	if err != nil {
		panic(err)
	}
	c, err = c.WithCofactor(one)
	if err != nil {
		panic(err)
	}
	return c
}

// newNIST builds a record from a stdlib NIST curve. The standard
// curves all use a = -3; crypto/elliptic leaves it implicit.
func newNIST(name string, curve elliptic.Curve) *WeierstrassCurve {
	params := curve.Params()
	a := new(big.Int).Sub(params.P, three)
	c, err := NewWeierstrassCurve(name, params.P, a, params.B)
	if err != nil {
		panic(err)
	}
	c, err = c.WithCofactor(one)
	if err != nil {
		panic(err)
	}
	return c
}

func newEd25519() *EdwardsCurve {
	p := mustBigInt("57896044618658097711785492504343953926634992332820282019728792003956564819949")
	a := new(big.Int).Sub(p, one)
	d := mustBigInt("37095705934669439343138083508754565189542113879843219016388785533085940283555")
	order := mustBigInt("7237005577332262213973186563042994240857116359379907606001950938285454250989")
	c, err := NewEdwardsCurve(NameEd25519, p, a, d, big.NewInt(8), order)
	if err != nil {
		panic(err)
	}
	return c
}

func newEd448() *EdwardsCurve {
	p := mustBigInt("726838724295606890549323807888004534353641360687318060281490199180612328166730772686396383698676545930088884461843637361053498018365439")
	d := new(big.Int).Sub(p, big.NewInt(39081))
	order := mustBigInt("181709681073901722637330951972001133588410340171829515070372549795146003961539585716195755291692375963310293709091662304773755859649779")
	c, err := NewEdwardsCurve(NameEd448, p, one, d, four, order)
	if err != nil {
		panic(err)
	}
	return c
}

func newBabyJubJub() *EdwardsCurve {
	params := twistededwards.GetEdwardsCurve()
	a := params.A.BigInt(new(big.Int))
	d := params.D.BigInt(new(big.Int))
	order := new(big.Int).Set(&params.Order)
	c, err := NewEdwardsCurve(NameBabyJubJub, fr.Modulus(), a, d, big.NewInt(8), order)
	if err != nil {
		panic(err)
	}
	return c
}

func mustBigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curves: malformed curve constant")
	}
	return v
}
