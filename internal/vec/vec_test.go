package vec

import (
	"testing"

	"github.com/quannguyen247/dilithium-dev/internal/ring"
	"github.com/quannguyen247/dilithium-dev/internal/sample"
)

func TestAddSubLift(t *testing.T) {
	a := make(Vec, 2)
	b := make(Vec, 2)
	a[0][0], a[1][0] = 5, -3
	b[0][0], b[1][0] = 2, 4

	c := make(Vec, 2)
	Add(c, a, b)
	if c[0][0] != 7 || c[1][0] != 1 {
		t.Fatalf("Add: got %v", []int32{c[0][0], c[1][0]})
	}
	Sub(c, a, b)
	if c[0][0] != 3 || c[1][0] != -7 {
		t.Fatalf("Sub: got %v", []int32{c[0][0], c[1][0]})
	}
}

func TestNTTRoundTripLift(t *testing.T) {
	a := make(Vec, 3)
	for i := range a {
		for j := range a[i] {
			a[i][j] = int32(j % 1000)
		}
	}
	got := make(Vec, 3)
	copy(got, a)
	NTT(got)
	InvNTT(got)
	for i := range a {
		for j := range a[i] {
			gc := got[i][j] % 8380417
			if gc < 0 {
				gc += 8380417
			}
			wc := a[i][j] % 8380417
			if wc < 0 {
				wc += 8380417
			}
			if gc != wc {
				t.Fatalf("vec %d coeff %d: got %d want %d", i, j, gc, wc)
			}
		}
	}
}

func TestExpandAMatchesUniform(t *testing.T) {
	var rho [32]byte
	rho[0] = 42
	a := ExpandA(rho[:], 2, 3)
	if len(a) != 2 || len(a[0]) != 3 {
		t.Fatalf("ExpandA shape = %dx%d, want 2x3", len(a), len(a[0]))
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want := sample.Uniform(rho[:], uint16(i)<<8|uint16(j))
			if a[i][j] != want {
				t.Fatalf("A[%d][%d] does not match poly_uniform(rho, (i<<8)|j)", i, j)
			}
		}
	}
}

func TestExpandADeterministic(t *testing.T) {
	var rho [32]byte
	rho[3] = 7
	a1 := ExpandA(rho[:], 4, 4)
	a2 := ExpandA(rho[:], 4, 4)
	for i := range a1 {
		for j := range a1[i] {
			if a1[i][j] != a2[i][j] {
				t.Fatalf("ExpandA is not deterministic at [%d][%d]", i, j)
			}
		}
	}
}

func TestMakeHintVec(t *testing.T) {
	const gamma2 = 8380417 / 32 // (Q-1)/32 branch
	z0 := make(Vec, 2)
	z1 := make(Vec, 2)

	// z0[0][0] inside [-gamma2, gamma2]: no hint.
	z0[0][0] = 10
	z1[0][0] = 3
	// z0[0][1] outside the bound: hint set.
	z0[0][1] = int32(gamma2) + 1
	z1[0][1] = 5
	// z0[1][0] exactly -gamma2 with a1 != 0: hint set.
	z0[1][0] = -int32(gamma2)
	z1[1][0] = 1

	h, popcount := MakeHintVec(z0, z1, gamma2)
	if len(h) != 2 {
		t.Fatalf("len(h) = %d, want 2", len(h))
	}
	if h[0][0] != 0 {
		t.Errorf("h[0][0] = %d, want 0", h[0][0])
	}
	if h[0][1] != 1 {
		t.Errorf("h[0][1] = %d, want 1", h[0][1])
	}
	if h[1][0] != 1 {
		t.Errorf("h[1][0] = %d, want 1", h[1][0])
	}
	if popcount != 2 {
		t.Errorf("popcount = %d, want 2", popcount)
	}
}

func TestMulVecSingleEntry(t *testing.T) {
	var rho [32]byte
	a := ExpandA(rho[:], 1, 1)
	v := make(Vec, 1)
	v[0][0] = 1
	v[0][1] = 2
	ring.NTT(&v[0])

	got := MulVec(a, v)

	var want ring.Poly
	ring.PointwiseMontgomery(&want, &a[0][0], &v[0])
	if got[0] != want {
		t.Fatalf("MulVec with a single row/column should equal PointwiseMontgomery")
	}
}
