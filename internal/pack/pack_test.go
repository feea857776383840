package pack

import (
	"math/rand"
	"testing"

	"github.com/quannguyen247/dilithium-dev/internal/params"
	"github.com/quannguyen247/dilithium-dev/internal/ring"
)

func randomBoundedPoly(r *rand.Rand, bound int32) ring.Poly {
	var p ring.Poly
	for i := range p {
		p[i] = r.Int31n(2*bound+1) - bound
	}
	return p
}

func TestEtaRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, eta := range []int{2, 4} {
		a := randomBoundedPoly(r, int32(eta))
		size := PolyEtaBytes2
		if eta == 4 {
			size = PolyEtaBytes4
		}
		buf := make([]byte, size)
		PackEta(buf, &a, eta)
		var got ring.Poly
		UnpackEta(&got, buf, eta)
		if got != a {
			t.Fatalf("eta=%d: round trip mismatch", eta)
		}
	}
}

func TestT1RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	var a ring.Poly
	for i := range a {
		a[i] = r.Int31n(1024)
	}
	buf := make([]byte, PolyT1Bytes)
	PackT1(buf, &a)
	var got ring.Poly
	UnpackT1(&got, buf)
	if got != a {
		t.Fatalf("t1 round trip mismatch")
	}
}

func TestT0RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	var a ring.Poly
	half := int32(1) << (params.D - 1)
	for i := range a {
		a[i] = r.Int31n(2*half) - half + 1
	}
	buf := make([]byte, PolyT0Bytes)
	PackT0(buf, &a)
	var got ring.Poly
	UnpackT0(&got, buf)
	if got != a {
		t.Fatalf("t0 round trip mismatch")
	}
}

// TestZRoundTrip is the literal round-trip scenario from spec section 8:
// polyz_unpack(polyz_pack(a)) = a for any a with coefficients in
// (-GAMMA1, GAMMA1], for both supported GAMMA1 values.
func TestZRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, gamma1 := range []int{1 << 17, 1 << 19} {
		var a ring.Poly
		for i := range a {
			a[i] = r.Int31n(int32(2*gamma1)) - int32(gamma1) + 1
		}
		size := PolyZBytes17
		if gamma1 == 1<<19 {
			size = PolyZBytes19
		}
		buf := make([]byte, size)
		PackZ(buf, &a, gamma1)
		var got ring.Poly
		UnpackZ(&got, buf, gamma1)
		if got != a {
			t.Fatalf("gamma1=%d: z round trip mismatch", gamma1)
		}
	}
}

func TestW1RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, gamma2 := range []int{(params.Q - 1) / 88, (params.Q - 1) / 32} {
		m := int32(16)
		size := PolyW1Bytes4
		if gamma2 == (params.Q-1)/88 {
			m = 44
			size = PolyW1Bytes6
		}
		var a ring.Poly
		for i := range a {
			a[i] = r.Int31n(m)
		}
		buf := make([]byte, size)
		PackW1(buf, &a, gamma2)
		var got ring.Poly
		UnpackW1(&got, buf, gamma2)
		if got != a {
			t.Fatalf("gamma2=%d: w1 round trip mismatch", gamma2)
		}
	}
}

// TestHintPackSingleBit is the literal scenario from spec section 8: a
// K-vector with a single 1-bit at (poly 0, coeff 5) packs to omega+k
// bytes whose first byte is 5, whose remaining omega-1 head bytes are 0,
// and whose k trailing popcount bytes are all 1.
func TestHintPackSingleBit(t *testing.T) {
	const k = 4
	const omega = 80
	hints := make([]ring.Poly, k)
	hints[0][5] = 1

	buf := make([]byte, omega+k)
	PackHint(buf, hints, omega)

	if buf[0] != 5 {
		t.Fatalf("first byte = %d, want 5", buf[0])
	}
	for i := 1; i < omega; i++ {
		if buf[i] != 0 {
			t.Fatalf("head byte %d = %d, want 0", i, buf[i])
		}
	}
	for i := 0; i < k; i++ {
		if buf[omega+i] != 1 {
			t.Fatalf("popcount byte %d = %d, want 1", i, buf[omega+i])
		}
	}

	got := make([]ring.Poly, k)
	if err := UnpackHint(got, buf, omega); err != nil {
		t.Fatalf("UnpackHint: %v", err)
	}
	for i := range got {
		if got[i] != hints[i] {
			t.Fatalf("poly %d: round trip mismatch", i)
		}
	}
}

func TestHintRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	const k = 6
	const omega = 55
	for trial := 0; trial < 50; trial++ {
		hints := make([]ring.Poly, k)
		total := 0
		for i := range hints {
			for j := range hints[i] {
				if total < omega && r.Intn(20) == 0 {
					hints[i][j] = 1
					total++
				}
			}
		}
		buf := make([]byte, omega+k)
		PackHint(buf, hints, omega)
		got := make([]ring.Poly, k)
		if err := UnpackHint(got, buf, omega); err != nil {
			t.Fatalf("trial %d: UnpackHint: %v", trial, err)
		}
		for i := range got {
			if got[i] != hints[i] {
				t.Fatalf("trial %d: poly %d mismatch", trial, i)
			}
		}
	}
}

func TestUnpackHintRejectsNonMonotone(t *testing.T) {
	const k = 2
	const omega = 4
	buf := []byte{5, 3, 0, 0, 2, 2}
	got := make([]ring.Poly, k)
	if err := UnpackHint(got, buf, omega); err != ErrMalformedHint {
		t.Fatalf("expected ErrMalformedHint for non-monotone indices, got %v", err)
	}
}

func TestUnpackHintRejectsPopcountRegression(t *testing.T) {
	const k = 2
	const omega = 4
	buf := []byte{1, 2, 0, 0, 2, 1}
	got := make([]ring.Poly, k)
	if err := UnpackHint(got, buf, omega); err != ErrMalformedHint {
		t.Fatalf("expected ErrMalformedHint for popcount regression, got %v", err)
	}
}

func TestUnpackHintRejectsOverQuota(t *testing.T) {
	const k = 2
	const omega = 4
	buf := []byte{1, 2, 3, 4, 2, 5}
	got := make([]ring.Poly, k)
	if err := UnpackHint(got, buf, omega); err != ErrMalformedHint {
		t.Fatalf("expected ErrMalformedHint for over-quota popcount, got %v", err)
	}
}
