package dilithiumcore

import (
	"encoding/hex"
	"errors"
	"testing"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decodeHex(%q): %v", s, err)
	}
	return b
}

// TestSpongeVectors checks the four literal empty-string SHA3/SHAKE test vectors from
// spec section 8 through the root package's re-exported one-shot forms.
func TestSpongeVectors(t *testing.T) {
	var got256 [32]byte
	Sha3_256(&got256, nil)
	if want := decodeHex(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"); hex.EncodeToString(got256[:]) != hex.EncodeToString(want) {
		t.Fatalf("Sha3_256(\"\") = %x", got256)
	}

	var got512 [64]byte
	Sha3_512(&got512, nil)
	want512 := decodeHex(t, "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26")
	if hex.EncodeToString(got512[:]) != hex.EncodeToString(want512) {
		t.Fatalf("Sha3_512(\"\") = %x", got512)
	}

	got := make([]byte, 32)
	Shake128(got, nil)
	want128 := decodeHex(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26")
	if hex.EncodeToString(got) != hex.EncodeToString(want128) {
		t.Fatalf("Shake128(\"\", 32) = %x", got)
	}

	Shake256(got, nil)
	want256 := decodeHex(t, "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f")
	if hex.EncodeToString(got) != hex.EncodeToString(want256) {
		t.Fatalf("Shake256(\"\", 32) = %x", got)
	}
}

func TestForLevelTable(t *testing.T) {
	cases := []struct {
		level                   int
		k, l, eta, tau, beta    int
		gamma1, gamma2, omega   int
		cTildeBytes             int
	}{
		{2, 4, 4, 2, 39, 78, 1 << 17, (Q - 1) / 88, 80, 32},
		{3, 6, 5, 4, 49, 196, 1 << 19, (Q - 1) / 32, 55, 48},
		{5, 8, 7, 2, 60, 120, 1 << 19, (Q - 1) / 32, 75, 64},
	}
	for _, c := range cases {
		p, err := ForLevel(c.level)
		if err != nil {
			t.Fatalf("ForLevel(%d): %v", c.level, err)
		}
		if p.K != c.k || p.L != c.l || p.Eta != c.eta || p.Tau != c.tau || p.Beta != c.beta ||
			p.Gamma1 != c.gamma1 || p.Gamma2 != c.gamma2 || p.Omega != c.omega || p.CTildeBytes != c.cTildeBytes {
			t.Fatalf("ForLevel(%d) = %+v, want %+v", c.level, p, c)
		}
	}
}

func TestForLevelUnknown(t *testing.T) {
	if _, err := ForLevel(4); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("ForLevel(4) error = %v, want ErrUnknownLevel", err)
	}
}

const Q = 8380417
