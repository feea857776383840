package ring

import "github.com/quannguyen247/dilithium-dev/internal/params"

// NTT applies the forward, negacyclic Number-Theoretic Transform to a in
// place using Cooley-Tukey butterflies over 8 layers. Coefficients grow
// across layers; the documented output bound is |a[i]| < 9*Q, so callers
// that need a reduced result call Reduce afterward. a need not be centrally
// reduced on input, but very large inputs can exceed the Montgomery
// reduction's |x| < Q*2^31 bound; callers normally call this on freshly
// sampled or freshly reduced polynomials.
func NTT(a *Poly) {
	k := 0
	for length := 128; length > 0; length >>= 1 {
		for start := 0; start < n; start += 2 * length {
			k++
			zeta := int64(zetas[k])
			for j := start; j < start+length; j++ {
				t := MontgomeryReduce(zeta * int64(a[j+length]))
				a[j+length] = a[j] - t
				a[j] = a[j] + t
			}
		}
	}
}

// InvNTT applies the inverse NTT using Gentleman-Sande butterflies with
// negated zetas consumed in reverse order, then scales every coefficient
// by the precomputed constant F = (256^-1 mod Q) * 2^32 mod Q via
// MontgomeryReduce. With the zetas table used here, NTT and InvNTT are
// exact inverses: InvNTT(NTT(a)) == a (see TestNTTRoundTrip in poly_test.go), consistent with
// the "or equals a directly" branch of the documented round-trip property.
func InvNTT(a *Poly) {
	k := n
	for length := 1; length < n; length <<= 1 {
		for start := 0; start < n; start += 2 * length {
			k--
			zeta := -int64(zetas[k])
			for j := start; j < start+length; j++ {
				t := a[j]
				a[j] = t + a[j+length]
				a[j+length] = t - a[j+length]
				a[j+length] = MontgomeryReduce(zeta * int64(a[j+length]))
			}
		}
	}
	f := int64(params.MontgomeryF)
	for j := range a {
		a[j] = MontgomeryReduce(f * int64(a[j]))
	}
}
