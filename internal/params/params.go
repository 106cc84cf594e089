// Package params carries the Kyber parameterization the rest of the module
// is generic over: ring dimensions, vector width, and the derived wire sizes
// of a public key, secret key, and ciphertext.
//
// The shape mirrors Yawning/kyber's params.go ParameterSet, adapted to the
// module-LWE ring used by the CHIC/HIC construction (centered coefficients
// mod 3329, 12-bit packed serialization) instead of that teacher's
// round-2-era q=7681/13-bit scheme, and to the real Kyber-round-3 secret-key
// and ciphertext sizes (those are opaque KEM blob sizes per spec.md §3 and
// are not derived from the ring layer here).
package params

const (
	// SymBytes is the symmetric security parameter: the size in bytes of
	// passwords, session ids, shared secrets, and seeds.
	SymBytes = 32

	// N is the degree of the polynomial ring Z_q[X]/(X^N+1).
	N = 256

	// Q is the polynomial modulus.
	Q = 3329

	// polyBytes is the packed size of a single polynomial (12 bits per
	// coefficient, two coefficients per three bytes).
	polyBytes = N * 12 / 8
)

// Set is a Kyber parameter set: the vector width K and the sizes derived
// from it plus the opaque KEM blob sizes for that width.
type Set struct {
	name string

	k int

	polyVecBytes    int
	publicKeyBytes  int
	secretKeyBytes  int
	cipherTextBytes int
}

// Name returns the name of the parameter set.
func (p *Set) Name() string { return p.name }

// K returns the module-LWE vector width.
func (p *Set) K() int { return p.k }

// PolyVecBytes returns the packed size of a Polyvec of this width.
func (p *Set) PolyVecBytes() int { return p.polyVecBytes }

// PublicKeyBytes returns the size of a Kyber public key: PolyVecBytes plus
// the SymBytes-sized seed rho.
func (p *Set) PublicKeyBytes() int { return p.publicKeyBytes }

// SecretKeyBytes returns the size of the opaque KEM secret key blob.
func (p *Set) SecretKeyBytes() int { return p.secretKeyBytes }

// CipherTextBytes returns the size of the opaque KEM ciphertext blob.
func (p *Set) CipherTextBytes() int { return p.cipherTextBytes }

// Msg1Len returns the length of CHIC message 1 (the HIC output over a public
// key).
func (p *Set) Msg1Len() int { return p.publicKeyBytes }

// Msg2Len returns the length of CHIC message 2 (confirmation tag plus
// ciphertext).
func (p *Set) Msg2Len() int { return SymBytes + p.cipherTextBytes }

func newSet(name string, k, secretKeyBytes, cipherTextBytes int) *Set {
	polyVecBytes := k * polyBytes
	return &Set{
		name:            name,
		k:               k,
		polyVecBytes:    polyVecBytes,
		publicKeyBytes:  polyVecBytes + SymBytes,
		secretKeyBytes:  secretKeyBytes,
		cipherTextBytes: cipherTextBytes,
	}
}

var (
	// Kyber512 aims for security equivalent to AES-128.
	Kyber512 = newSet("Kyber-512", 2, 1632, 768)

	// Kyber768 aims for security equivalent to AES-192.
	Kyber768 = newSet("Kyber-768", 3, 2400, 1088)

	// Kyber1024 aims for security equivalent to AES-256.
	Kyber1024 = newSet("Kyber-1024", 4, 3168, 1568)
)
