package ring

import "github.com/esquivel71/chic-pake-go/internal/params"

// Polyvec is a vector of K polynomials, the module-LWE representation of a
// masked Kyber public key's polynomial part.
type Polyvec struct {
	Vec []Poly
}

// New allocates a Polyvec of width k.
func New(k int) Polyvec {
	return Polyvec{Vec: make([]Poly, k)}
}

// Add sets v to the element-wise sum of a and b, without reduction.
func (v *Polyvec) Add(a, b *Polyvec) {
	for i := range v.Vec {
		v.Vec[i].Add(&a.Vec[i], &b.Vec[i])
	}
}

// Sub sets v to the element-wise difference a-b, without reduction.
func (v *Polyvec) Sub(a, b *Polyvec) {
	for i := range v.Vec {
		v.Vec[i].Sub(&a.Vec[i], &b.Vec[i])
	}
}

// Reduce applies BarrettReduce to every coefficient of every element.
func (v *Polyvec) Reduce() {
	for i := range v.Vec {
		v.Vec[i].Reduce()
	}
}

// ToBytes serializes v into r, which must have room for K*polyBytes bytes.
func (v *Polyvec) ToBytes(r []byte) {
	for i := range v.Vec {
		v.Vec[i].ToBytes(r[i*params.N*12/8:])
	}
}

// FromBytes deserializes v from a, the inverse of ToBytes.
func (v *Polyvec) FromBytes(a []byte) {
	for i := range v.Vec {
		v.Vec[i].FromBytes(a[i*params.N*12/8:])
	}
}

// Wipe zeros every coefficient of v, for password-derived masking vectors a
// caller is done with.
func (v *Polyvec) Wipe() {
	for i := range v.Vec {
		for j := range v.Vec[i].Coeffs {
			v.Vec[i].Coeffs[j] = 0
		}
	}
}
