package ring

import "github.com/esquivel71/chic-pake-go/internal/params"

// Poly is an element of R_q = Z_q[X]/(X^N+1): coeffs[0] + X*coeffs[1] + ... +
// X^(N-1)*coeffs[N-1]. Coefficients are signed and, after Reduce, lie in the
// centered range (-(q-1)/2 .. (q-1)/2).
type Poly struct {
	Coeffs [params.N]int16
}

// Add sets p to the coefficient-wise sum of a and b, without reduction.
func (p *Poly) Add(a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = a.Coeffs[i] + b.Coeffs[i]
	}
}

// Sub sets p to the coefficient-wise difference a-b, without reduction.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = a.Coeffs[i] - b.Coeffs[i]
	}
}

// Reduce applies BarrettReduce to every coefficient of p.
func (p *Poly) Reduce() {
	for i, c := range p.Coeffs {
		p.Coeffs[i] = BarrettReduce(c)
	}
}

// ToBytes serializes p into r, which must have room for polyBytes bytes:
// two coefficients packed little-endian into three bytes, after lifting
// negative coefficients into [0, q).
func (p *Poly) ToBytes(r []byte) {
	for i := 0; i < params.N/2; i++ {
		t0 := p.Coeffs[2*i]
		t0 += (t0 >> 15) & q
		t1 := p.Coeffs[2*i+1]
		t1 += (t1 >> 15) & q

		r[3*i+0] = byte(t0)
		r[3*i+1] = byte((t0 >> 8) | (t1 << 4))
		r[3*i+2] = byte(t1 >> 4)
	}
}

// FromBytes deserializes p from a, the inverse of ToBytes. The recovered
// coefficients are unsigned 12-bit values reinterpreted as signed; callers
// that need the centered representative must call Reduce.
func (p *Poly) FromBytes(a []byte) {
	for i := 0; i < params.N/2; i++ {
		t0 := uint16(a[3*i+0]) | (uint16(a[3*i+1]&0x0f) << 8)
		t1 := uint16(a[3*i+1]>>4) | (uint16(a[3*i+2]) << 4)

		p.Coeffs[2*i+0] = int16(t0)
		p.Coeffs[2*i+1] = int16(t1)
	}
}
