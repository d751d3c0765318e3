package mixhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/hawkynt/mixhash/internal/consts"
)

// CityHash64 dispatches on total input length, so unlike the block engines
// its controller holds the whole message until finalization.

func fetch64(s []byte) uint64 { return binary.LittleEndian.Uint64(s) }
func fetch32(s []byte) uint32 { return binary.LittleEndian.Uint32(s) }

// ror64 is the right rotation CityHash is defined in terms of.
func ror64(v uint64, shift int) uint64 { return bits.RotateLeft64(v, -shift) }

func shiftMix(v uint64) uint64 { return v ^ (v >> 47) }

func cityHashLen16(u, v uint64) uint64 {
	return cityHashLen16Mul(u, v, consts.CityKMul)
}

func cityHashLen16Mul(u, v, mul uint64) uint64 {
	a := (u ^ v) * mul
	a ^= a >> 47
	b := (v ^ a) * mul
	b ^= b >> 47
	b *= mul
	return b
}

// cityLen0to16 covers the 0, 1-3, 4-7 and 8-16 byte closed forms. No loops,
// only direct arithmetic on the boundary bytes.
func cityLen0to16(s []byte) uint64 {
	n := uint64(len(s))
	if n >= 8 {
		mul := consts.CityK2 + n*2
		a := fetch64(s) + consts.CityK2
		b := fetch64(s[n-8:])
		c := ror64(b, 37)*mul + a
		d := (ror64(a, 25) + b) * mul
		return cityHashLen16Mul(c, d, mul)
	}
	if n >= 4 {
		mul := consts.CityK2 + n*2
		a := uint64(fetch32(s))
		return cityHashLen16Mul(n+(a<<3), uint64(fetch32(s[n-4:])), mul)
	}
	if n > 0 {
		a := uint64(s[0])
		b := uint64(s[n>>1])
		c := uint64(s[n-1])
		y := a + (b << 8)
		z := n + (c << 2)
		return shiftMix(y*consts.CityK2^z*consts.CityK0) * consts.CityK2
	}
	return consts.CityK2
}

func cityLen17to32(s []byte) uint64 {
	n := uint64(len(s))
	mul := consts.CityK2 + n*2
	a := fetch64(s) * consts.CityK1
	b := fetch64(s[8:])
	c := fetch64(s[n-8:]) * mul
	d := fetch64(s[n-16:]) * consts.CityK2
	return cityHashLen16Mul(
		ror64(a+b, 43)+ror64(c, 30)+d,
		a+ror64(b+consts.CityK2, 18)+c,
		mul)
}

func cityLen33to64(s []byte) uint64 {
	n := uint64(len(s))
	mul := consts.CityK2 + n*2
	a := fetch64(s) * consts.CityK2
	b := fetch64(s[8:])
	c := fetch64(s[n-24:])
	d := fetch64(s[n-32:])
	e := fetch64(s[16:]) * consts.CityK2
	f := fetch64(s[24:]) * 9
	g := fetch64(s[n-8:])
	h := fetch64(s[n-16:]) * mul

	u := ror64(a+g, 43) + (ror64(b, 30)+c)*9
	v := ((a + g) ^ d) + f + 1
	w := bits.ReverseBytes64((u+v)*mul) + h
	x := ror64(e+f, 42) + c
	y := (bits.ReverseBytes64((v+w)*mul) + g) * mul
	z := e + f + c

	a = bits.ReverseBytes64((x+z)*mul+y) + b
	b = shiftMix((z+a)*mul+d+h) * mul
	return b + x
}

// cityWeakMix is the weak mixing helper: two accumulator seeds combined
// with four fetched words from a 32-byte chunk.
func cityWeakMix(s []byte, a, b uint64) (uint64, uint64) {
	w := fetch64(s)
	x := fetch64(s[8:])
	y := fetch64(s[16:])
	z := fetch64(s[24:])

	a += w
	b = ror64(b+a+z, 21)
	c := a
	a += x
	a += y
	b += ror64(a, 44)
	return a + z, b + c
}

// cityHash64 is CityHash64 without seeds, v1.1.
func cityHash64(s []byte) uint64 {
	n := len(s)
	if n <= 32 {
		if n <= 16 {
			return cityLen0to16(s)
		}
		return cityLen17to32(s)
	}
	if n <= 64 {
		return cityLen33to64(s)
	}

	// For inputs over 64 bytes: a 56-byte seed block from the tail, then
	// 64-byte chunks mixed through two accumulator pairs.
	x := fetch64(s[n-40:])
	y := fetch64(s[n-16:]) + fetch64(s[n-56:])
	z := cityHashLen16(fetch64(s[n-48:])+uint64(n), fetch64(s[n-24:]))
	v1, v2 := cityWeakMix(s[n-64:], uint64(n), z)
	w1, w2 := cityWeakMix(s[n-32:], y+consts.CityK1, x)
	x = x*consts.CityK1 + fetch64(s)

	for rem := (n - 1) &^ 63; rem != 0; rem -= 64 {
		x = ror64(x+y+v1+fetch64(s[8:]), 37) * consts.CityK1
		y = ror64(y+v2+fetch64(s[48:]), 42) * consts.CityK1
		x ^= w2
		y += v1 + fetch64(s[40:])
		z = ror64(z+w1, 33) * consts.CityK1
		v1, v2 = cityWeakMix(s, v2*consts.CityK1, x+w1)
		w1, w2 = cityWeakMix(s[32:], z+w2, y+fetch64(s[16:]))
		z, x = x, z
		s = s[64:]
	}

	return cityHashLen16(
		cityHashLen16(v1, w1)+shiftMix(y)*consts.CityK1+z,
		cityHashLen16(v2, w2)+x)
}

// cityMix adapts the one-shot CityHash64 to the streaming contract. The
// length-banded dispatch and tail reads need the whole message, so Feed
// accumulates and the hash runs once at finalization.
type cityMix struct {
	data []byte
}

func (c *cityMix) update(p []byte) {
	c.data = append(c.data, p...)
}

func (c *cityMix) finalize(out []byte) {
	binary.BigEndian.PutUint64(out, cityHash64(c.data))
}

func (c *cityMix) reset() {
	c.data = nil
}

func (c *cityMix) blockSize() int { return 64 }
