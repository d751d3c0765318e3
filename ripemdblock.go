package mixhash

import (
	"math/bits"

	"github.com/hawkynt/mixhash/internal/consts"
)

// mdF selects the RIPEMD Boolean function for step i. The left line walks
// the table forward; the right line walks it backward by passing a mirrored
// step index.
func mdF(i int, x, y, z uint32) uint32 {
	switch i / 16 {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

// ripemd160Block runs the 80-step dual-pipeline round function and folds
// both lines into the five chaining words with the rotated cross-line sum.
func ripemd160Block(s *[8]uint32, x *[16]uint32) {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	aa, bb, cc, dd, ee := a, b, c, d, e

	for i := 0; i < 80; i++ {
		alpha := a + mdF(i, b, c, d) + x[consts.MDSelect[i]] + consts.MDConst160[i/16]
		alpha = bits.RotateLeft32(alpha, int(consts.MDShift[i])) + e
		a, b, c, d, e = e, alpha, b, bits.RotateLeft32(c, 10), d

		alpha = aa + mdF(79-i, bb, cc, dd) + x[consts.MDSelectP[i]] + consts.MDConst160P[i/16]
		alpha = bits.RotateLeft32(alpha, int(consts.MDShiftP[i])) + ee
		aa, bb, cc, dd, ee = ee, alpha, bb, bits.RotateLeft32(cc, 10), dd
	}

	t := s[1] + c + dd
	s[1] = s[2] + d + ee
	s[2] = s[3] + e + aa
	s[3] = s[4] + a + bb
	s[4] = s[0] + b + cc
	s[0] = t
}

// ripemd256Block runs the 64-step dual-pipeline round function. The two
// lines exchange one register at each quartile boundary (a after step 16,
// b after 32, c after 48, d after the last step); each chaining word then
// takes the sum with a single final register, with no cross-line mixing.
func ripemd256Block(s *[8]uint32, x *[16]uint32) {
	a, b, c, d := s[0], s[1], s[2], s[3]
	aa, bb, cc, dd := s[4], s[5], s[6], s[7]

	for i := 0; i < 64; i++ {
		alpha := a + mdF(i, b, c, d) + x[consts.MDSelect[i]] + consts.MDConst256[i/16]
		a, b, c, d = d, bits.RotateLeft32(alpha, int(consts.MDShift[i])), b, c

		alpha = aa + mdF(63-i, bb, cc, dd) + x[consts.MDSelectP[i]] + consts.MDConst256P[i/16]
		aa, bb, cc, dd = dd, bits.RotateLeft32(alpha, int(consts.MDShiftP[i])), bb, cc

		switch i {
		case 15:
			a, aa = aa, a
		case 31:
			b, bb = bb, b
		case 47:
			c, cc = cc, c
		case 63:
			d, dd = dd, d
		}
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += aa
	s[5] += bb
	s[6] += cc
	s[7] += dd
}
