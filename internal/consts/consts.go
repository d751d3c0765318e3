// Package consts holds the static tables shared by the hash engines: round
// constants, rotation offsets, message-word schedules, and mixing primes.
// Everything here is read-only and safe to share across instances.
package consts

// Keccak-f[1600] round constants, applied to lane (0,0) in the iota step.
var KeccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// Rotation offsets for the rho step, in the lane order visited by the
// combined rho/pi walk.
var KeccakRotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// Destination lane indices for the pi step. The walk starts at lane 1 and
// chases the permutation cycle, so the two tables are indexed together.
var KeccakPiln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// Xoodoo round constants, injected into lane (0,0) each round.
var XoodooRC = [12]uint32{
	0x058, 0x038, 0x3C0, 0x0D0, 0x120, 0x014,
	0x060, 0x02C, 0x380, 0x0F0, 0x1A0, 0x012,
}

//
// RIPEMD family tables. The 160-bit construction runs five rounds of 16
// steps per line; the 256-bit construction runs four, using the first 64
// entries of the same schedules.
//

// Message word selection, left line.
var MDSelect = [80]uint{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

// Left-line rotate amounts.
var MDShift = [80]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

// Message word selection, parallel (right) line.
var MDSelectP = [80]uint{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// Right-line rotate amounts.
var MDShiftP = [80]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

// Per-round additive constants. The right line mirrors the left by walking
// its function table in reverse, with its own constants.
var (
	MDConst160  = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	MDConst160P = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}
	MDConst256  = [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}
	MDConst256P = [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}
)

// Initial chaining values.
var (
	MDInit160 = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	MDInit256 = [8]uint32{
		0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476,
		0x76543210, 0xfedcba98, 0x89abcdef, 0x01234567,
	}
)

// CityHash64 multipliers.
const (
	CityK0   uint64 = 0xc3a5c85c97cb3127
	CityK1   uint64 = 0xb492b66fbe98f273
	CityK2   uint64 = 0x9ae16a3b2f90404f
	CityKMul uint64 = 0x9ddfea08eb382d69
)

// xxHash64 primes.
const (
	XXPrime1 uint64 = 0x9E3779B185EBCA87
	XXPrime2 uint64 = 0xC2B2AE3D27D4EB4F
	XXPrime3 uint64 = 0x165667B19E3779F9
	XXPrime4 uint64 = 0x85EBCA77C2B2AE63
	XXPrime5 uint64 = 0x27D4EB2F165667C5
)
