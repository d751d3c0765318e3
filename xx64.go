package mixhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/hawkynt/mixhash/internal/consts"
)

// xxBlockSize is the xxHash64 accumulator stripe: four lanes of eight bytes.
const xxBlockSize = 32

// xx64 is the streaming xxHash64 engine (seed 0). Full 32-byte stripes are
// folded into four running accumulators; the sub-stripe tail and the
// avalanche finisher run at finalization.
type xx64 struct {
	v1, v2, v3, v4 uint64
	buf            [xxBlockSize]byte
	n              int
	total          uint64
}

func newXX64() *xx64 {
	x := &xx64{}
	x.reset()
	return x
}

func xxRound(acc, input uint64) uint64 {
	acc += input * consts.XXPrime2
	acc = bits.RotateLeft64(acc, 31)
	acc *= consts.XXPrime1
	return acc
}

func xxMergeRound(h, v uint64) uint64 {
	h ^= xxRound(0, v)
	return h*consts.XXPrime1 + consts.XXPrime4
}

func (x *xx64) update(p []byte) {
	x.total += uint64(len(p))

	if x.n > 0 {
		n := copy(x.buf[x.n:], p)
		x.n += n
		p = p[n:]
		if x.n == xxBlockSize {
			x.processStripe(x.buf[:])
			x.n = 0
		}
	}

	for len(p) >= xxBlockSize {
		x.processStripe(p[:xxBlockSize])
		p = p[xxBlockSize:]
	}

	if len(p) > 0 {
		x.n = copy(x.buf[:], p)
	}
}

func (x *xx64) processStripe(b []byte) {
	x.v1 = xxRound(x.v1, binary.LittleEndian.Uint64(b))
	x.v2 = xxRound(x.v2, binary.LittleEndian.Uint64(b[8:]))
	x.v3 = xxRound(x.v3, binary.LittleEndian.Uint64(b[16:]))
	x.v4 = xxRound(x.v4, binary.LittleEndian.Uint64(b[24:]))
}

func (x *xx64) sum64() uint64 {
	var h uint64
	if x.total >= xxBlockSize {
		h = bits.RotateLeft64(x.v1, 1) + bits.RotateLeft64(x.v2, 7) +
			bits.RotateLeft64(x.v3, 12) + bits.RotateLeft64(x.v4, 18)
		h = xxMergeRound(h, x.v1)
		h = xxMergeRound(h, x.v2)
		h = xxMergeRound(h, x.v3)
		h = xxMergeRound(h, x.v4)
	} else {
		h = x.v3 + consts.XXPrime5 // v3 holds the seed
	}

	h += x.total

	tail := x.buf[:x.n]
	for len(tail) >= 8 {
		h ^= xxRound(0, binary.LittleEndian.Uint64(tail))
		h = bits.RotateLeft64(h, 27)*consts.XXPrime1 + consts.XXPrime4
		tail = tail[8:]
	}
	if len(tail) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(tail)) * consts.XXPrime1
		h = bits.RotateLeft64(h, 23)*consts.XXPrime2 + consts.XXPrime3
		tail = tail[4:]
	}
	for _, b := range tail {
		h ^= uint64(b) * consts.XXPrime5
		h = bits.RotateLeft64(h, 11) * consts.XXPrime1
	}

	// avalanche
	h ^= h >> 33
	h *= consts.XXPrime2
	h ^= h >> 29
	h *= consts.XXPrime3
	h ^= h >> 32
	return h
}

func (x *xx64) finalize(out []byte) {
	binary.BigEndian.PutUint64(out, x.sum64())
}

func (x *xx64) reset() {
	// The v1 seed exceeds uint64 as a constant sum; fold it at runtime.
	x.v1 = consts.XXPrime1
	x.v1 += consts.XXPrime2
	x.v2 = consts.XXPrime2
	x.v3 = 0
	x.v4 = ^consts.XXPrime1 + 1
	x.buf = [xxBlockSize]byte{}
	x.n = 0
	x.total = 0
}

func (x *xx64) blockSize() int { return xxBlockSize }
