package mixhash

import (
	"github.com/hawkynt/mixhash/internal/consts"
	"github.com/hawkynt/mixhash/internal/utils"
)

// mdBlockSize is the RIPEMD-family block size in bytes.
const mdBlockSize = 64

// ripemd is the Merkle-Damgard streaming controller shared by the 160- and
// 256-bit dual-pipeline constructions. It owns the block buffer and the
// total-length counter; the per-variant round function is selected once at
// construction time so the streaming and finalization paths go through the
// same block routine.
type ripemd struct {
	h      [8]uint32
	hn     int
	buf    [mdBlockSize]byte
	n      int
	length uint64
	wide   bool
}

func newRIPEMD(wide bool) *ripemd {
	r := &ripemd{wide: wide}
	r.reset()
	return r
}

func (r *ripemd) update(p []byte) {
	r.length += uint64(len(p))

	if r.n > 0 {
		n := copy(r.buf[r.n:], p)
		r.n += n
		p = p[n:]
		if r.n == mdBlockSize {
			r.processBlock(&r.buf)
			r.n = 0
		}
	}

	for len(p) >= mdBlockSize {
		r.processBlock((*[mdBlockSize]byte)(p[:mdBlockSize]))
		p = p[mdBlockSize:]
	}

	if len(p) > 0 {
		r.n = copy(r.buf[:], p)
	}
}

func (r *ripemd) processBlock(b *[mdBlockSize]byte) {
	var x [16]uint32
	utils.BytesToWords(b, &x)
	if r.wide {
		ripemd256Block(&r.h, &x)
	} else {
		ripemd160Block(&r.h, &x)
	}
}

// finalize pads with 0x80, zero-fills to the length field, and appends the
// total bit length as a little-endian 64-bit tail, spilling into an extra
// block when fewer than nine bytes remain.
func (r *ripemd) finalize(out []byte) {
	length := r.length

	var tmp [mdBlockSize]byte
	tmp[0] = 0x80
	if length%64 < 56 {
		r.update(tmp[:56-length%64])
	} else {
		r.update(tmp[:64+56-length%64])
	}

	length <<= 3
	for i := uint(0); i < 8; i++ {
		tmp[i] = byte(length >> (8 * i))
	}
	r.update(tmp[:8])

	utils.WordsToBytes(r.h[:r.hn], out)
}

func (r *ripemd) reset() {
	if r.wide {
		r.h = consts.MDInit256
		r.hn = 8
	} else {
		r.h = [8]uint32{}
		copy(r.h[:], consts.MDInit160[:])
		r.hn = 5
	}
	r.buf = [mdBlockSize]byte{}
	r.n = 0
	r.length = 0
}

func (r *ripemd) blockSize() int { return mdBlockSize }
