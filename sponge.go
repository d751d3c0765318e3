package mixhash

import (
	"encoding/binary"
)

// maxRate is the largest sponge rate used by any variant (SHAKE-128).
const maxRate = 168

type spongeMode uint8

const (
	spongeAbsorbing spongeMode = iota
	spongeSqueezing
)

// sponge is the streaming controller for the Keccak-style permutation
// variants. Input bytes are buffered up to the rate, xored into the state
// lane-wise, and the permutation runs once per full block. Output is read
// back from the rate region, permuting again whenever it runs dry.
type sponge struct {
	state  [25]uint64
	buf    [maxRate]byte
	n      int // pending input bytes while absorbing, consumed output bytes while squeezing
	rate   int
	dsbyte byte
	mode   spongeMode
}

func newSponge(rate int, dsbyte byte) *sponge {
	if rate <= 0 || rate > maxRate || rate%8 != 0 {
		panic("mixhash: invalid sponge rate")
	}
	return &sponge{rate: rate, dsbyte: dsbyte}
}

func (s *sponge) update(p []byte) {
	if s.mode == spongeSqueezing {
		// Feeding again after output re-absorbs: restart with a fresh
		// permutation call and an empty block buffer.
		keccakF1600(&s.state)
		s.mode = spongeAbsorbing
		s.n = 0
	}

	if s.n > 0 {
		n := copy(s.buf[s.n:s.rate], p)
		s.n += n
		p = p[n:]
		if s.n == s.rate {
			s.absorbBlock(s.buf[:s.rate])
			s.n = 0
		}
	}

	for len(p) >= s.rate {
		s.absorbBlock(p[:s.rate])
		p = p[s.rate:]
	}

	if len(p) > 0 {
		s.n = copy(s.buf[:], p)
	}
}

// absorbBlock xors one rate-sized block into the state and permutes.
func (s *sponge) absorbBlock(b []byte) {
	for i := 0; i < s.rate/8; i++ {
		s.state[i] ^= binary.LittleEndian.Uint64(b[i*8:])
	}
	keccakF1600(&s.state)
}

// pad closes the absorb phase: domain separation byte at the current buffer
// position, pad10*1 end bit in the last rate byte.
func (s *sponge) pad() {
	for i := s.n; i < s.rate; i++ {
		s.buf[i] = 0
	}
	s.buf[s.n] = s.dsbyte
	s.buf[s.rate-1] ^= 0x80
	s.absorbBlock(s.buf[:s.rate])

	s.mode = spongeSqueezing
	s.n = 0
	s.fillSqueezeBuf()
}

// fillSqueezeBuf serializes the rate region of the state into the block
// buffer, which doubles as the squeeze window.
func (s *sponge) fillSqueezeBuf() {
	for i := 0; i < s.rate/8; i++ {
		binary.LittleEndian.PutUint64(s.buf[i*8:], s.state[i])
	}
}

func (s *sponge) squeeze(out []byte) {
	if s.mode == spongeAbsorbing {
		s.pad()
	}
	for len(out) > 0 {
		if s.n == s.rate {
			keccakF1600(&s.state)
			s.fillSqueezeBuf()
			s.n = 0
		}
		n := copy(out, s.buf[s.n:s.rate])
		s.n += n
		out = out[n:]
	}
}

func (s *sponge) finalize(out []byte) {
	s.squeeze(out)
}

func (s *sponge) reset() {
	s.state = [25]uint64{}
	s.buf = [maxRate]byte{}
	s.n = 0
	s.mode = spongeAbsorbing
}

func (s *sponge) blockSize() int { return s.rate }
