package mixhash

import (
	"math/bits"

	"github.com/hawkynt/mixhash/internal/consts"
)

// xoodooP runs the 12-round Xoodoo permutation over a state of three planes
// of four 32-bit lanes (a[0:4], a[4:8], a[8:12]).
func xoodooP(a *[12]uint32) {
	var p, e [4]uint32

	for round := 0; round < 12; round++ {
		// theta: column parity, shifted twice, folded back in.
		for x := 0; x < 4; x++ {
			p[x] = a[x] ^ a[x+4] ^ a[x+8]
		}
		for x := 0; x < 4; x++ {
			t := p[(x+3)&3]
			e[x] = bits.RotateLeft32(t, 5) ^ bits.RotateLeft32(t, 14)
		}
		for i := 0; i < 12; i++ {
			a[i] ^= e[i&3]
		}

		// rho west
		a[4], a[5], a[6], a[7] = a[7], a[4], a[5], a[6]
		for x := 8; x < 12; x++ {
			a[x] = bits.RotateLeft32(a[x], 11)
		}

		// iota
		a[0] ^= consts.XoodooRC[round]

		// chi: plane-wise complement-and-mask, all from pre-update values.
		var b [12]uint32
		for x := 0; x < 4; x++ {
			b[x] = ^a[x+4] & a[x+8]
			b[x+4] = ^a[x+8] & a[x]
			b[x+8] = ^a[x] & a[x+4]
		}
		for i := 0; i < 12; i++ {
			a[i] ^= b[i]
		}

		// rho east
		for x := 4; x < 8; x++ {
			a[x] = bits.RotateLeft32(a[x], 1)
		}
		a[8], a[9], a[10], a[11] =
			bits.RotateLeft32(a[10], 8), bits.RotateLeft32(a[11], 8),
			bits.RotateLeft32(a[8], 8), bits.RotateLeft32(a[9], 8)
	}
}

// cyclistRate is the Xoodyak hash-mode rate for both absorbing and squeezing.
const cyclistRate = 16

// cyclist is the duplex controller around the Xoodoo permutation, running
// the unkeyed (hash) mode: 16-byte blocks, a 0x01 domain byte on the first
// absorbed block, a single pad bit at the block boundary, and a permutation
// between consecutive blocks in either direction.
type cyclist struct {
	state [12]uint32
	buf   [cyclistRate]byte
	n     int
	first bool
	mode  spongeMode
}

func newCyclist() *cyclist {
	return &cyclist{first: true}
}

func (c *cyclist) update(p []byte) {
	if len(p) == 0 {
		return
	}
	if c.mode == spongeSqueezing {
		c.mode = spongeAbsorbing
		c.n = 0
	}
	// A full buffer is only flushed once more input shows up, so the final
	// block (possibly exactly rate-sized) is always padded by finalize.
	for len(p) > 0 {
		if c.n == cyclistRate {
			c.down(c.buf[:cyclistRate])
			xoodooP(&c.state)
			c.n = 0
		}
		n := copy(c.buf[c.n:], p)
		c.n += n
		p = p[n:]
	}
}

// down absorbs one block: xor the bytes in at offset zero, a 0x01 pad bit
// right after them, and the domain byte into the last state byte.
func (c *cyclist) down(block []byte) {
	for i, b := range block {
		c.state[i/4] ^= uint32(b) << (8 * uint(i%4))
	}
	c.state[len(block)/4] ^= 0x01 << (8 * uint(len(block)%4))
	if c.first {
		c.state[11] ^= 0x01 << 24
		c.first = false
	}
}

func (c *cyclist) squeeze(out []byte) {
	if c.mode == spongeAbsorbing {
		c.down(c.buf[:c.n])
		xoodooP(&c.state)
		c.mode = spongeSqueezing
		c.n = 0
	}
	for len(out) > 0 {
		if c.n == cyclistRate {
			c.down(nil)
			xoodooP(&c.state)
			c.n = 0
		}
		take := cyclistRate - c.n
		if take > len(out) {
			take = len(out)
		}
		for i := 0; i < take; i++ {
			j := c.n + i
			out[i] = byte(c.state[j/4] >> (8 * uint(j%4)))
		}
		c.n += take
		out = out[take:]
	}
}

func (c *cyclist) finalize(out []byte) {
	c.squeeze(out)
}

func (c *cyclist) reset() {
	c.state = [12]uint32{}
	c.buf = [cyclistRate]byte{}
	c.n = 0
	c.first = true
	c.mode = spongeAbsorbing
}

func (c *cyclist) blockSize() int { return cyclistRate }
