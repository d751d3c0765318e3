// Package mixhash implements a family of streaming hash and mixing engines
// behind one incremental contract: bytes go in through Feed in any chunking,
// a digest comes out of Result, and the instance resets for reuse.
//
// Four engine shapes are provided: Keccak-style sponges (Keccak-256/512,
// SHA3-256/512, SHAKE-128/256), a Xoodoo-based duplex (Xoodyak hash mode),
// dual-pipeline Merkle-Damgard compression (RIPEMD-160/256), and direct
// length-dispatched mixers (CityHash64, xxHash64). All implementations aim
// for bit-exact fidelity to published test vectors, not for hardened or
// constant-time operation.
package mixhash

import (
	"errors"
	"fmt"
)

// Variant selects one concrete construction.
type Variant int

const (
	Keccak256 Variant = iota + 1
	Keccak512
	SHA3_256
	SHA3_512
	Shake128
	Shake256
	XoodyakHash
	RIPEMD160
	RIPEMD256
	XXH64
	City64
)

var variantNames = map[Variant]string{
	Keccak256:   "keccak-256",
	Keccak512:   "keccak-512",
	SHA3_256:    "sha3-256",
	SHA3_512:    "sha3-512",
	Shake128:    "shake-128",
	Shake256:    "shake-256",
	XoodyakHash: "xoodyak-hash",
	RIPEMD160:   "ripemd-160",
	RIPEMD256:   "ripemd-256",
	XXH64:       "xxh64",
	City64:      "city64",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Config selects a variant and, for extendable-output variants, the digest
// length in bytes. OutputSize zero means the variant default.
type Config struct {
	Variant    Variant
	OutputSize int
}

// ConfigError reports an unsupported variant/output-size combination.
type ConfigError struct {
	Variant    Variant
	OutputSize int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mixhash: unsupported configuration: variant %s, output size %d", e.Variant, e.OutputSize)
}

// engine is the capability surface every construction plugs in behind the
// Hasher: absorb bytes, produce the digest, return to the initial state.
type engine interface {
	update(p []byte)
	finalize(out []byte)
	reset()
	blockSize() int
}

// squeezer is implemented by the sponge/duplex engines, which can emit
// output incrementally across multiple reads.
type squeezer interface {
	squeeze(out []byte)
}

// Hasher is one hash instance bound to a single variant configuration. It
// owns its buffer and state exclusively; separate instances never share
// mutable state and may run on separate goroutines without coordination.
type Hasher struct {
	size int
	xof  bool
	eng  engine
}

// Construct returns a Hasher for the given configuration. Unsupported
// combinations fail with *ConfigError.
func Construct(cfg Config) (*Hasher, error) {
	fixed := func(def int, eng engine) (*Hasher, error) {
		if cfg.OutputSize != 0 && cfg.OutputSize != def {
			return nil, &ConfigError{cfg.Variant, cfg.OutputSize}
		}
		return &Hasher{size: def, eng: eng}, nil
	}
	xof := func(def int, eng engine) (*Hasher, error) {
		size := cfg.OutputSize
		if size == 0 {
			size = def
		}
		if size < 0 {
			return nil, &ConfigError{cfg.Variant, cfg.OutputSize}
		}
		return &Hasher{size: size, xof: true, eng: eng}, nil
	}

	switch cfg.Variant {
	case Keccak256:
		return fixed(32, newSponge(136, 0x01))
	case Keccak512:
		return fixed(64, newSponge(72, 0x01))
	case SHA3_256:
		return fixed(32, newSponge(136, 0x06))
	case SHA3_512:
		return fixed(64, newSponge(72, 0x06))
	case Shake128:
		return xof(32, newSponge(168, 0x1f))
	case Shake256:
		return xof(32, newSponge(136, 0x1f))
	case XoodyakHash:
		return xof(32, newCyclist())
	case RIPEMD160:
		return fixed(20, newRIPEMD(false))
	case RIPEMD256:
		return fixed(32, newRIPEMD(true))
	case XXH64:
		return fixed(8, newXX64())
	case City64:
		return fixed(8, &cityMix{})
	default:
		return nil, &ConfigError{cfg.Variant, cfg.OutputSize}
	}
}

// NewKeccak256 returns a Hasher computing legacy-pad Keccak-256.
func NewKeccak256() *Hasher { return &Hasher{size: 32, eng: newSponge(136, 0x01)} }

// NewKeccak512 returns a Hasher computing legacy-pad Keccak-512.
func NewKeccak512() *Hasher { return &Hasher{size: 64, eng: newSponge(72, 0x01)} }

// NewSHA3_256 returns a Hasher computing SHA3-256.
func NewSHA3_256() *Hasher { return &Hasher{size: 32, eng: newSponge(136, 0x06)} }

// NewSHA3_512 returns a Hasher computing SHA3-512.
func NewSHA3_512() *Hasher { return &Hasher{size: 64, eng: newSponge(72, 0x06)} }

// NewShake128 returns a Hasher computing SHAKE-128 with the given output size.
func NewShake128(size int) *Hasher {
	if size <= 0 {
		panic("must specify positive size")
	}
	return &Hasher{size: size, xof: true, eng: newSponge(168, 0x1f)}
}

// NewShake256 returns a Hasher computing SHAKE-256 with the given output size.
func NewShake256(size int) *Hasher {
	if size <= 0 {
		panic("must specify positive size")
	}
	return &Hasher{size: size, xof: true, eng: newSponge(136, 0x1f)}
}

// NewXoodyak returns a Hasher computing the Xoodyak hash mode (32 bytes).
func NewXoodyak() *Hasher { return &Hasher{size: 32, xof: true, eng: newCyclist()} }

// NewRIPEMD160 returns a Hasher computing RIPEMD-160.
func NewRIPEMD160() *Hasher { return &Hasher{size: 20, eng: newRIPEMD(false)} }

// NewRIPEMD256 returns a Hasher computing RIPEMD-256.
func NewRIPEMD256() *Hasher { return &Hasher{size: 32, eng: newRIPEMD(true)} }

// NewXX64 returns a Hasher computing xxHash64 with seed zero.
func NewXX64() *Hasher { return &Hasher{size: 8, eng: newXX64()} }

// NewCity64 returns a Hasher computing CityHash64. Because the construction
// dispatches on total input length, this variant buffers the whole message.
func NewCity64() *Hasher { return &Hasher{size: 8, eng: &cityMix{}} }

// Feed absorbs p into the hash state. Any chunking produces the same digest
// as a single call with the concatenated bytes; zero-length input is a no-op.
func (h *Hasher) Feed(p []byte) {
	h.eng.update(p)
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.eng.update(p)
	return len(p), nil
}

// Result finalizes the hash, returns exactly Size bytes, and resets the
// instance so it can immediately absorb a new message.
func (h *Hasher) Result() []byte {
	out := make([]byte, h.size)
	h.eng.finalize(out)
	h.eng.reset()
	return out
}

// Sum appends the digest to b. Unlike a stock hash.Hash, Sum finalizes:
// the instance resets and is ready for a new message afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	return append(b, h.Result()...)
}

// Read emits output incrementally. Only the extendable-output variants
// (SHAKE-128/256 and Xoodyak) support it; every other variant returns an
// error. The first Read switches the engine from absorbing to squeezing;
// feeding more input afterwards re-absorbs on a fresh permutation.
func (h *Hasher) Read(p []byte) (int, error) {
	s, ok := h.eng.(squeezer)
	if !ok || !h.xof {
		return 0, errors.New("mixhash: variant does not support incremental output")
	}
	s.squeeze(p)
	return len(p), nil
}

// Reset returns the Hasher to its initial state.
func (h *Hasher) Reset() {
	h.eng.reset()
}

// Size returns the number of bytes Result will produce.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the variant's block (or rate) size in bytes.
func (h *Hasher) BlockSize() int { return h.eng.blockSize() }

// SumKeccak256 computes the Keccak-256 digest of data in one shot.
func SumKeccak256(data []byte) [32]byte {
	s := newSponge(136, 0x01)
	s.update(data)
	var out [32]byte
	s.finalize(out[:])
	return out
}

// SumCity64 computes the CityHash64 value of data.
func SumCity64(data []byte) uint64 { return cityHash64(data) }

// SumXX64 computes the xxHash64 value of data with seed zero.
func SumXX64(data []byte) uint64 {
	x := newXX64()
	x.update(data)
	return x.sum64()
}
