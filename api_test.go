package mixhash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// vector is one known-answer fixture: hex-decoded input and expected
// output, a one-line description, and where the value comes from.
type vector struct {
	desc   string
	source string
	new    func() *Hasher
	input  []byte
	hash   string
}

var vectors = []vector{
	{
		desc:   "keccak-256 empty input",
		source: "Keccak reference / Ethereum",
		new:    NewKeccak256,
		input:  nil,
		hash:   "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
	},
	{
		desc:   "keccak-256 of abc",
		source: "Keccak reference",
		new:    NewKeccak256,
		input:  []byte("abc"),
		hash:   "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
	},
	{
		desc:   "keccak-256 of hello",
		source: "Ethereum tooling",
		new:    NewKeccak256,
		input:  []byte("hello"),
		hash:   "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8",
	},
	{
		desc:   "sha3-256 of abc",
		source: "FIPS 202 examples",
		new:    NewSHA3_256,
		input:  []byte("abc"),
		hash:   "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
	},
	{
		desc:   "shake-128 empty input, 16 bytes",
		source: "FIPS 202 examples",
		new:    func() *Hasher { return NewShake128(16) },
		input:  nil,
		hash:   "7f9c2ba4e88f827d616045507605853e",
	},
	{
		desc:   "shake-256 empty input, 16 bytes",
		source: "FIPS 202 examples",
		new:    func() *Hasher { return NewShake256(16) },
		input:  nil,
		hash:   "46b9dd2b0ba88d13233b3feb743eeb24",
	},
	{
		desc:   "ripemd-160 empty input",
		source: "RIPEMD-160 paper, Dobbertin/Bosselaers/Preneel",
		new:    NewRIPEMD160,
		input:  nil,
		hash:   "9c1185a5c5e9fc54612808977ee8f548b2258d31",
	},
	{
		desc:   "ripemd-160 of a",
		source: "RIPEMD-160 paper",
		new:    NewRIPEMD160,
		input:  []byte("a"),
		hash:   "0bdc9d2d256b3ee9daae347be6f4dc835a467ffe",
	},
	{
		desc:   "ripemd-160 of abc",
		source: "RIPEMD-160 paper",
		new:    NewRIPEMD160,
		input:  []byte("abc"),
		hash:   "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc",
	},
	{
		desc:   "ripemd-160 of message digest",
		source: "RIPEMD-160 paper",
		new:    NewRIPEMD160,
		input:  []byte("message digest"),
		hash:   "5d0689ef49d2fae572b881b123a85ffa21595f36",
	},
	{
		desc:   "ripemd-160 56-byte two-block message",
		source: "RIPEMD-160 paper",
		new:    NewRIPEMD160,
		input:  []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
		hash:   "12a053384a9c0c88e405a06c27dcf49ada62eb2b",
	},
	{
		desc:   "ripemd-256 empty input",
		source: "RIPEMD-256 reference vectors",
		new:    NewRIPEMD256,
		input:  nil,
		hash:   "02ba4c4e5f8ecd1877fc52d64d30e37a2d9774fb1e5d026380ae0168e3c5522d",
	},
	{
		desc:   "ripemd-256 of a",
		source: "RIPEMD-256 reference vectors",
		new:    NewRIPEMD256,
		input:  []byte("a"),
		hash:   "f9333e45d857f5d90a91bab70a1eba0cfb1be4b0783c9acfcd883a9134692925",
	},
	{
		desc:   "ripemd-256 of abc",
		source: "RIPEMD-256 reference vectors",
		new:    NewRIPEMD256,
		input:  []byte("abc"),
		hash:   "afbd6e228b9d8cbbcef5ca2d03e6dba10ac0bc7dcbe4680e1e42d2e975459b65",
	},
	{
		desc:   "xxh64 empty input, seed 0",
		source: "xxHash reference",
		new:    NewXX64,
		input:  nil,
		hash:   "ef46db3751d8e999",
	},
	{
		desc:   "xxh64 of a",
		source: "xxHash reference",
		new:    NewXX64,
		input:  []byte("a"),
		hash:   "d24ec4f1a98c6e5b",
	},
	{
		desc:   "xxh64 of abc",
		source: "xxHash reference",
		new:    NewXX64,
		input:  []byte("abc"),
		hash:   "44bc2cf5ad770999",
	},
	{
		desc:   "city64 empty input",
		source: "CityHash reference (k2)",
		new:    NewCity64,
		input:  nil,
		hash:   "9ae16a3b2f90404f",
	},
}

func TestVectors(t *testing.T) {
	for _, tv := range vectors {
		t.Run(tv.desc, func(t *testing.T) {
			h := tv.new()
			h.Feed(tv.input)
			assert.Equal(t, tv.hash, hex.EncodeToString(h.Result()))
		})
	}
}

var allVariants = []struct {
	name string
	new  func() *Hasher
}{
	{"keccak-256", NewKeccak256},
	{"keccak-512", NewKeccak512},
	{"sha3-256", NewSHA3_256},
	{"sha3-512", NewSHA3_512},
	{"shake-128", func() *Hasher { return NewShake128(64) }},
	{"shake-256", func() *Hasher { return NewShake256(200) }},
	{"xoodyak", NewXoodyak},
	{"ripemd-160", NewRIPEMD160},
	{"ripemd-256", NewRIPEMD256},
	{"xxh64", NewXX64},
	{"city64", NewCity64},
}

func randomBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(pcg.Uint32())
	}
	return out
}

// oneShot hashes data on a fresh instance in a single Feed.
func oneShot(new func() *Hasher, data []byte) []byte {
	h := new()
	h.Feed(data)
	return h.Result()
}

func TestStreamingEquivalence(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.name, func(t *testing.T) {
			for trial := 0; trial < 50; trial++ {
				data := randomBytes(int(pcg.Uint32() % 700))
				want := oneShot(v.new, data)

				h := v.new()
				for rest := data; len(rest) > 0; {
					n := int(pcg.Uint32()%97) + 1
					if n > len(rest) {
						n = len(rest)
					}
					h.Feed(rest[:n])
					rest = rest[n:]
				}
				assert.Equal(t, hex.EncodeToString(want), hex.EncodeToString(h.Result()))
			}
		})
	}
}

func TestOutputSizeInvariant(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.name, func(t *testing.T) {
			h := v.new()
			for n := 0; n <= 3*h.BlockSize(); n += 13 {
				got := oneShot(v.new, randomBytes(n))
				assert.Equal(t, h.Size(), len(got))
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.name, func(t *testing.T) {
			data := randomBytes(311)
			assert.Equal(t, hex.EncodeToString(oneShot(v.new, data)), hex.EncodeToString(oneShot(v.new, data)))
		})
	}
}

func TestReuseAfterResult(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.name, func(t *testing.T) {
			m1 := randomBytes(205)
			m2 := randomBytes(419)

			h := v.new()
			h.Feed(m1)
			first := h.Result()

			// The same instance must now behave exactly like a fresh one.
			h.Feed(m2)
			assert.Equal(t, hex.EncodeToString(oneShot(v.new, m2)), hex.EncodeToString(h.Result()))

			h.Feed(m1)
			assert.Equal(t, hex.EncodeToString(first), hex.EncodeToString(h.Result()))
		})
	}
}

func TestZeroLengthFeed(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.name, func(t *testing.T) {
			data := randomBytes(150)

			h := v.new()
			h.Feed(nil)
			h.Feed(data[:75])
			h.Feed([]byte{})
			h.Feed(data[75:])
			h.Feed(nil)
			assert.Equal(t, hex.EncodeToString(oneShot(v.new, data)), hex.EncodeToString(h.Result()))
		})
	}
}

func TestConstruct(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		h, err := Construct(Config{Variant: Keccak256})
		assert.NoError(t, err)
		assert.Equal(t, 32, h.Size())

		h, err = Construct(Config{Variant: Shake128, OutputSize: 99})
		assert.NoError(t, err)
		assert.Equal(t, 99, h.Size())

		h, err = Construct(Config{Variant: RIPEMD160, OutputSize: 20})
		assert.NoError(t, err)
		assert.Equal(t, 20, h.Size())
	})

	t.Run("MatchesConstructors", func(t *testing.T) {
		data := randomBytes(333)
		h, err := Construct(Config{Variant: RIPEMD256})
		assert.NoError(t, err)
		h.Feed(data)
		assert.Equal(t, hex.EncodeToString(oneShot(NewRIPEMD256, data)), hex.EncodeToString(h.Result()))
	})

	t.Run("BadOutputSize", func(t *testing.T) {
		_, err := Construct(Config{Variant: Keccak256, OutputSize: 20})
		var cerr *ConfigError
		assert.That(t, errors.As(err, &cerr))
		assert.Equal(t, Keccak256, cerr.Variant)
	})

	t.Run("UnknownVariant", func(t *testing.T) {
		_, err := Construct(Config{Variant: Variant(0)})
		var cerr *ConfigError
		assert.That(t, errors.As(err, &cerr))
		assert.That(t, strings.Contains(err.Error(), "unsupported"))
	})
}

func TestHashInterface(t *testing.T) {
	data := randomBytes(90)

	h := NewKeccak256()
	n, err := h.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, len(data), n)

	sum := h.Sum(nil)
	assert.Equal(t, hex.EncodeToString(oneShot(NewKeccak256, data)), hex.EncodeToString(sum))

	// Sum resets; appending to a prefix keeps the prefix intact.
	h.Write(data)
	withPrefix := h.Sum([]byte("pre"))
	assert.That(t, bytes.HasPrefix(withPrefix, []byte("pre")))
	assert.Equal(t, hex.EncodeToString(sum), hex.EncodeToString(withPrefix[3:]))
}

func TestIncrementalReadUnsupported(t *testing.T) {
	// Fixed-output variants reject Read even when the underlying engine is
	// a sponge that could keep squeezing.
	for _, new := range []func() *Hasher{NewRIPEMD160, NewKeccak256, NewSHA3_512, NewXX64} {
		h := new()
		_, err := h.Read(make([]byte, 4))
		assert.That(t, err != nil)
	}
}

func TestOneShotHelpers(t *testing.T) {
	data := randomBytes(77)

	sum := SumKeccak256(data)
	assert.Equal(t, hex.EncodeToString(oneShot(NewKeccak256, data)), hex.EncodeToString(sum[:]))

	h := NewXX64()
	h.Feed(data)
	assert.Equal(t, hex.EncodeToString(h.Result()), hexUint64(SumXX64(data)))

	h = NewCity64()
	h.Feed(data)
	assert.Equal(t, hex.EncodeToString(h.Result()), hexUint64(SumCity64(data)))
}

func hexUint64(v uint64) string {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*uint(i)))
	}
	return hex.EncodeToString(b[:])
}
