package mixhash

import (
	"encoding/hex"
	"testing"

	"github.com/zeebo/assert"
)

// Pinned digests lock the round constants, the pad position and the domain
// byte: any drift in the permutation or the cyclist padding changes these.
func TestXoodyakPinnedDigests(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []byte
		hash  string
	}{
		{"empty", nil, "ea152f2b47bce24efb66c479d4adf17bd324d806e85ff75ee369ee50dc8f8bd1"},
		{"abc", []byte("abc"), "661f71b331a0c1214441c4b4a811697e9109bc0b3c4e1e647c4d1127b18e2a1e"},
		{"one full rate block", make([]byte, 16), "c893c203b6a6782c582bf94add8419435bb5eefc93da20d148abeea5c808feff"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.hash, hex.EncodeToString(oneShot(NewXoodyak, tc.input)))
		})
	}
}

func TestXoodooPNotIdentity(t *testing.T) {
	var a [12]uint32
	xoodooP(&a)
	for i, lane := range a {
		if lane == 0 {
			t.Fatalf("lane %d still zero after permutation", i)
		}
	}
}

func TestXoodooPDeterministic(t *testing.T) {
	a := [12]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	b := a
	xoodooP(&a)
	xoodooP(&b)
	assert.Equal(t, a, b)
}

// Inputs on either side of the rate boundary must all hash differently:
// the pad position and the block split both feed into the state.
func TestXoodyakRateBoundaries(t *testing.T) {
	seen := map[string]int{}
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 48} {
		data := make([]byte, n)
		got := string(oneShot(NewXoodyak, data))
		if prev, ok := seen[got]; ok {
			t.Fatalf("lengths %d and %d collide", prev, n)
		}
		seen[got] = n
	}
}

// The empty message and a message of one zero byte must separate: the pad
// bit position distinguishes them.
func TestXoodyakDomainSeparation(t *testing.T) {
	empty := oneShot(NewXoodyak, nil)
	zero := oneShot(NewXoodyak, []byte{0})
	assert.That(t, string(empty) != string(zero))
}

func TestXoodyakSqueezeChunking(t *testing.T) {
	data := randomBytes(100)

	h := NewXoodyak()
	h.Feed(data)
	want := h.Result()

	h2 := NewXoodyak()
	h2.Feed(data)
	got := make([]byte, 32)
	for off := 0; off < len(got); off += 8 {
		_, err := h2.Read(got[off : off+8])
		assert.NoError(t, err)
	}
	assert.Equal(t, hex.EncodeToString(want), hex.EncodeToString(got))
}
