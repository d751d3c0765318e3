package utils

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestWordsRoundTrip(t *testing.T) {
	var bytes [64]byte
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint32
	BytesToWords(&bytes, &words)

	var back [64]byte
	WordsToBytes(words[:], back[:])

	assert.Equal(t, bytes, back)
}
