// Package utils provides the byte/word packing helpers shared by the
// engines. All packing is little-endian.
package utils

import "encoding/binary"

// BytesToWords unpacks a 64-byte block into 16 little-endian words.
func BytesToWords(bytes *[64]byte, words *[16]uint32) {
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(bytes[i*4:])
	}
}

// WordsToBytes packs words into out as little-endian. out must hold
// 4*len(words) bytes.
func WordsToBytes(words []uint32, out []byte) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
}
