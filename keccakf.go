package mixhash

import (
	"math/bits"

	"github.com/hawkynt/mixhash/internal/consts"
)

// keccakF1600 runs the full 24-round Keccak-f permutation over a 5x5 lane
// state. The rho/pi steps are driven by the offset tables in consts; the
// walk follows the pi cycle starting at lane 1.
func keccakF1600(a *[25]uint64) {
	var bc [5]uint64

	for round := 0; round < 24; round++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho and pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := consts.KeccakPiln[i]
			t, a[j] = a[j], bits.RotateLeft64(t, consts.KeccakRotc[i])
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] = bc[i] ^ (^bc[(i+1)%5] & bc[(i+2)%5])
			}
		}

		// iota
		a[0] ^= consts.KeccakRC[round]
	}
}
