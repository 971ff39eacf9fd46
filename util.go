package huffcoding

import (
	mathbits "math/bits"
)

func isPowerOfTwo(x uint32) bool {
	return x != 0 && mathbits.OnesCount32(x) == 1
}
