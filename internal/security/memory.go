// Package security provides validation and hygiene helpers for secret scalars
package security

import (
	"math/big"
	"runtime"
)

// SecureZeroBigInt clears a big.Int holding secret material.
// Go's big.Int doesn't expose its backing words for overwrite, so the words
// are cleared through Bits before the value is reset.
func SecureZeroBigInt(b *big.Int) {
	if b == nil {
		return
	}

	words := b.Bits()
	for i := range words {
		words[i] = 0
	}
	b.SetInt64(0)

	runtime.KeepAlive(b)
}
