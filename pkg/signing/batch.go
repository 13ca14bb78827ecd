package signing

import (
	"math/big"
	"sort"
	"sync"

	"github.com/Caqil/ecc/pkg/crypto/curve"
)

// BatchVerifyResult represents the result of batch verification
type BatchVerifyResult struct {
	Valid         bool
	FailedIndices []int
	TotalChecked  int
}

// BatchVerify verifies signatures[i] over hashes[i] against publicKeys[i].
// An input that fails validation counts as a failed index.
func BatchVerify(c *curve.Curve, publicKeys []*curve.Point, hashes []*big.Int, signatures []*Signature) (*BatchVerifyResult, error) {
	if len(publicKeys) != len(hashes) || len(publicKeys) != len(signatures) {
		return nil, ErrLengthMismatch
	}

	result := &BatchVerifyResult{
		Valid:         true,
		FailedIndices: []int{},
		TotalChecked:  len(signatures),
	}

	for i := range signatures {
		if ok, err := Verify(c, publicKeys[i], hashes[i], signatures[i]); err != nil || !ok {
			result.Valid = false
			result.FailedIndices = append(result.FailedIndices, i)
		}
	}

	return result, nil
}

// ConcurrentBatchVerify is BatchVerify spread over a pool of workers.
// FailedIndices is sorted ascending.
func ConcurrentBatchVerify(c *curve.Curve, publicKeys []*curve.Point, hashes []*big.Int, signatures []*Signature, workers int) (*BatchVerifyResult, error) {
	if len(publicKeys) != len(hashes) || len(publicKeys) != len(signatures) {
		return nil, ErrLengthMismatch
	}

	if workers <= 0 {
		workers = 4
	}

	total := len(signatures)
	result := &BatchVerifyResult{
		Valid:         true,
		FailedIndices: []int{},
		TotalChecked:  total,
	}

	tasks := make(chan int, total)
	failed := make(chan int, total)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				if ok, err := Verify(c, publicKeys[i], hashes[i], signatures[i]); err != nil || !ok {
					failed <- i
				}
			}
		}()
	}

	for i := 0; i < total; i++ {
		tasks <- i
	}
	close(tasks)

	wg.Wait()
	close(failed)

	for idx := range failed {
		result.Valid = false
		result.FailedIndices = append(result.FailedIndices, idx)
	}
	sort.Ints(result.FailedIndices)

	return result, nil
}
