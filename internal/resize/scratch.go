package resize

import (
	"fmt"
	"sync"

	"github.com/AnyUserName/minicv-cli/internal/raster"
)

// maxScratch caps any single scratch request, in elements. Requests above
// it fail with raster.ErrAllocation instead of letting make panic.
const maxScratch = 1 << 28

// ─── float row pool ──────────────────────────────────────────
// One entry holds the horizontal scratch row and the vertical accumulator
// of the general area path. Entries grow to the largest row seen.
var rowPool = sync.Pool{New: func() any { return new([]float32) }}

func checkScratch(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: scratch of %d elements", raster.ErrEmptyBuffer, n)
	}
	if n > maxScratch {
		return fmt.Errorf("%w: scratch of %d elements", raster.ErrAllocation, n)
	}
	return nil
}

// getRows returns a zeroed float32 scratch of n elements. Release it with
// putRows, normally deferred right after the call.
func getRows(n int) (*[]float32, error) {
	if err := checkScratch(n); err != nil {
		return nil, err
	}
	p := rowPool.Get().(*[]float32)
	if cap(*p) < n {
		*p = make([]float32, n)
	}
	*p = (*p)[:n]
	clear(*p)
	return p, nil
}

func putRows(p *[]float32) {
	rowPool.Put(p)
}
