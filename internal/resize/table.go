package resize

import "math"

// Partial source pixels covered by less than this are dropped from the
// area tables. Value must stay exactly as is for hash compatibility.
const partialEps = 1e-3

// decimateEntry is one contribution of a source sample to a destination
// sample. Both indices are already multiplied by the channel count.
type decimateEntry struct {
	si    int
	di    int
	alpha float32
}

// areaTable builds the fractional-area contributions along one axis.
// Entries are grouped by destination index in increasing order and the
// weights of each group sum to 1.
func areaTable(ssize, dsize, cn int, scale float64) []decimateEntry {
	tab := make([]decimateEntry, 0, 2*ssize+2)
	for dx := 0; dx < dsize; dx++ {
		fsx1 := float64(dx) * scale
		fsx2 := fsx1 + scale
		cellWidth := math.Min(scale, float64(ssize)-fsx1)

		sx1 := int(math.Ceil(fsx1))
		sx2 := int(math.Floor(fsx2))
		if sx2 > ssize-1 {
			sx2 = ssize - 1
		}
		if sx1 > sx2 {
			sx1 = sx2
		}

		if float64(sx1)-fsx1 > partialEps {
			tab = append(tab, decimateEntry{
				si:    (sx1 - 1) * cn,
				di:    dx * cn,
				alpha: float32((float64(sx1) - fsx1) / cellWidth),
			})
		}

		for sx := sx1; sx < sx2; sx++ {
			tab = append(tab, decimateEntry{
				si:    sx * cn,
				di:    dx * cn,
				alpha: float32(1 / cellWidth),
			})
		}

		if fsx2-float64(sx2) > partialEps {
			w := math.Min(math.Min(fsx2-float64(sx2), 1), cellWidth)
			tab = append(tab, decimateEntry{
				si:    sx2 * cn,
				di:    dx * cn,
				alpha: float32(w / cellWidth),
			})
		}
	}
	return tab
}

// rowRuns indexes a single-channel table by destination row: the entries
// feeding row dy are tab[runs[dy]:runs[dy+1]].
func rowRuns(tab []decimateEntry, dsize int) []int {
	runs := make([]int, dsize+1)
	k := 0
	for dy := 0; dy < dsize; dy++ {
		runs[dy] = k
		for k < len(tab) && tab[k].di == dy {
			k++
		}
	}
	runs[dsize] = k
	return runs
}
