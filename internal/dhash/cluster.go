package dhash

import "sort"

// Cluster groups hash indices connected by pairwise distances <= threshold.
// Only groups with two or more members are returned, each sorted, ordered
// by their first member.
func Cluster(hashes []Hash, threshold int) [][]int {
	if threshold < 0 || len(hashes) < 2 {
		return nil
	}

	parent := make([]int, len(hashes))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i := range hashes {
		for j := i + 1; j < len(hashes); j++ {
			if hashes[i].Distance(hashes[j]) > threshold {
				continue
			}
			ri, rj := find(i), find(j)
			if ri == rj {
				continue
			}
			if ri < rj {
				parent[rj] = ri
			} else {
				parent[ri] = rj
			}
		}
	}

	byRoot := map[int][]int{}
	for i := range hashes {
		r := find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	var groups [][]int
	for _, g := range byRoot {
		if len(g) > 1 {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}
