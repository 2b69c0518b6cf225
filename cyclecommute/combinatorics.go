package cyclecommute

import "sort"

// combinationsWithReplacement returns every non-decreasing sequence of
// length k over [0, n), i.e. multisets of size k drawn from n items.
func combinationsWithReplacement(n, k int) [][]int {
	var out [][]int
	if k == 0 {
		return [][]int{{}}
	}
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i < n; i++ {
			cur = append(cur, i)
			rec(i)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}

// distinctPermutations returns every distinct permutation of the multiset ms.
func distinctPermutations(ms []int) [][]int {
	counts := map[int]int{}
	for _, v := range ms {
		counts[v]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var out [][]int
	cur := make([]int, 0, len(ms))
	var rec func()
	rec = func() {
		if len(cur) == len(ms) {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for _, k := range keys {
			if counts[k] == 0 {
				continue
			}
			counts[k]--
			cur = append(cur, k)
			rec()
			cur = cur[:len(cur)-1]
			counts[k]++
		}
	}
	rec()
	return out
}
