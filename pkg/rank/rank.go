// Package rank scores candidate guesses against a solution list and picks
// the most discriminating ones.
//
// A candidate's score is the sum of squared sizes of the groups its feedback
// patterns split the solution list into. Lower is better: it approximates the
// expected number of solutions left after playing that guess.
package rank

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordrank/pkg/feedback"
	"github.com/bastiangx/wordrank/pkg/pool"
)

// Engine computes scores for whole candidate lists in parallel.
type Engine struct {
	workers int
}

// NewEngine returns an engine running on the given number of workers,
// or one per CPU when workers is zero.
func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = pool.DefaultWorkers()
	}
	return &Engine{workers: workers}
}

// ScoreAll returns one score per candidate, scores[i] belonging to
// candidates[i]. Candidates are scored independently, one pool task each;
// every task writes only its own slot, so the slice needs no locking and is
// valid to read once Wait has returned.
func (e *Engine) ScoreAll(candidates, targets []feedback.Word) ([]int64, error) {
	scores := make([]int64, len(candidates))
	if len(candidates) == 0 || len(targets) == 0 {
		return scores, nil
	}

	log.Debugf("scoring %d candidates against %d targets on %d workers",
		len(candidates), len(targets), e.workers)

	p := pool.New(e.workers)
	for i := range candidates {
		p.Submit(func() {
			scores[i] = ScoreOne(candidates[i], targets)
		})
	}
	if err := p.Wait(); err != nil {
		return scores, err
	}
	return scores, nil
}

// ScoreOne tallies how often each feedback pattern occurs for the candidate
// across all targets and reduces the tally to the sum of squared counts.
// Map iteration order does not matter: the sum is order-independent.
func ScoreOne(candidate feedback.Word, targets []feedback.Word) int64 {
	tally := make(map[feedback.Marks]int64)
	for _, target := range targets {
		tally[feedback.Compute(candidate, target)]++
	}
	var sum int64
	for _, count := range tally {
		sum += count * count
	}
	return sum
}

// Ranking pairs a candidate with its score for presentation.
type Ranking struct {
	Word  feedback.Word
	Score int64
}

// Best returns the k lowest-scored words in ascending score order, ties
// resolved by original candidate position. k is clamped to len(words);
// k <= 0 yields an empty result. Only the selected prefix is sorted, the
// rest of the list is merely partitioned.
func Best(words []feedback.Word, scores []int64, k int) []Ranking {
	n := len(words)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	less := func(a, b int) bool {
		if scores[a] != scores[b] {
			return scores[a] < scores[b]
		}
		return a < b
	}

	selectSmallest(idx, k, less)
	top := idx[:k]
	sort.Slice(top, func(i, j int) bool { return less(top[i], top[j]) })

	out := make([]Ranking, k)
	for i, j := range top {
		out[i] = Ranking{Word: words[j], Score: scores[j]}
	}
	return out
}

// selectSmallest partitions idx so its first k entries are the k smallest
// under less, in no particular order. Quickselect with middle-element pivot;
// less is a strict total order so the loop always narrows.
func selectSmallest(idx []int, k int, less func(a, b int) bool) {
	if k <= 0 || k >= len(idx) {
		return
	}
	lo, hi := 0, len(idx)-1
	target := k - 1
	for lo < hi {
		mid := lo + (hi-lo)/2
		idx[mid], idx[hi] = idx[hi], idx[mid]
		pivot := idx[hi]

		store := lo
		for i := lo; i < hi; i++ {
			if less(idx[i], pivot) {
				idx[i], idx[store] = idx[store], idx[i]
				store++
			}
		}
		idx[store], idx[hi] = idx[hi], idx[store]

		switch {
		case store == target:
			return
		case store < target:
			lo = store + 1
		default:
			hi = store - 1
		}
	}
}
