package rank

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordrank/pkg/feedback"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func mustWords(t *testing.T, ss ...string) []feedback.Word {
	t.Helper()
	out := make([]feedback.Word, len(ss))
	for i, s := range ss {
		w, err := feedback.New(s)
		require.NoError(t, err)
		out[i] = w
	}
	return out
}

func TestScoreOneSingleTarget(t *testing.T) {
	// one target means one pattern with count 1, so the score is 1
	targets := mustWords(t, "EDCBA")
	assert.Equal(t, int64(1), ScoreOne(feedback.MustWord("AAAAA"), targets))
	assert.Equal(t, int64(1), ScoreOne(feedback.MustWord("ABCDE"), targets))
}

func TestScoreOneGroupsTargets(t *testing.T) {
	// AAAAA gives the same pattern for every target with no A, so those
	// three targets land in one group: 3^2 + 1 = 10. BBBBB splits nothing
	// differently either; compare against a discriminating guess.
	targets := mustWords(t, "BCDEF", "CDEFG", "DEFGH", "AAAAA")
	blind := ScoreOne(feedback.MustWord("AAAAA"), targets)
	assert.Equal(t, int64(10), blind)

	sharp := ScoreOne(feedback.MustWord("BCDEF"), targets)
	assert.Less(t, sharp, blind)
}

func TestScoreAllOrderPreserving(t *testing.T) {
	candidates := mustWords(t, "AAAAA", "ABCDE", "CRANE", "SLATE", "EDCBA")
	targets := mustWords(t, "EDCBA", "CRANE", "BCDEF", "AAAAA")

	e := NewEngine(4)
	scores, err := e.ScoreAll(candidates, targets)
	require.NoError(t, err)
	require.Len(t, scores, len(candidates))

	// permuting the candidates must permute the scores identically
	perm := []int{3, 0, 4, 1, 2}
	shuffled := make([]feedback.Word, len(candidates))
	for i, j := range perm {
		shuffled[i] = candidates[j]
	}
	shuffledScores, err := e.ScoreAll(shuffled, targets)
	require.NoError(t, err)
	for i, j := range perm {
		assert.Equal(t, scores[j], shuffledScores[i], "candidate %s", shuffled[i])
	}
}

func TestScoreAllTargetOrderInvariant(t *testing.T) {
	candidates := mustWords(t, "CRANE", "AAAAA", "SLATE")
	targets := mustWords(t, "EDCBA", "CRANE", "BCDEF", "AAAAA", "TRACE")

	e := NewEngine(2)
	base, err := e.ScoreAll(candidates, targets)
	require.NoError(t, err)

	reversed := make([]feedback.Word, len(targets))
	for i, w := range targets {
		reversed[len(targets)-1-i] = w
	}
	again, err := e.ScoreAll(candidates, reversed)
	require.NoError(t, err)
	assert.Equal(t, base, again)
}

func TestScoreAllEmptyInputs(t *testing.T) {
	e := NewEngine(1)
	scores, err := e.ScoreAll(nil, mustWords(t, "CRANE"))
	require.NoError(t, err)
	assert.Empty(t, scores)

	scores, err = e.ScoreAll(mustWords(t, "CRANE"), nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, scores)
}

func TestBest(t *testing.T) {
	words := mustWords(t, "AAAAA", "BBBBB", "CCCCC", "DDDDD", "EEEEE")
	scores := []int64{40, 10, 30, 20, 50}

	testCases := []struct {
		name string
		k    int
		want []string
	}{
		{"top three", 3, []string{"BBBBB", "DDDDD", "CCCCC"}},
		{"zero", 0, nil},
		{"clamped", 99, []string{"BBBBB", "DDDDD", "CCCCC", "AAAAA", "EEEEE"}},
		{"single", 1, []string{"BBBBB"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Best(words, scores, tc.k)
			require.Len(t, got, len(tc.want))
			for i, w := range tc.want {
				assert.Equal(t, w, got[i].Word.String(), "rank %d", i)
			}
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, got[i-1].Score, got[i].Score)
			}
		})
	}
}

func TestEndToEndSingleTarget(t *testing.T) {
	// one target: every candidate tallies a single pattern with count 1
	candidates := mustWords(t, "AAAAA", "ABCDE")
	targets := mustWords(t, "EDCBA")

	e := NewEngine(2)
	scores, err := e.ScoreAll(candidates, targets)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1}, scores)

	best := Best(candidates, scores, 10)
	require.Len(t, best, 2)
	assert.Equal(t, "AAAAA", best[0].Word.String())
	assert.Equal(t, "ABCDE", best[1].Word.String())
}

func TestBestTiesKeepInputOrder(t *testing.T) {
	words := mustWords(t, "CCCCC", "AAAAA", "BBBBB")
	scores := []int64{7, 7, 7}
	got := Best(words, scores, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "CCCCC", got[0].Word.String())
	assert.Equal(t, "AAAAA", got[1].Word.String())
}

func TestBestAgainstFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	for round := 0; round < 25; round++ {
		n := 1 + rng.Intn(60)
		words := make([]feedback.Word, n)
		scores := make([]int64, n)
		for i := range words {
			var b [feedback.Length]byte
			for j := range b {
				b[j] = letters[rng.Intn(len(letters))]
			}
			words[i] = feedback.Word(b)
			scores[i] = int64(rng.Intn(10)) // plenty of ties
		}

		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] < scores[idx[b]] })

		k := rng.Intn(n + 2)
		got := Best(words, scores, k)

		wantLen := k
		if wantLen > n {
			wantLen = n
		}
		require.Len(t, got, wantLen)
		for i := 0; i < wantLen; i++ {
			assert.Equal(t, scores[idx[i]], got[i].Score, "round %d rank %d", round, i)
		}
	}
}
