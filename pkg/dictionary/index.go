package dictionary

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/wordrank/pkg/feedback"
)

// Index is a patricia trie over a candidate list, used to restrict ranking
// to candidates sharing a prefix. It keeps the original slice so an empty
// prefix costs nothing and input order survives for the no-filter path.
type Index struct {
	trie  *patricia.Trie
	words []feedback.Word
}

// NewIndex builds the trie. Duplicate words keep their first position.
func NewIndex(words []feedback.Word) *Index {
	trie := patricia.NewTrie()
	for i, w := range words {
		key := patricia.Prefix(w.String())
		if trie.Get(key) == nil {
			trie.Insert(key, i)
		}
	}
	return &Index{trie: trie, words: words}
}

// Len returns the number of indexed candidates.
func (ix *Index) Len() int {
	return len(ix.words)
}

// FilterPrefix returns the candidates starting with prefix, in trie order.
// An empty prefix returns the full candidate list unchanged.
func (ix *Index) FilterPrefix(prefix string) []feedback.Word {
	if prefix == "" {
		return ix.words
	}
	if len(prefix) > feedback.Length {
		return nil
	}

	var out []feedback.Word
	err := ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		out = append(out, ix.words[item.(int)])
		return nil
	})
	if err != nil {
		log.Errorf("visiting prefix %q: %v", prefix, err)
	}
	return out
}
