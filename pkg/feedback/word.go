// Package feedback implements the per-letter marking a guess word receives
// when compared against a solution word, including the duplicate-letter rules.
package feedback

import (
	"bytes"
	"fmt"
)

// Length is the fixed word size for the game.
const Length = 5

// Word is an immutable five-letter token. Case is preserved as given;
// callers are expected to keep candidate and target lists in one case.
type Word [Length]byte

// New validates the length and wraps s into a Word.
func New(s string) (Word, error) {
	var w Word
	if len(s) != Length {
		return w, fmt.Errorf("word must be exactly %d characters, got %q", Length, s)
	}
	copy(w[:], s)
	return w, nil
}

// MustWord is New for known-good literals, mostly in tests and examples.
func MustWord(s string) Word {
	w, err := New(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	return string(w[:])
}

// Less gives a total byte-wise order, used for deterministic listings.
func (w Word) Less(other Word) bool {
	return bytes.Compare(w[:], other[:]) < 0
}
