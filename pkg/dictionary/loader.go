// Package dictionary loads word lists and indexes them for prefix lookups.
package dictionary

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bastiangx/wordrank/pkg/feedback"
)

// ParseWords extracts words from the quoted list format: each word is
// exactly five characters framed by double quotes, e.g. "crane" "slate".
// Anything else between a pair of quotes is skipped with a warning so one
// bad entry cannot poison the rest of the list.
func ParseWords(data []byte) []feedback.Word {
	const none = -1
	last := none
	var words []feedback.Word
	for i := 0; i < len(data); i++ {
		if data[i] != '"' {
			continue
		}
		if last == none {
			last = i
			continue
		}
		if i-last == feedback.Length+1 {
			w, err := feedback.New(string(data[last+1 : i]))
			if err == nil {
				words = append(words, w)
			}
		} else {
			log.Warnf("skipping malformed entry %q", data[last+1:i])
		}
		last = none
	}
	return words
}

// Load reads a quoted word list from disk. An unreadable file or a file
// yielding no words is an error; junk entries in between only warn.
func Load(path string) ([]feedback.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	words := ParseWords(data)
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found in %s", path)
	}
	log.Debugf("loaded %d words from %s", len(words), path)
	return words, nil
}

// LoadPair loads the candidate and target lists concurrently.
func LoadPair(candidatesPath, targetsPath string) (candidates, targets []feedback.Word, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		candidates, err = Load(candidatesPath)
		return err
	})
	g.Go(func() error {
		var err error
		targets, err = Load(targetsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return candidates, targets, nil
}
