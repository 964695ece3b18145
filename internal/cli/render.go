// Package cli handles interactive input and result rendering for the ranker.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/pkg/rank"
)

var wordStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#569fba"})

// Renderer prints ranked words, best (lowest score) first.
// It is the presentation end of the pipeline: order and truncation are
// already decided by rank.Best.
type Renderer struct {
	out *charmlog.Logger
}

// NewRenderer returns a list renderer writing through the charm logger.
func NewRenderer() *Renderer {
	return &Renderer{out: logger.New("")}
}

// Render lists the rankings with 1-based positions.
func (r *Renderer) Render(rankings []rank.Ranking) {
	if len(rankings) == 0 {
		r.out.Warn("Nothing to show")
		return
	}
	for i, rk := range rankings {
		r.out.Printf("%3d. %s  %s", i+1, wordStyle.Render(rk.Word.String()), formatScore(rk.Score))
	}
}

// formatScore groups thousands for readability (12345678 -> 12,345,678).
func formatScore(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
