package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordrank/pkg/dictionary"
	"github.com/bastiangx/wordrank/pkg/feedback"
	"github.com/bastiangx/wordrank/pkg/rank"
)

// InputHandler reads prefixes from stdin and ranks the matching candidates.
// Useful for exploring a word list without re-running the batch mode.
type InputHandler struct {
	engine    *rank.Engine
	index     *dictionary.Index
	targets   []feedback.Word
	showCount int
	renderer  *Renderer
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(engine *rank.Engine, index *dictionary.Index, targets []feedback.Word, showCount int) *InputHandler {
	return &InputHandler{
		engine:    engine,
		index:     index,
		targets:   targets,
		showCount: showCount,
		renderer:  NewRenderer(),
	}
}

// Start begins the interface loop.
// It continuously prompts for a prefix, ranks the candidates that match it,
// and prints the best ones. An empty line ranks the whole candidate list.
// Returns nil once stdin is closed.
func (h *InputHandler) Start() error {
	log.Printf("wordrank CLI -- %d candidates, %d targets", h.index.Len(), len(h.targets))
	log.Print("type a prefix and press Enter to rank it, empty line for all (Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		h.handleInput(strings.TrimSpace(line))
	}
}

// handleInput ranks the candidates matching one prefix.
func (h *InputHandler) handleInput(prefix string) {
	if len(prefix) > feedback.Length {
		log.Errorf("Prefix too long: %s", prefix)
		return
	}

	candidates := h.index.FilterPrefix(prefix)
	if len(candidates) == 0 {
		log.Warnf("No candidates match prefix: '%s'", prefix)
		return
	}

	start := time.Now()
	scores, err := h.engine.ScoreAll(candidates, h.targets)
	if err != nil {
		log.Errorf("Scoring failed: %v", err)
		return
	}
	best := rank.Best(candidates, scores, h.showCount)
	log.Debugf("Took [ %v ] for %d candidates", time.Since(start), len(candidates))

	log.Printf("Best %d of %d candidates:", len(best), len(candidates))
	h.renderer.Render(best)
}
