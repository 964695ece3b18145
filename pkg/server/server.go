package server

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordrank/pkg/dictionary"
	"github.com/bastiangx/wordrank/pkg/feedback"
	"github.com/bastiangx/wordrank/pkg/rank"
)

// Server handles the IPC for guess ranking
type Server struct {
	engine       *rank.Engine
	index        *dictionary.Index
	targets      []feedback.Word
	defaultLimit int

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a ranking server using stdin/stdout for IPC
func NewServer(engine *rank.Engine, index *dictionary.Index, targets []feedback.Word, defaultLimit int) *Server {
	s := NewServerIO(os.Stdin, os.Stdout, engine, index, targets, defaultLimit)
	return s
}

// NewServerIO is NewServer over explicit streams, used by tests and clients
// that spawn the server over pipes.
func NewServerIO(r io.Reader, w io.Writer, engine *rank.Engine, index *dictionary.Index, targets []feedback.Word, defaultLimit int) *Server {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &Server{
		engine:       engine,
		index:        index,
		targets:      targets,
		defaultLimit: defaultLimit,
		dec:          msgpack.NewDecoder(r),
		enc:          msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on client EOF.
func (s *Server) Start() error {
	log.Debugf("Starting rank server: %d candidates, %d targets", s.index.Len(), len(s.targets))

	for {
		var req RankRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRank(req)
	}
}

// handleRank scores the candidates matching the request prefix and sends
// the best `limit` of them.
func (s *Server) handleRank(req RankRequest) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if len(req.Prefix) > feedback.Length {
		s.sendError(req.ID, "prefix longer than a word", 400)
		return
	}

	candidates := s.index.FilterPrefix(req.Prefix)
	if len(candidates) == 0 {
		s.sendError(req.ID, "no candidates match prefix", 404)
		return
	}

	start := time.Now()
	scores, err := s.engine.ScoreAll(candidates, s.targets)
	if err != nil {
		log.Errorf("Scoring failed: %v", err)
		s.sendError(req.ID, "scoring failed", 500)
		return
	}
	best := rank.Best(candidates, scores, limit)
	elapsed := time.Since(start).Microseconds()

	results := make([]RankedWord, len(best))
	for i, r := range best {
		results[i] = RankedWord{Word: r.Word.String(), Score: r.Score}
	}
	s.sendResponse(RankResponse{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed,
	})
}

func (s *Server) sendResponse(v interface{}) {
	if err := s.enc.Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(RankError{ID: id, Error: message, Code: code})
}
