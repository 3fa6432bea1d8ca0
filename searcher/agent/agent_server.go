package agent

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"ringchess/game"
	"ringchess/searcher"

	"github.com/rs/zerolog/log"
)

type findMoveRequest struct {
	Board  string `json:"board"`
	ToMove string `json:"to_move"`
}

type findMoveResponse struct {
	Move     string `json:"move"`
	GameOver bool   `json:"game_over"`
}

// server owns one engine session; searches are serialized.
type server struct {
	sync.Mutex
	engine *searcher.Engine
}

// NewAgentHandler exposes an engine session over HTTP at POST /findmove.
func NewAgentHandler(engine *searcher.Engine) http.Handler {
	s := &server{engine: engine}

	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", s.handleFindMove)
	return mux
}

// StartAgentServer starts an agent HTTP server on the given address.
func StartAgentServer(addr string, engine *searcher.Engine) error {
	log.Info().Msgf("starting agent server on %s...", addr)
	err := http.ListenAndServe(addr, NewAgentHandler(engine))
	if err != nil {
		return fmt.Errorf("failed to serve agent: %w", err)
	}
	return nil
}

func (s *server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload findMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	toMove, err := parseColor(payload.ToMove)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	board, err := game.ParseBoard(payload.Board, toMove)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.Lock()
	move := s.engine.FindBestMove(board)
	s.Unlock()

	response := findMoveResponse{GameOver: move == game.NoMove}
	if !response.GameOver {
		response.Move = move.String()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Warn().Err(err).Msg("failed to encode move")
	}
}

func parseColor(text string) (game.Color, error) {
	switch text {
	case "white":
		return game.White, nil
	case "black":
		return game.Black, nil
	}
	return game.White, fmt.Errorf("unknown color %q", text)
}
