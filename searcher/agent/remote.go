package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ringchess/experiments/metrics"
	"ringchess/game"

	"github.com/rs/zerolog/log"
)

type remoteAgent struct {
	url    string
	client *http.Client
}

// NewRemoteAgent returns an agent that asks an agent server at url for its moves.
func NewRemoteAgent(url string, client *http.Client) Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return &remoteAgent{url: url, client: client}
}

// FindMove returns game.NoMove when the server cannot be reached or answers
// with something unusable.
func (a *remoteAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	move, err := a.requestMove(state)
	if err != nil {
		log.Warn().Err(err).Str("url", a.url).Msg("remote agent failed to provide a move")
		return game.NoMove, metrics.SearchMetric{}
	}
	return move, metrics.SearchMetric{}
}

func (a *remoteAgent) requestMove(state game.State) (game.Move, error) {
	board, ok := state.(*game.Board)
	if !ok {
		return game.NoMove, fmt.Errorf("unexpected state type %T", state)
	}

	bodyBytes, err := json.Marshal(findMoveRequest{
		Board:  board.String(),
		ToMove: board.Player().String(),
	})
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to post request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.NoMove, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, out)
	}

	var response findMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return game.NoMove, fmt.Errorf("failed to decode response: %w", err)
	}
	if response.GameOver {
		return game.NoMove, nil
	}
	move, err := game.ParseMove(response.Move)
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to parse move: %w", err)
	}
	return move, nil
}
