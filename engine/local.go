package engine

import (
	"ringchess/experiments/metrics"
	"ringchess/game"
	"ringchess/meta"
	"ringchess/searcher/agent"
	"ringchess/utils"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

type Engine struct {
	State        *game.Board
	Agents       []agent.Agent // Indexed by game.Color
	maxTurns     int
	openingPlies int
	rng          *rand.Rand
}

var _ Runner = (*Engine)(nil)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithOpeningPlies plays plies random moves before handing over to the
// agents, so repeated games between deterministic agents differ.
func WithOpeningPlies(plies int, seed uint64) Option {
	return func(e *Engine) {
		e.openingPlies = plies
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithState(state *game.Board) Option {
	return func(e *Engine) {
		if state != nil {
			e.State = state
		}
	}
}

// LocalEngine plays agents[0] as White against agents[1] as Black.
func LocalEngine(agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Engine{
		State:    game.NewBoard(),
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is decided or the turn limit is hit.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}

	e.playOpening()
	log.Info().Msgf("%s is starting", e.State.Player())

	var moveMetrics []metrics.MoveMetric
	turnCount := 1
	for e.State.Status() == game.Ongoing && turnCount <= e.maxTurns {
		player := e.State.Player()
		move, searchMetric := e.Agents[player].FindMove(e.State)
		move = e.validate(move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s plays %s", turnCount, player, move)

		e.State.DoMove(move)
		turnCount++
	}

	winner := ""
	switch e.State.Status() {
	case game.Checkmate:
		winner = e.State.Player().Opponent().String()
		gameMetric.Result = ResultCheckmate
		log.Info().Msgf("game ended by checkmate, winner: %s", winner)
	case game.Stalemate:
		gameMetric.Result = ResultStalemate
		log.Info().Msgf("game ended by stalemate of %s", e.State.Player())
	default:
		gameMetric.Result = ResultTurnLimit
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}

func (e *Engine) playOpening() {
	for i := 0; i < e.openingPlies && e.rng != nil; i++ {
		moves := e.State.LegalMoves()
		if len(moves) == 0 {
			return
		}
		e.State.DoMove(moves[e.rng.Intn(len(moves))])
	}
}

// validate replaces a missing or illegal agent move by the first legal move.
func (e *Engine) validate(move game.Move) game.Move {
	legal := e.State.LegalMoves()
	if utils.Contains(legal, move) {
		return move
	}
	log.Warn().Msgf("agent returned invalid move %s for %s, forcing %s", move, e.State.Player(), legal[0])
	return legal[0]
}
