// meta/meta.go
package meta

// SEARCH_DEPTH is the number of plies searched per move, root included.
const SEARCH_DEPTH = 4

// MAX_TURNS bounds a self-play game.
const MAX_TURNS = 300

// OPENING_PLIES random plies played before the agents take over in self-play.
const OPENING_PLIES = 2

// NUM_GAMES per self-play match up.
const NUM_GAMES = 10
