// meta/meta.go
package meta

// Version is reported by the CLI.
const Version = "0.3.0"

// DEPTH is the default number of rounds a game-tree search looks ahead.
const DEPTH = 2

// MAX_TURNS bounds a chase game.
const MAX_TURNS = 300

// TRIALS is the default number of games per runner config in an experiment.
const TRIALS = 10

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 8

// SEED is the default seed for ghosts and reflex tie-breaks.
const SEED = 1

// OUTPUT_DIR is where experiment tables are written.
const OUTPUT_DIR = "results"
