// Package config loads run settings from TOML files. Every field has a default, so a
// file only needs the keys it changes.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jingshiliu/qc-artificial-intelligence/meta"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig reports a config file with unknown keys or out-of-range values.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

type Config struct {
	Search     SearchConfig     `toml:"search"`
	Game       GameConfig       `toml:"game"`
	Experiment ExperimentConfig `toml:"experiment"`
}

type SearchConfig struct {
	Discipline string `toml:"discipline" validate:"oneof=dfs bfs ucs astar"`
	Heuristic  string `toml:"heuristic" validate:"oneof=manhattan euclidean null"`
	Prune      bool   `toml:"prune"`
}

type GameConfig struct {
	Variant    string  `toml:"variant" validate:"oneof=minimax alphabeta expectimax reflex"`
	Depth      int     `toml:"depth" validate:"gte=0,lte=8"`
	Evaluation string  `toml:"evaluation" validate:"oneof=score proximity"`
	Ghosts     int     `toml:"ghosts" validate:"gte=-1"` // -1 keeps every ghost of the maze
	Attack     float64 `toml:"attack" validate:"gte=0,lte=1"`
	MaxTurns   int     `toml:"max_turns" validate:"gt=0"`
	Seed       uint64  `toml:"seed"`
}

type ExperimentConfig struct {
	Variants []string `toml:"variants" validate:"min=1,dive,oneof=minimax alphabeta expectimax reflex"`
	Trials   int      `toml:"trials" validate:"gt=0"`
	Workers  int      `toml:"workers" validate:"gt=0"`
	MaxDepth int      `toml:"max_depth" validate:"gte=0,lte=6"` // Depth sweep limit, 0 skips the sweep
	Output   string   `toml:"output" validate:"required"`
}

func Default() Config {
	return Config{
		Search: SearchConfig{
			Discipline: "astar",
			Heuristic:  "manhattan",
		},
		Game: GameConfig{
			Variant:    "alphabeta",
			Depth:      meta.DEPTH,
			Evaluation: "score",
			Ghosts:     -1,
			MaxTurns:   meta.MAX_TURNS,
			Seed:       meta.SEED,
		},
		Experiment: ExperimentConfig{
			Variants: []string{"minimax", "alphabeta", "expectimax", "reflex"},
			Trials:   meta.TRIALS,
			Workers:  meta.GO_ROUTINES,
			MaxDepth: 3,
			Output:   meta.OUTPUT_DIR,
		},
	}
}

// Parse decodes a TOML document over the defaults.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return c, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidConfig)
	}
	return c, c.Validate()
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
