package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/jingshiliu/qc-artificial-intelligence/game"
	"github.com/jingshiliu/qc-artificial-intelligence/utils"

	"github.com/shamaton/msgpack/v2"
)

// ErrReplayMismatch reports a replay whose recorded hashes do not match the moves.
var ErrReplayMismatch = errors.New("replay does not match its moves")

// Update is one move of a recorded game and the hash of the state it produced.
type Update struct {
	Agent int            `msgpack:"agent"`
	Move  game.Direction `msgpack:"move"`
	Hash  game.StateHash `msgpack:"hash"`
}

// Replay is the full record of a game, enough to play it back on the same maze.
type Replay struct {
	ID    string        `msgpack:"id"`
	Maze  string        `msgpack:"maze"` // Walls only, as rendered by Maze.String
	Seed  uint64        `msgpack:"seed"`
	Moves []Update      `msgpack:"moves"`
	Final game.Snapshot `msgpack:"final"`
}

func WriteReplay(w io.Writer, replay Replay) error {
	data, err := msgpack.Marshal(replay)
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
}

func ReadReplay(r io.Reader) (Replay, error) {
	var replay Replay
	data, err := io.ReadAll(r)
	if err != nil {
		return replay, fmt.Errorf("failed to read replay: %w", err)
	}
	if err := msgpack.Unmarshal(data, &replay); err != nil {
		return replay, fmt.Errorf("failed to decode replay: %w", err)
	}
	return replay, nil
}

// Verify plays the recorded moves from start and checks every state hash. It returns
// the final state.
func (r Replay) Verify(start *game.Chase) (*game.Chase, error) {
	state := start
	for i, update := range r.Moves {
		if state.IsOver() {
			return state, fmt.Errorf("move %d played after the game ended: %w", i, ErrReplayMismatch)
		}
		if !isLegal(state, update) {
			return state, fmt.Errorf("move %d: %s is not legal for agent %d: %w", i, update.Move, update.Agent, ErrReplayMismatch)
		}
		state = state.Play(update.Agent, update.Move)
		if state.Hash() != update.Hash {
			return state, fmt.Errorf("move %d: hash %d, recorded %d: %w", i, state.Hash(), update.Hash, ErrReplayMismatch)
		}
	}
	return state, nil
}

func isLegal(state *game.Chase, update Update) bool {
	if update.Agent < 0 || update.Agent >= state.NumAgents() {
		return false
	}
	return utils.FindIndex(state.LegalActions(update.Agent), update.Move) >= 0
}
