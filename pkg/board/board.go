package board

// Board is a convenience wrapper around a Position: it keeps a stack of prior
// snapshots so Undo can step backward, something the in-place-mutated Position
// itself does not support cheaply. pkg/engine does not use Board; it holds a
// Position directly. MCTS descents and playouts never go through Board -- they fork a
// Position directly and walk it forward for the life of one rollout, per §5.
type Board struct {
	cfg Config
	zt  *ZobristTable
	cur *Position

	undo []*Position
}

// NewBoard creates an empty board ready for play.
func NewBoard(cfg Config, zt *ZobristTable) *Board {
	return &Board{cfg: cfg, zt: zt, cur: NewPosition(cfg, zt)}
}

// Position returns the current, live Position. Callers that need an isolated copy
// (e.g. to hand to a search worker) should call Position().Fork() themselves.
func (b *Board) Position() *Position {
	return b.cur
}

// Play applies one move, snapshotting the pre-move state for Undo.
func (b *Board) Play(m Move) error {
	snapshot := b.cur.Fork()
	if m.Point == PointPass {
		b.cur.Pass(m.Color)
	} else {
		if err := b.cur.PlaceStone(m.Point, m.Color, false); err != nil {
			return err
		}
	}
	b.undo = append(b.undo, snapshot)
	return nil
}

// Undo reverts the last move, if any. Returns false if there is nothing to undo.
func (b *Board) Undo() bool {
	n := len(b.undo)
	if n == 0 {
		return false
	}
	b.cur = b.undo[n-1]
	b.undo = b.undo[:n-1]
	return true
}

// Clear resets the board to empty, discarding history.
func (b *Board) Clear() {
	b.cur = NewPosition(b.cfg, b.zt)
	b.undo = nil
}

// Resize reconfigures the board (and its Zobrist table, since geometry changed),
// discarding all history. Used by the configure(...) control-surface operation.
func (b *Board) Resize(cfg Config, zt *ZobristTable) {
	b.cfg = cfg
	b.zt = zt
	b.Clear()
}

// Config returns the board's configuration.
func (b *Board) Config() Config {
	return b.cfg
}
