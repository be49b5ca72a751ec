package searchctl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

func TestBoardTimeParamsBySize(t *testing.T) {
	c, maxply := boardTimeParams(9)
	require.Equal(t, 20, c)
	require.Equal(t, 0, maxply)

	c, maxply = boardTimeParams(13)
	require.Equal(t, 30, c)
	require.Equal(t, 30, maxply)

	c, maxply = boardTimeParams(19)
	require.Equal(t, 60, c)
	require.Equal(t, 80, maxply)
}

func TestNextLimitConstModes(t *testing.T) {
	pt := NewConstPlayoutControl(5000)
	require.Zero(t, pt.NextLimit(board.Black, 10))

	ct := NewConstTimeControl(3 * time.Second)
	require.Equal(t, 3*time.Second, ct.NextLimit(board.Black, 10))
}

func TestNextLimitMainTimeDividesRemaining(t *testing.T) {
	mt := NewMainTimeControl(19, 600*time.Second)
	// c=60, maxply=80, moves=0 -> rest = 80-0 = 80 -> divisor 140
	got := mt.NextLimit(board.Black, 0)
	want := 600 * time.Second / 140
	require.Equal(t, want, got)
}

func TestNextLimitByoyomiFloor(t *testing.T) {
	bt := NewMainTimeByoyomiControl(19, time.Second, 30*time.Second, 5)
	// main time nearly exhausted, so remaining/divisor < byoyomi period,
	// floored at 0.85*byoyomi.
	got := bt.NextLimit(board.Black, 100)
	require.Equal(t, time.Duration(float64(bt.PerMove)*0.85), got)
}

func TestShorten(t *testing.T) {
	require.Equal(t, 10*time.Second, Shorten(10*time.Second, 0.5))
	require.Equal(t, 5*time.Second, Shorten(10*time.Second, 0.91))
	require.Equal(t, 2500*time.Millisecond, Shorten(10*time.Second, 0.96))
}

func TestConsumeOnlyAffectsMainTimeModes(t *testing.T) {
	ct := NewConstTimeControl(time.Second)
	ct.Consume(board.Black, 500*time.Millisecond)
	require.Zero(t, ct.Remaining[board.Black])

	mt := NewMainTimeControl(19, 100*time.Second)
	mt.Consume(board.Black, 10*time.Second)
	require.Equal(t, 90*time.Second, mt.Remaining[board.Black])
	require.Equal(t, 100*time.Second, mt.Remaining[board.White])
}
