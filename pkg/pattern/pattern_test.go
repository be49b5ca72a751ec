package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetCatalogSizes(t *testing.T) {
	require.Equal(t, 8, RingSize(RingPat3))
	require.Equal(t, 4, RingSize(RingMD2))
	require.Equal(t, 12, RingSize(RingMD3))
	require.Equal(t, 16, RingSize(RingMD4))
	require.Equal(t, 20, RingSize(RingMD5))
}

func TestCanonicalRoundTrip(t *testing.T) {
	// §8.5: the 16 transposes of p equal the 16 transposes of color_flip(vertical_mirror(p)).
	var s State
	for _, o := range Offsets() {
		if o.Ring != RingPat3 {
			continue
		}
		c := CellEmpty
		if o.DX > 0 {
			c = CellBlack
		} else if o.DX < 0 {
			c = CellWhite
		}
		s.Set(RingPat3, o.Slot, c)
	}

	mirrored := Transpose(s.Rings[RingPat3], RingPat3, MirrorX)
	flipped := ColorFlip(mirrored, RingSize(RingPat3))

	got := Transpose16(s.Rings[RingPat3], RingPat3)
	want := Transpose16(flipped, RingPat3)

	gotSet := map[Code]bool{}
	for _, c := range got {
		gotSet[c] = true
	}
	for _, c := range want {
		require.True(t, gotSet[c], "transpose set mismatch for %v", c)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	var s State
	s.Set(RingMD5, 3, CellWhite)
	require.Equal(t, CellWhite, s.Get(RingMD5, 3))
	s.Set(RingMD5, 3, CellEmpty)
	require.Equal(t, CellEmpty, s.Get(RingMD5, 3))
}
