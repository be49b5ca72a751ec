package pattern

// Transform is one of the 8 dihedral symmetries of the square: 4 rotations and their
// mirror images.
type Transform int

const (
	Identity Transform = iota
	Rotate90
	Rotate180
	Rotate270
	MirrorX // reflect across the vertical axis
	MirrorX90
	MirrorX180
	MirrorX270
	NumTransforms
)

// apply maps a relative offset through one of the 8 dihedral transforms.
func apply(t Transform, dx, dy int) (int, int) {
	switch t {
	case Identity:
		return dx, dy
	case Rotate90:
		return -dy, dx
	case Rotate180:
		return -dx, -dy
	case Rotate270:
		return dy, -dx
	case MirrorX:
		return -dx, dy
	case MirrorX90:
		x, y := apply(Rotate90, dx, dy)
		return -x, y
	case MirrorX180:
		x, y := apply(Rotate180, dx, dy)
		return -x, y
	case MirrorX270:
		x, y := apply(Rotate270, dx, dy)
		return -x, y
	default:
		return dx, dy
	}
}

// perm[ring][transform][slot] = the slot that slot maps to under transform.
var perm [NumRings][NumTransforms][]int

func init() {
	// Group offsets by ring, in catalog order, then compute where each slot lands
	// under every dihedral transform by matching transformed coordinates back to
	// the catalog.
	byRing := map[Ring][]Offset{}
	for _, o := range offsets {
		byRing[o.Ring] = append(byRing[o.Ring], o)
	}

	for r := Ring(0); r < NumRings; r++ {
		list := byRing[r]
		lookup := map[[2]int]int{}
		for _, o := range list {
			lookup[[2]int{o.DX, o.DY}] = o.Slot
		}
		for t := Transform(0); t < NumTransforms; t++ {
			p := make([]int, len(list))
			for _, o := range list {
				tx, ty := apply(t, o.DX, o.DY)
				p[o.Slot] = lookup[[2]int{tx, ty}]
			}
			perm[r][t] = p
		}
	}
}

// Transpose reorders the 2-bit fields of code (ring r) according to the given
// dihedral transform.
func Transpose(code Code, r Ring, t Transform) Code {
	p := perm[r][t]
	var out Code
	for slot, dst := range p {
		shift := uint(slot * 2)
		v := (code >> shift) & 0x3
		out |= v << uint(dst*2)
	}
	return out
}

// colorRemap swaps Black<->White in a single 2-bit field, leaving Empty/Off alone.
var colorRemap = [4]Cell{CellEmpty, CellWhite, CellBlack, CellOff}

// ColorFlip swaps every Black/White cell in code (ring r, nslots fields).
func ColorFlip(code Code, nslots int) Code {
	var out Code
	for slot := 0; slot < nslots; slot++ {
		shift := uint(slot * 2)
		v := Cell((code >> shift) & 0x3)
		out |= Code(colorRemap[v]) << shift
	}
	return out
}

// Transpose8 returns the 8 dihedral rotations/reflections of code on ring r.
func Transpose8(code Code, r Ring) [8]Code {
	var out [8]Code
	for t := Transform(0); t < NumTransforms; t++ {
		out[t] = Transpose(code, r, t)
	}
	return out
}

// Transpose16 returns the 8 dihedral forms of code and of its color flip.
func Transpose16(code Code, r Ring) [16]Code {
	var out [16]Code
	eight := Transpose8(code, r)
	flipped := Transpose8(ColorFlip(code, ringSize[r]), r)
	copy(out[:8], eight[:])
	copy(out[8:], flipped[:])
	return out
}

// Canonical16 returns the smallest of the 16 dihedral x color-flip forms of code on
// ring r, used as the storage/lookup key.
func Canonical16(code Code, r Ring) Code {
	forms := Transpose16(code, r)
	min := forms[0]
	for _, f := range forms[1:] {
		if f < min {
			min = f
		}
	}
	return min
}
