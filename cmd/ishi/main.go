// Command ishi is a minimal standalone driver for the engine: it wires flags
// to an engine.Engine and a gtp.Driver, then translates a small line-oriented
// debug vocabulary into typed gtp.Command values. It is deliberately not a
// GTP shell -- parsing the real Go Text Protocol and talking to a GUI over
// it is the external collaborator's job (§1's non-goal); this is the same
// role cmd/morlock's "console" protocol plays for the teacher, a thin local
// debug console, not its "uci" protocol.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/seekerror/logw"

	"github.com/kobanium/Ray-sub001/pkg/board"
	"github.com/kobanium/Ray-sub001/pkg/engine"
	"github.com/kobanium/Ray-sub001/pkg/engine/gtp"
)

var (
	boardSize = flag.Int("boardsize", 19, "Board side (9, 13 or 19)")
	komi      = flag.Float64("komi", 7.5, "Komi added to White's score")
	superko   = flag.Bool("superko", false, "Enable positional superko legality checking")
	paramDir  = flag.String("params", "", "Directory holding uct_params/ and sim_params/ (uniform tables if empty)")
	nodes     = flag.Int("nodes", 1<<20, "MCTS node-pool capacity")
	workers   = flag.Int("workers", 1, "Concurrent search workers")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: ishi [options]

ISHI is a Monte-Carlo tree search Go engine core. It speaks a small
line-oriented debug vocabulary on stdin/stdout (boardsize, komi,
clear_board, time_settings, playouts, time_per_move, play, genmove,
final_score, quit); wrap it in a GTP shell to talk to a GUI.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "ishi", "kobanium", engine.WithOptions(engine.Options{
		NodeCapacity: *nodes,
		TTCapacity:   *nodes,
		Workers:      *workers,
		ParamDir:     *paramDir,
	}))
	if err := e.Configure(ctx, *boardSize, *komi, *superko); err != nil {
		logw.Exitf(ctx, "Invalid board configuration: %v", err)
	}

	in := make(chan gtp.Command, 1)
	driver := gtp.NewDriver(ctx, e, in)

	lines := engine.ReadStdinLines(ctx)
	out := make(chan string, 100)
	go engine.WriteStdoutLines(ctx, out)

	out <- fmt.Sprintf("%v by %v", e.Name(), e.Author())

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				close(in)
				<-driver.Closed()
				return
			}
			if !dispatch(ctx, in, out, line) {
				close(in)
				<-driver.Closed()
				close(out)
				return
			}

		case <-driver.Closed():
			close(out)
			return
		}
	}
}

// dispatch parses one debug-console line and forwards it as a typed
// gtp.Command, printing the reply. Returns false on "quit".
func dispatch(ctx context.Context, in chan<- gtp.Command, out chan<- string, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "quit", "exit":
		return false

	case "boardsize":
		size, _ := strconv.Atoi(arg(args, 0))
		reply := make(chan error, 1)
		in <- gtp.ConfigureCmd{BoardSize: size, Komi: *komi, Superko: *superko, Reply: reply}
		printErr(out, <-reply)

	case "komi":
		v, _ := strconv.ParseFloat(arg(args, 0), 64)
		reply := make(chan error, 1)
		in <- gtp.ConfigureCmd{BoardSize: *boardSize, Komi: v, Superko: *superko, Reply: reply}
		printErr(out, <-reply)

	case "clear_board":
		reply := make(chan error, 1)
		in <- gtp.ClearBoardCmd{Reply: reply}
		printErr(out, <-reply)

	case "time_settings":
		main, _ := strconv.Atoi(arg(args, 0))
		byoyomi, _ := strconv.Atoi(arg(args, 1))
		stones, _ := strconv.Atoi(arg(args, 2))
		reply := make(chan error, 1)
		in <- gtp.SetTimeCmd{Main: time.Duration(main) * time.Second, Byoyomi: time.Duration(byoyomi) * time.Second, ByoyomiStones: stones, Reply: reply}
		printErr(out, <-reply)

	case "playouts":
		n, _ := strconv.Atoi(arg(args, 0))
		done := make(chan struct{})
		in <- gtp.SetPlayoutsCmd{N: n, Done: done}
		<-done

	case "time_per_move":
		s, _ := strconv.ParseFloat(arg(args, 0), 64)
		done := make(chan struct{})
		in <- gtp.SetTimePerMoveCmd{D: time.Duration(s * float64(time.Second)), Done: done}
		<-done

	case "play":
		c, ok := parseColor(arg(args, 0))
		if !ok {
			out <- "? invalid color"
			return true
		}
		reply := make(chan error, 1)
		in <- gtp.PlayCmd{Color: c, Coord: arg(args, 1), Reply: reply}
		printErr(out, <-reply)

	case "genmove":
		c, ok := parseColor(arg(args, 0))
		if !ok {
			out <- "? invalid color"
			return true
		}
		reply := make(chan gtp.GenMoveResult, 1)
		in <- gtp.GenMoveCmd{Color: c, Reply: reply}
		res := <-reply
		if res.Err != nil {
			out <- fmt.Sprintf("? %v", res.Err)
		} else {
			out <- fmt.Sprintf("= %v", res.Coord)
		}

	case "final_score":
		reply := make(chan gtp.FinalScoreResult, 1)
		in <- gtp.FinalScoreCmd{Reply: reply}
		res := <-reply
		if res.Err != nil {
			out <- fmt.Sprintf("? %v", res.Err)
		} else {
			out <- fmt.Sprintf("= %+.1f", res.Territory.Score)
		}

	default:
		out <- fmt.Sprintf("? unknown command: %v", cmd)
	}
	return true
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseColor(s string) (board.Color, bool) {
	switch strings.ToLower(s) {
	case "b", "black":
		return board.Black, true
	case "w", "white":
		return board.White, true
	default:
		return 0, false
	}
}

func printErr(out chan<- string, err error) {
	if err != nil {
		out <- fmt.Sprintf("? %v", err)
		return
	}
	out <- "= ok"
}
