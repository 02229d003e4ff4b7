// Package console drives the engine from a minimal line protocol, adapted
// from the teacher's UCI scanner loop and stripped to this engine's handful
// of commands: "position" (reset to the initial position), "go minimax
// <depth>", "go montecarlo <sims>", "setprofile <name>", "quit". This is a
// manual-play/test driver for the repo itself, not a reimplementation of
// the excluded tournament driver UI — no round-robin scheduling, no CSV
// export, no progress reporting.
package console

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/engine"
	"github.com/hailam/draughts/internal/montecarlo"
)

// Console holds the live board and the currently selected style profile
// across commands.
type Console struct {
	b       *board.Board
	profile string
	rnd     *rand.Rand
	out     io.Writer
}

// New returns a Console at the initial position with profile as its
// starting style profile, writing responses to out.
func New(out io.Writer, profile string) *Console {
	return &Console{
		b:       board.NewBoard(),
		profile: profile,
		rnd:     rand.New(rand.NewSource(1)),
		out:     out,
	}
}

// Run reads commands from r, one per line, until "quit" or EOF.
func (c *Console) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "position":
			c.handlePosition()
		case "go":
			c.handleGo(args)
		case "setprofile":
			c.handleSetProfile(args)
		case "quit":
			return
		default:
			fmt.Fprintf(c.out, "info string unknown command %q\n", cmd)
		}
	}
}

func (c *Console) handlePosition() {
	c.b = board.NewBoard()
	fmt.Fprint(c.out, c.b.String())
}

func (c *Console) handleSetProfile(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "info string usage: setprofile <name>")
		return
	}
	c.profile = args[0]
	fmt.Fprintf(c.out, "info string profile set to %s\n", c.profile)
}

// handleGo dispatches "go minimax <depth>" or "go montecarlo <sims>",
// applies whichever move the chosen searcher returns to the live board, and
// toggles side to move — console owns the board, so it (not Make/Apply) is
// responsible for that per spec's make/undo contract.
func (c *Console) handleGo(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "info string usage: go minimax <depth> | go montecarlo <sims>")
		return
	}
	mode := args[0]
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(c.out, "info string invalid number %q\n", args[1])
		return
	}

	side := c.b.SideToMove()
	var move board.Move
	var ok bool

	switch mode {
	case "minimax":
		if engine.IsMonteCarlo(c.profile) {
			// The MonteCarlo profile is a sentinel: it carries no weight
			// vector and routes decision-making to the Monte-Carlo
			// searcher even when the operator asked for "go minimax".
			mc := montecarlo.NewSearcher(side, n, c.rnd)
			move, ok = mc.BestMove(c.b)
			break
		}
		s := engine.NewMinimaxSearcher(side, n, c.profile, c.rnd)
		move, ok = s.BestMove(c.b)
		if ok {
			fmt.Fprintf(c.out, "info nodes %d cachehits %d hitrate %.1f alphacutoffs %d betacutoffs %d\n",
				s.Nodes(), s.CacheHits(), s.HitRate(), s.AlphaCutoffs(), s.BetaCutoffs())
		}
	case "montecarlo":
		s := montecarlo.NewSearcher(side, n, c.rnd)
		move, ok = s.BestMove(c.b)
	default:
		fmt.Fprintf(c.out, "info string unknown search mode %q\n", mode)
		return
	}

	if !ok {
		fmt.Fprintln(c.out, "bestmove none")
		return
	}

	c.b.Apply(move)
	c.b.SetSideToMove(side.Other())
	fmt.Fprintf(c.out, "bestmove %s\n", move.String())
}
