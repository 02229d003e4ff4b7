package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPositionThenGoMinimaxReturnsBestMove(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, "Expert")
	c.Run(strings.NewReader("position\ngo minimax 1\nquit\n"))

	if !strings.Contains(out.String(), "bestmove") {
		t.Fatalf("expected a bestmove line in output, got: %s", out.String())
	}
}

func TestGoMontecarloReturnsBestMove(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, "Expert")
	c.Run(strings.NewReader("position\ngo montecarlo 50\nquit\n"))

	if !strings.Contains(out.String(), "bestmove") {
		t.Fatalf("expected a bestmove line in output, got: %s", out.String())
	}
}

func TestSetProfileMonteCarloRoutesGoMinimaxToMonteCarlo(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, "Expert")
	c.Run(strings.NewReader("position\nsetprofile MonteCarlo\ngo minimax 20\nquit\n"))

	if strings.Contains(out.String(), "cachehits") {
		t.Fatal("expected no minimax node-count line when routed to Monte Carlo")
	}
	if !strings.Contains(out.String(), "bestmove") {
		t.Fatalf("expected a bestmove line in output, got: %s", out.String())
	}
}

func TestUnknownCommandIsReported(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, "Expert")
	c.Run(strings.NewReader("frobnicate\nquit\n"))

	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected an unknown-command notice, got: %s", out.String())
	}
}
