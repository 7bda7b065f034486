package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/rollcube/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.DrawTextColor(0, 1, "xyz", core.ColorOrange)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if lines[0] != "abcd      " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xyz       " {
		t.Errorf("line 1 = %q", lines[1])
	}
}
