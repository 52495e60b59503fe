package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"FRAME", "DESCRIPTION"})
	table.AddRow([]string{"ufoRed.png", "Red ufo saucer"})
	table.AddRow([]string{"playership3_damage2.png", "Blue player ship v3 dmg2"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}

	// All description columns start at the same offset.
	offset := strings.Index(lines[0], "DESCRIPTION")
	if strings.Index(lines[1], "Red ufo saucer") != offset {
		t.Errorf("row 1 description misaligned:\n%s", output)
	}
	if strings.Index(lines[2], "Blue player ship v3 dmg2") != offset {
		t.Errorf("row 2 description misaligned:\n%s", output)
	}
}

func TestTableRenderANSIWidths(t *testing.T) {
	swatch := "\033[48;2;40;80;180m    \033[0m"

	table := NewTable([]string{"COLOUR", "DESCRIPTION"})
	table.AddRow([]string{swatch + " #2850b4", "Blue player ship"})
	table.AddRow([]string{"#808080", "Grey cockpit"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	offset := strings.Index(lines[0], "DESCRIPTION")

	// Escape sequences take no visible width, so the plain row must
	// align with the swatch row.
	if strings.Index(lines[2], "Grey cockpit") != offset {
		t.Errorf("plain row misaligned against ANSI row:\n%s", table.Render())
	}
}

func TestTableShortRowPadded(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})

	if output := table.Render(); !strings.Contains(output, "only") {
		t.Errorf("short row dropped:\n%s", output)
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain", input: "abc", want: 3},
		{name: "empty", input: "", want: 0},
		{name: "swatch only", input: "\033[48;2;1;2;3m    \033[0m", want: 4},
		{name: "mixed", input: "\033[0mx\033[0m", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleWidth(tt.input); got != tt.want {
				t.Errorf("visibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
