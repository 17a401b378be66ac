package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		cell      uint8
		neighbors int
		want      uint8
	}{
		{name: "alive underpopulated", cell: Alive, neighbors: 1, want: Dead},
		{name: "alive alone", cell: Alive, neighbors: 0, want: Dead},
		{name: "alive two", cell: Alive, neighbors: 2, want: Alive},
		{name: "alive three", cell: Alive, neighbors: 3, want: Alive},
		{name: "alive overpopulated", cell: Alive, neighbors: 4, want: Dead},
		{name: "alive surrounded", cell: Alive, neighbors: 8, want: Dead},
		{name: "dead two", cell: Dead, neighbors: 2, want: Dead},
		{name: "dead reproduction", cell: Dead, neighbors: 3, want: Alive},
		{name: "dead four", cell: Dead, neighbors: 4, want: Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.cell); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %d) = %d, want %d", tt.neighbors, tt.cell, got, tt.want)
			}
		})
	}
}
