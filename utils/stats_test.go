package utils

import (
	"strings"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 10 {
		t.Fatalf("after first update: %+v", s)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("average = %f, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatal("zero duration should keep the previous rate")
	}
	if !strings.Contains(s.String(), "Gen: 2 | Living: 200") {
		t.Fatalf("String() = %q", s.String())
	}
}
