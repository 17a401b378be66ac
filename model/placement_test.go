package model

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestReadPlacements(t *testing.T) {
	input := `# name,x,y
glider,1,1

blinker, 10, 4
 block ,0,20
`
	got, err := ReadPlacements(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []Placement{
		{Pattern: "glider", X: 1, Y: 1},
		{Pattern: "blinker", X: 10, Y: 4},
		{Pattern: "block", X: 0, Y: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadPlacements() = %+v, want %+v", got, want)
	}
}

func TestReadPlacementsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too few fields", input: "glider,1\n"},
		{name: "too many fields", input: "glider,1,2,3\n"},
		{name: "not a number", input: "glider,one,2\n"},
		{name: "negative", input: "glider,1,-2\n"},
		{name: "empty name", input: ",1,2\n"},
		{name: "bad quoting", input: "\"glider,1,2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPlacements(strings.NewReader(tt.input)); !errors.Is(err, ErrMalformedPlacement) {
				t.Fatalf("err = %v, want ErrMalformedPlacement", err)
			}
		})
	}
}

func TestReadPlacementsReportsLine(t *testing.T) {
	_, err := ReadPlacements(strings.NewReader("glider,1,1\nblock,x,2\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err = %v, want line 2", err)
	}
}

func TestLoadPlacementFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.csv")
	if err := os.WriteFile(path, []byte("glider,0,0\nblock,5,5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadPlacementFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Pattern != "block" {
		t.Fatalf("LoadPlacementFile() = %+v", got)
	}

	if _, err = LoadPlacementFile(filepath.Join(t.TempDir(), "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
