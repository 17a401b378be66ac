package model

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Placement asks for a registered pattern to be stamped at column X, row Y
type Placement struct {
	Pattern string
	X       int
	Y       int
}

// ReadPlacements parses "name,x,y" records in order.
// Blank lines and lines starting with '#' are skipped.
func ReadPlacements(r io.Reader) ([]Placement, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var placements []Placement
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedPlacement, "[ReadPlacements] %v", err)
		}
		line, _ := reader.FieldPos(0)

		pl, err := parsePlacement(record)
		if err != nil {
			return nil, errors.Wrapf(err, "[ReadPlacements] line %d", line)
		}
		placements = append(placements, pl)
	}
	return placements, nil
}

func parsePlacement(record []string) (Placement, error) {
	if len(record) != 3 {
		return Placement{}, errors.Wrapf(ErrMalformedPlacement, "want 3 fields, got %d", len(record))
	}
	name := strings.TrimSpace(record[0])
	if name == "" {
		return Placement{}, errors.Wrap(ErrMalformedPlacement, "empty pattern name")
	}
	x, err := parseOffset(record[1])
	if err != nil {
		return Placement{}, errors.Wrap(err, "x")
	}
	y, err := parseOffset(record[2])
	if err != nil {
		return Placement{}, errors.Wrap(err, "y")
	}
	return Placement{Pattern: name, X: x, Y: y}, nil
}

func parseOffset(field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedPlacement, "offset %q is not an integer", field)
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrMalformedPlacement, "offset %d is negative", v)
	}
	return v, nil
}

// LoadPlacementFile reads placement records from a CSV file
func LoadPlacementFile(path string) ([]Placement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPlacementFile] failed to open file: %+v", path)
	}
	defer f.Close()

	placements, err := ReadPlacements(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPlacementFile] %s", path)
	}
	return placements, nil
}
