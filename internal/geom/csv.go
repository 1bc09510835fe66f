package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads points from a CSV with a header row.
// Column detection: x|lon|lng|long|longitude and y|lat|latitude (case-insensitive).
func ReadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return Series{}, err
	}
	if len(recs) == 0 {
		return Series{}, ErrEmptyInput
	}
	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Series{}, errors.New("csv: x/y columns not found")
	}
	var out Series
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out.Xs = append(out.Xs, x)
		out.Ys = append(out.Ys, y)
	}
	if out.Len() == 0 {
		return Series{}, errors.New("csv: no valid points parsed")
	}
	return out, nil
}
