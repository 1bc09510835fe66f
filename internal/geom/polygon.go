package geom

import "github.com/montanaflynn/stats"

// CheckAligned returns ErrEmptyInput or a *LengthMismatchError when xs and ys
// cannot describe a point sequence.
func CheckAligned(xs, ys []float64) error {
	if len(xs) == 0 || len(ys) == 0 {
		return ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return &LengthMismatchError{Xs: len(xs), Ys: len(ys)}
	}
	return nil
}

// ClosePolygon returns copies of xs and ys with the first point appended, so a
// path drawn through them returns to its start. The inputs are not modified.
func ClosePolygon(xs, ys []float64) ([]float64, []float64, error) {
	if err := CheckAligned(xs, ys); err != nil {
		return nil, nil, err
	}
	cxs := make([]float64, len(xs), len(xs)+1)
	cys := make([]float64, len(ys), len(ys)+1)
	copy(cxs, xs)
	copy(cys, ys)
	return append(cxs, xs[0]), append(cys, ys[0]), nil
}

// Bounds returns the bounding box of the points. Empty input yields a zero box.
func Bounds(xs, ys []float64) BBox {
	var bb BBox
	for i := 0; i < len(xs) && i < len(ys); i++ {
		bb.extend(xs[i], ys[i], i == 0)
	}
	return bb
}

// Summarize reports count, bounds and centroid (vertex mean) of the points.
func Summarize(xs, ys []float64) (Summary, error) {
	if err := CheckAligned(xs, ys); err != nil {
		return Summary{}, err
	}
	mx, err := stats.Mean(xs)
	if err != nil {
		return Summary{}, err
	}
	my, err := stats.Mean(ys)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Count:     len(xs),
		BBox:      Bounds(xs, ys),
		CentroidX: mx,
		CentroidY: my,
	}, nil
}
