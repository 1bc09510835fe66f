package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width and Height are zero for a degenerate box (single point or collinear axis).
func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// extend grows b to include (x, y). first reports whether b is still unset.
func (b *BBox) extend(x, y float64, first bool) {
	if first {
		*b = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Series is an ordered, index-aligned point sequence: point i is (Xs[i], Ys[i]).
type Series struct {
	Label string
	Xs    []float64
	Ys    []float64
}

func (s Series) Len() int { return len(s.Xs) }

// Summary describes a point sequence for status lines and inspect popups.
type Summary struct {
	Count     int
	BBox      BBox
	CentroidX float64
	CentroidY float64
}
