package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT reads the vertices of a WKT geometry into a Series.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...), POLYGON((x y, ...)).
// Only the outer ring of a polygon is kept.
func ParseWKT(wkt string) (Series, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Series{}, ErrEmptyInput
	}
	up := strings.ToUpper(s)
	open, closing := "(", ")"
	var kind string
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		kind = "multipoint"
	case strings.HasPrefix(up, "POINT"):
		kind = "point"
	case strings.HasPrefix(up, "LINESTRING"):
		kind = "linestring"
	case strings.HasPrefix(up, "POLYGON"):
		kind = "polygon"
		open, closing = "((", "))"
	default:
		return Series{}, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, open)
	j := strings.LastIndex(s, closing)
	if i < 0 || j <= i {
		return Series{}, errors.New("wkt " + kind + ": invalid")
	}
	block := s[i+len(open) : j]
	if kind == "polygon" {
		// outer ring only
		if k := strings.Index(block, ")"); k >= 0 {
			block = block[:k]
		}
	}
	var out Series
	for _, tup := range strings.Split(block, ",") {
		// MULTIPOINT may wrap each tuple in its own parentheses
		tup = strings.Trim(strings.TrimSpace(tup), "()")
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out.Xs = append(out.Xs, x)
		out.Ys = append(out.Ys, y)
	}
	if out.Len() == 0 {
		return Series{}, errors.New("wkt: no coordinates parsed")
	}
	// a WKT polygon ring repeats its first vertex; drop it so closing happens once
	if kind == "polygon" && out.Len() > 1 {
		last := out.Len() - 1
		if out.Xs[0] == out.Xs[last] && out.Ys[0] == out.Ys[last] {
			out.Xs, out.Ys = out.Xs[:last], out.Ys[:last]
		}
	}
	return out, nil
}
