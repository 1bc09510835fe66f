package geom

import (
	"strconv"
	"strings"
)

var bracketStripper = strings.NewReplacer("[", "", "]", "")

// ParseCoordList parses a bracketed coordinate list such as "[[1,2],[3,4]]" into
// index-aligned x and y sequences. Brackets are stripped wherever they appear, so
// nesting depth is not checked; only the pairing of the comma-separated tokens is.
func ParseCoordList(s string) (xs, ys []float64, err error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil, ErrEmptyInput
	}
	tokens := strings.Split(bracketStripper.Replace(s), ",")
	if len(tokens)%2 != 0 {
		return nil, nil, &FormatError{Tokens: len(tokens)}
	}
	n := len(tokens) / 2
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	for i := 0; i < len(tokens); i += 2 {
		x, err := parseToken(tokens[i], i)
		if err != nil {
			return nil, nil, err
		}
		y, err := parseToken(tokens[i+1], i+1)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

func parseToken(tok string, idx int) (float64, error) {
	t := strings.TrimSpace(tok)
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &ParseError{Token: t, Index: idx, Err: err}
	}
	return v, nil
}

// FormatCoordList is the inverse of ParseCoordList. Values use the shortest
// representation that parses back to the same float64.
func FormatCoordList(xs, ys []float64) (string, error) {
	if len(xs) != len(ys) {
		return "", &LengthMismatchError{Xs: len(xs), Ys: len(ys)}
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		b.WriteString(strconv.FormatFloat(xs[i], 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(ys[i], 'g', -1, 64))
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String(), nil
}
