package render

import (
	"fmt"
	"strconv"
	"strings"
)

// AnnotateMode selects the text drawn next to a layer's points.
type AnnotateMode int

const (
	AnnotateNone AnnotateMode = iota
	// AnnotateIndex labels every point with its position in the sequence.
	AnnotateIndex
	// AnnotateLabel labels the first point with the layer label.
	AnnotateLabel
)

var annotateNames = []string{"none", "index", "label"}

func (m AnnotateMode) String() string {
	if m < 0 || int(m) >= len(annotateNames) {
		return "AnnotateMode(" + strconv.Itoa(int(m)) + ")"
	}
	return annotateNames[m]
}

func ParseAnnotateMode(s string) (AnnotateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AnnotateNone, nil
	case "index":
		return AnnotateIndex, nil
	case "label":
		return AnnotateLabel, nil
	}
	return AnnotateNone, fmt.Errorf("unknown annotate mode %q", s)
}

func (m AnnotateMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *AnnotateMode) UnmarshalText(b []byte) error {
	v, err := ParseAnnotateMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Annotations returns the text for each point of l; empty strings mean no label.
// A closed layer's repeated last point is never annotated.
func (l Layer) Annotations() []string {
	if l.Annotate == AnnotateNone || len(l.Xs) == 0 {
		return nil
	}
	n := len(l.Xs)
	if l.Close && n > 1 {
		n--
	}
	out := make([]string, n)
	switch l.Annotate {
	case AnnotateIndex:
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
	case AnnotateLabel:
		out[0] = l.Label
	}
	return out
}
