package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordList(t *testing.T) {
	xs, ys, err := ParseCoordList("[[1,2],[3,4]]")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}

func TestParseCoordList_Square(t *testing.T) {
	xs, ys, err := ParseCoordList("[[0,0],[1,0],[1,1],[0,1]]")
	require.NoError(t, err)
	require.Len(t, xs, 4)
	require.Len(t, ys, 4)

	cxs, cys, err := ClosePolygon(xs, ys)
	require.NoError(t, err)
	require.Len(t, cxs, 5)
	assert.Equal(t, 0.0, cxs[4])
	assert.Equal(t, 0.0, cys[4])
	assert.Equal(t, cxs[0], cxs[4])
	assert.Equal(t, cys[0], cys[4])
}

func TestParseCoordList_NeverCloses(t *testing.T) {
	xs, ys, err := ParseCoordList("[[3,7],[9,1],[3,7.5]]")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 9, 3}, xs)
	assert.Equal(t, []float64{7, 1, 7.5}, ys)

	// already-closed input stays exactly as written
	xs, ys, err = ParseCoordList("[[0,0],[1,0],[0,0]]")
	require.NoError(t, err)
	assert.Len(t, xs, 3)
	assert.Len(t, ys, 3)
}

func TestParseCoordList_Whitespace(t *testing.T) {
	xs, ys, err := ParseCoordList(" [[1.5, -2], [ 3e2 ,4]]\n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 300}, xs)
	assert.Equal(t, []float64{-2, 4}, ys)
}

func TestParseCoordList_LenientNesting(t *testing.T) {
	xs, ys, err := ParseCoordList("[[[1,2]],[3,4")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}

func TestParseCoordList_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace", " \n\t", ErrEmptyInput},
		{"odd tokens", "[[1,2],[3]]", ErrFormat},
		{"brackets only", "[]", ErrFormat},
		{"non-numeric", "[[a,2]]", ErrParse},
		{"non-numeric y", "[[1,2],[3,x]]", ErrParse},
		{"empty token", "[[1,],[3,4]]", ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys, err := ParseCoordList(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, xs)
			assert.Nil(t, ys)
		})
	}
}

func TestParseCoordList_ErrorDetails(t *testing.T) {
	_, _, err := ParseCoordList("[[1,2],[3]]")
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 3, fe.Tokens)

	_, _, err = ParseCoordList("[[1,2],[3,oops]]")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "oops", pe.Token)
	assert.Equal(t, 3, pe.Index)
	assert.Contains(t, err.Error(), `"oops"`)
}

func TestFormatCoordList_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 50; n++ {
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := range xs {
			switch i % 3 {
			case 0:
				xs[i], ys[i] = float64(rng.Intn(2000)-1000), float64(rng.Intn(2000)-1000)
			case 1:
				xs[i], ys[i] = rng.NormFloat64()*1e6, rng.Float64()
			default:
				xs[i], ys[i] = -rng.ExpFloat64()*1e-9, math.Ldexp(rng.Float64(), 60)
			}
		}
		text, err := FormatCoordList(xs, ys)
		require.NoError(t, err)
		gotX, gotY, err := ParseCoordList(text)
		require.NoError(t, err)
		require.Equal(t, xs, gotX, "n=%d", n)
		require.Equal(t, ys, gotY, "n=%d", n)
	}
}

func TestFormatCoordList(t *testing.T) {
	text, err := FormatCoordList([]float64{1, 3.5}, []float64{-2, 4})
	require.NoError(t, err)
	assert.Equal(t, "[[1,-2],[3.5,4]]", text)

	_, err = FormatCoordList([]float64{1}, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
