package geom

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Supported reports whether Load knows how to read the file at path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".txt", ".hull", ".wkt", ".csv", ".geojson", ".json":
		return true
	}
	return false
}

// Load reads one dataset. The format is picked from the file extension; plain
// text files hold a bracketed coordinate list. The label defaults to the base name.
func Load(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, err
	}
	defer f.Close()
	s, err := decode(path, f)
	if err != nil {
		return Series{}, fmt.Errorf("load %s: %w", path, err)
	}
	if s.Label == "" {
		s.Label = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

func decode(path string, r io.Reader) (Series, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		return ReadCSV(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Series{}, err
	}
	switch ext {
	case "", ".txt", ".hull":
		xs, ys, err := ParseCoordList(string(data))
		if err != nil {
			return Series{}, err
		}
		return Series{Xs: xs, Ys: ys}, nil
	case ".wkt":
		return ParseWKT(string(data))
	case ".geojson", ".json":
		return ParseGeoJSON(bytes.TrimSpace(data))
	}
	return Series{}, fmt.Errorf("unsupported file: %s", ext)
}
