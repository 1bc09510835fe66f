package geom

import (
	"encoding/json"
	"errors"
)

// ParseGeoJSON extracts the vertices of the first geometry in a GeoJSON document.
// Supports Point, MultiPoint, LineString and Polygon (outer ring), bare or wrapped
// in a Feature or FeatureCollection.
func ParseGeoJSON(data []byte) (Series, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Series{}, err
	}
	t, _ := raw["type"].(string)
	var g map[string]any
	switch t {
	case "":
		return Series{}, errors.New("invalid geojson: missing type")
	case "Feature":
		g, _ = raw["geometry"].(map[string]any)
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				if g, ok = fm["geometry"].(map[string]any); ok {
					break
				}
			}
		}
	default:
		g = raw
	}
	if g == nil {
		return Series{}, errors.New("no geometries found")
	}

	var out Series
	addPoint := func(v any) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				out.Xs = append(out.Xs, x)
				out.Ys = append(out.Ys, y)
			}
		}
	}
	addArray := func(v any) {
		arr, _ := v.([]any)
		for _, el := range arr {
			addPoint(el)
		}
	}
	gt, _ := g["type"].(string)
	switch gt {
	case "Point":
		addPoint(g["coordinates"])
	case "MultiPoint", "LineString":
		addArray(g["coordinates"])
	case "Polygon":
		if rings, ok := g["coordinates"].([]any); ok && len(rings) > 0 {
			addArray(rings[0])
			// rings repeat their first vertex
			if n := out.Len(); n > 1 && out.Xs[0] == out.Xs[n-1] && out.Ys[0] == out.Ys[n-1] {
				out.Xs, out.Ys = out.Xs[:n-1], out.Ys[:n-1]
			}
		}
	default:
		return Series{}, errors.New("unsupported geojson type: " + gt)
	}
	if out.Len() == 0 {
		return Series{}, errors.New("no points found in geojson")
	}
	return out, nil
}
