// Package geo handles geographic data structures and coordinate conversions.
package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
// Coordinates nesting depends on Type: [x y] for Point, ring and polygon
// nesting for Polygon and MultiPolygon.
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// MultiPolygon walks the polygon chain starting at p and returns GeoJSON
// MultiPolygon nesting: polygons, each a list of rings, each a list of
// [x y] positions. Rings are closed by repeating the first coordinate,
// per RFC 7946. Chain order is preserved: the first loop of each polygon
// is its outer ring, the rest are holes.
func (p *LinkedPolygon) MultiPolygon() [][][][]float64 {
	polygons := make([][][][]float64, 0, CountPolygons(p))
	for ; p != nil; p = p.Next {
		rings := make([][][]float64, 0, p.CountLoops())
		for loop := p.First; loop != nil; loop = loop.Next {
			ring := make([][]float64, 0, loop.CountCoords()+1)
			for coord := loop.First; coord != nil; coord = coord.Next {
				ring = append(ring, []float64{coord.Vertex.X, coord.Vertex.Y})
			}
			if len(ring) > 0 {
				ring = append(ring, []float64{loop.First.Vertex.X, loop.First.Vertex.Y})
			}
			rings = append(rings, ring)
		}
		polygons = append(polygons, rings)
	}
	return polygons
}

// LinkedFromMultiPolygon rebuilds a linked structure from GeoJSON
// MultiPolygon nesting, the inverse of MultiPolygon. A ring's closing
// coordinate (repeating the first) is dropped. The returned head
// polygon is owned by the caller, as with any chain head.
func LinkedFromMultiPolygon(mp [][][][]float64) *LinkedPolygon {
	root := &LinkedPolygon{}
	current := root
	for i, rings := range mp {
		if i > 0 {
			current = AddNewPolygon(current)
		}
		for _, ring := range rings {
			n := len(ring)
			if n > 1 && ring[0][0] == ring[n-1][0] && ring[0][1] == ring[n-1][1] {
				n--
			}
			loop := current.AddLoop(&LinkedLoop{})
			for _, pos := range ring[:n] {
				loop.AddCoord(Point{X: pos[0], Y: pos[1]})
			}
		}
	}
	return root
}

// FeatureCollectionFromLinked wraps the polygon chain into a feature
// collection with a single MultiPolygon feature.
func FeatureCollectionFromLinked(p *LinkedPolygon, props map[string]interface{}) GeoJSONFeatureCollection {
	if props == nil {
		props = map[string]interface{}{}
	}
	return GeoJSONFeatureCollection{
		Type: "FeatureCollection",
		Features: []GeoJSONFeature{{
			Type:       "Feature",
			Properties: props,
			Geometry: GeoJSONGeometry{
				Type:        "MultiPolygon",
				Coordinates: p.MultiPolygon(),
			},
		}},
	}
}
