package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/outliner/internal/geo"
	"github.com/woozymasta/outliner/internal/logger"
	"github.com/woozymasta/outliner/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input      string `short:"i" long:"in" description:"Input GeoJSON file path. Reads from stdin if empty"`
	Output     string `short:"o" long:"out" description:"Output WebP file path" required:"true"`
	Size       int    `short:"s" long:"size" description:"Output image size in pixels" default:"512"`
	Color      string `short:"C" long:"color" description:"Fill color" default:"#1f6feb"`
	Background string `short:"b" long:"background" description:"Background color" default:"#ffffff"`
}

// Internal structures for JSON parsing
type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type geoJSONFeature struct {
	Geometry geoJSONGeometry `json:"geometry"`
}

type geoJSONRoot struct {
	Type        string           `json:"type"`
	Features    []geoJSONFeature `json:"features"`
	Geometry    *geoJSONGeometry `json:"geometry"`
	Coordinates json.RawMessage  `json:"coordinates"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
	} else {
		inputData, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}

	mp, err := extractMultiPolygons(inputData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse GeoJSON")
	}
	if len(mp) == 0 {
		log.Fatal().Msg("No Polygon or MultiPolygon geometry found in input")
	}

	root := geo.LinkedFromMultiPolygon(mp)

	loops := 0
	for p := root; p != nil; p = p.Next {
		loops += p.CountLoops()
	}
	log.Info().
		Int("polygons", geo.CountPolygons(root)).
		Int("loops", loops).
		Msg("Linked structure rebuilt from GeoJSON")

	fill, err := render.ParseHexColor(opts.Color)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid fill color")
	}
	background, err := render.ParseHexColor(opts.Background)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid background color")
	}

	if err := render.WriteWebP(opts.Output, root, opts.Size, fill, background); err != nil {
		log.Fatal().Err(err).Msg("Failed to write WebP")
	}

	geo.Destroy(root)

	log.Info().Str("path", opts.Output).Msg("WebP written")
}

// extractMultiPolygons collects polygonal geometry from a GeoJSON
// document: a FeatureCollection, a single Feature, or a bare geometry.
func extractMultiPolygons(data []byte) ([][][][]float64, error) {
	var root geoJSONRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	var out [][][][]float64
	add := func(g geoJSONGeometry) error {
		switch g.Type {
		case "Polygon":
			var rings [][][]float64
			if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
				return err
			}
			out = append(out, rings)
		case "MultiPolygon":
			var mp [][][][]float64
			if err := json.Unmarshal(g.Coordinates, &mp); err != nil {
				return err
			}
			out = append(out, mp...)
		}
		return nil
	}

	switch root.Type {
	case "FeatureCollection":
		for _, f := range root.Features {
			if err := add(f.Geometry); err != nil {
				return nil, err
			}
		}
	case "Feature":
		if root.Geometry != nil {
			if err := add(*root.Geometry); err != nil {
				return nil, err
			}
		}
	case "Polygon", "MultiPolygon":
		if err := add(geoJSONGeometry{Type: root.Type, Coordinates: root.Coordinates}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported geojson type: %q", root.Type)
	}

	return out, nil
}
