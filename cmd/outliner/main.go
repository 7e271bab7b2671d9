package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/woozymasta/outliner/internal/config"
	"github.com/woozymasta/outliner/internal/geo"
	"github.com/woozymasta/outliner/internal/logger"
	"github.com/woozymasta/outliner/internal/render"
	"github.com/woozymasta/outliner/internal/tracer"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string   `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	OutputDir  string   `short:"o" long:"out"       env:"OUTPUT_DIR"  description:"Output directory (overrides config)"`
	Limit      []string `short:"l" long:"limit"     env:"LIMIT_NAMES" description:"Limit processing to specific layer names"`
	Force      bool     `short:"f" long:"force"     description:"Force overwrite of existing files"`
	NoMinify   bool     `short:"M" long:"no-minify" description:"Write indented GeoJSON instead of minified"`
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

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	outputDir := cfg.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	if outputDir == "" {
		outputDir = "out"
	}

	// Filter layers if limit is set
	layersToProcess := cfg.Layers
	if len(opts.Limit) > 0 {
		layersToProcess = make([]config.Layer, 0)
		availableLayers := make(map[string]config.Layer)
		for _, l := range cfg.Layers {
			availableLayers[l.Name] = l
		}

		seen := make(map[string]bool)

		for _, limitName := range opts.Limit {
			if seen[limitName] {
				continue
			}
			seen[limitName] = true

			if l, ok := availableLayers[limitName]; ok {
				layersToProcess = append(layersToProcess, l)
			} else {
				log.Error().
					Str("name", limitName).
					Msg("Layer specified in --limit not found in configuration")
			}
		}
	}

	log.Info().
		Int("layers_total", len(cfg.Layers)).
		Int("layers_queued", len(layersToProcess)).
		Str("output_dir", outputDir).
		Msg("Starting outliner")

	for _, layer := range layersToProcess {
		if err := processLayer(layer, outputDir, opts.Force, !opts.NoMinify); err != nil {
			log.Error().Err(err).Str("layer", layer.Name).Msg("Failed to process layer")
		}
	}

	log.Info().Msg("Outliner finished successfully")
}

// processLayer traces one grid layer into a linked structure, writes its
// GeoJSON (and optional WebP preview), then tears the structure down.
func processLayer(layer config.Layer, outputDir string, force, minified bool) error {
	destFile := filepath.Join(outputDir, layer.Name+".geojson")
	if _, err := os.Stat(destFile); err == nil && !force {
		log.Debug().Str("layer", layer.Name).Msg("GeoJSON file exists, skipping")
		return nil
	}

	grid, err := tracer.ParseRows(layer.Rows)
	if err != nil {
		return err
	}

	var transform func(geo.Point) geo.Point
	if layer.Project {
		extent := grid.Extent()
		transform = func(p geo.Point) geo.Point {
			lon, lat := geo.GridToLonLat(p.X, p.Y, extent)
			return geo.Point{X: lon, Y: lat}
		}
	}

	root := &geo.LinkedPolygon{}
	polygons := tracer.Trace(grid, root, transform)

	loops, coords := 0, 0
	for p := root; p != nil; p = p.Next {
		loops += p.CountLoops()
		for l := p.First; l != nil; l = l.Next {
			coords += l.CountCoords()
		}
	}
	log.Info().
		Str("layer", layer.Name).
		Int("polygons", geo.CountPolygons(root)).
		Int("loops", loops).
		Int("coords", coords).
		Msg("Layer traced")

	if polygons == 0 {
		log.Warn().Str("layer", layer.Name).Msg("Layer produced no polygons, skipping output")
		return nil
	}

	props := map[string]interface{}{"name": layer.Name}
	for k, v := range layer.Properties {
		props[k] = v
	}
	if layer.Attribution != "" {
		props["attribution"] = layer.Attribution
	}

	if err := saveGeoJSON(destFile, geo.FeatureCollectionFromLinked(root, props), minified); err != nil {
		return err
	}

	if layer.Render {
		fill, err := render.ParseHexColor(colorOrDefault(layer.Color))
		if err != nil {
			return err
		}
		previewFile := filepath.Join(outputDir, layer.Name+".webp")
		background := render.MustHexColor("#ffffff")
		if err := render.WriteWebP(previewFile, root, layer.RenderSize, fill, background); err != nil {
			return err
		}
		log.Info().Str("layer", layer.Name).Str("path", previewFile).Msg("Preview written")
	}

	geo.Destroy(root)
	return nil
}

// saveGeoJSON marshals the feature collection and writes it to disk,
// minified unless disabled.
func saveGeoJSON(path string, fc geo.GeoJSONFeatureCollection, minified bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var data []byte
	var err error
	if minified {
		data, err = json.Marshal(fc)
		if err != nil {
			return err
		}
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		data, err = m.Bytes("application/json", data)
	} else {
		data, err = json.MarshalIndent(fc, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func colorOrDefault(c string) string {
	if c == "" {
		return "#1f6feb"
	}
	return c
}
