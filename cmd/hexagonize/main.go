package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hexmesh/internal/batch"
	"hexmesh/internal/config"
	"hexmesh/internal/mesh"
	"hexmesh/internal/objio"
	"hexmesh/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: hexagons)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	offset := flag.Float64("offset", 0, "Hollow inset fraction, 0 < offset < 0.5 (default: 0.2)")
	keepAll := flag.Bool("keep-all", false, "Keep faces with fewer than 6 edges")
	solid := flag.Bool("solid", false, "Do not hollow the hexagons")
	strict := flag.Bool("strict", false, "Reject input that is not all quads")
	preview := flag.Bool("preview", false, "Write a WebP preview next to each output")
	swatch := flag.String("swatch", "", "Image (TGA/JPEG/PNG) whose average color tints the preview")
	plane := flag.Int("plane", 0, "Generate an N x N quad plane as input instead of reading files")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Workers:   *workers,
		Offset:    *offset,
		KeepAll:   *keepAll,
		Solid:     *solid,
		Strict:    *strict,
		Preview:   *preview,
		Swatch:    *swatch,
	})

	opts := cfg.Options()
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputs := flag.Args()
	if *plane > 0 {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("plane%d.obj", *plane))
		if err := objio.WriteFile(path, []*mesh.Mesh{mesh.Plane(*plane, *plane)}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		inputs = append(inputs, path)
	}

	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: please give at least one OBJ file (or -plane N)")
		os.Exit(1)
	}

	base, err := texture.LoadSwatch(cfg.Swatch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: swatch %s: %v (using default color)\n", cfg.Swatch, err)
		base, _ = texture.LoadSwatch("")
	}

	fmt.Printf("Quad -> hexagon conversion\n")
	fmt.Printf("Files: %d, Workers: %d, HexOnly: %v, Hollow: %v (offset %.2f)\n",
		len(inputs), cfg.Workers, opts.HexOnly, opts.Hollow, opts.Offset)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Suffix:      cfg.Suffix,
		Options:     opts,
		Preview:     cfg.Preview,
		PreviewSize: cfg.PreviewSize,
		Supersample: cfg.Supersample,
		Base:        base,
		Workers:     cfg.Workers,
	}, inputs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %s (%d meshes, %d centers, %d faces) -> %s\n",
				r.Name, r.Message, r.Meshes, r.Centers, r.Faces, r.Output)
		} else {
			failed++
		}
	}

	fmt.Printf("Converted: %d/%d\n", success, len(inputs))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, r := range results {
			if !r.Success {
				fmt.Printf("  %s: %s\n", r.Name, r.Error)
			}
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
