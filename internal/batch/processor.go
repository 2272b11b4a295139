package batch

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"hexmesh/internal/hexagon"
	"hexmesh/internal/mesh"
	"hexmesh/internal/objio"
	"hexmesh/internal/postprocess"
	"hexmesh/internal/raster"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Suffix      string
	Options     hexagon.Options
	Preview     bool
	PreviewSize int
	Supersample int
	Base        color.NRGBA
	Workers     int
	// Quiet disables the progress ticker.
	Quiet bool
}

// Result holds the outcome of processing one input file.
type Result struct {
	Name    string `json:"name"`
	Input   string `json:"input"`
	Output  string `json:"output,omitempty"`
	Preview string `json:"preview,omitempty"`
	Meshes  int    `json:"meshes"`
	Faces   int    `json:"faces"`
	Centers int    `json:"centers"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Run converts all inputs using a worker pool. Each file is parsed,
// converted and written by one worker; meshes are never shared.
func Run(cfg Config, inputs []string) []Result {
	total := len(inputs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if !cfg.Quiet {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processFile(cfg, inputs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, input string) Result {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	res := Result{Name: name, Input: input}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	meshes, err := objio.ParseFile(input)
	if err != nil {
		return fail(err)
	}
	if len(meshes) == 0 {
		return fail(fmt.Errorf("no faces in %s", input))
	}

	converted, err := hexagon.TessellateAll(meshes, cfg.Options)
	if err != nil {
		return fail(err)
	}

	out := make([]*mesh.Mesh, len(converted))
	for i, r := range converted {
		out[i] = r.Mesh
		res.Faces += len(r.Mesh.Faces)
		res.Centers += r.Centers
	}
	res.Meshes = len(out)
	res.Message = converted[0].Message()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fail(err)
	}
	res.Output = filepath.Join(cfg.OutputDir, name+cfg.Suffix+".obj")
	if err := objio.WriteFile(res.Output, out); err != nil {
		return fail(err)
	}

	if cfg.Preview {
		path := filepath.Join(cfg.OutputDir, name+cfg.Suffix+".webp")
		if err := writePreview(cfg, path, out); err != nil {
			return fail(err)
		}
		res.Preview = path
	}

	res.Success = true
	return res
}

func writePreview(cfg Config, path string, meshes []*mesh.Mesh) error {
	img := raster.RenderMeshes(meshes, raster.DefaultView, cfg.Base, cfg.PreviewSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.PreviewSize)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}
