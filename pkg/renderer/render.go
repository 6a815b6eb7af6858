package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/tiwylli/PBR-Engine-sub000/log"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/integrator"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

// Options contains configuration for a render
type Options struct {
	Width      int
	Height     int
	TileSize   int   // Size of each tile (64x64 recommended)
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for all per-tile samplers
	IgnoreNaNs bool  // Drop non-finite samples instead of averaging them in
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     450,
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
		IgnoreNaNs: true,
	}
}

// Renderer drives a block-parallel render: the image is cut into
// tiles, each tile is rendered by one worker with a sampler forked
// from the tile's ID, so the output is bit-identical regardless of
// worker count or tile scheduling order.
type Renderer struct {
	scene       *scene.Scene
	integrator  integrator.Integrator
	options     Options
	framebuffer []core.Vec3 // Row-major accumulation buffer
	baseSampler core.Sampler
	logger      log.Logger
}

// NewRenderer creates a renderer for the given scene and integrator
func NewRenderer(s *scene.Scene, integ integrator.Integrator, options Options) (*Renderer, error) {
	if options.Width <= 0 || options.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid image size %dx%d", options.Width, options.Height)
	}
	if options.TileSize <= 0 {
		options.TileSize = 64
	}

	return &Renderer{
		scene:       s,
		integrator:  integ,
		options:     options,
		framebuffer: make([]core.Vec3, options.Width*options.Height),
		baseSampler: core.NewRandomSampler(options.Seed, s.SamplingConfig().SamplesPerPixel),
		logger:      log.New("renderer"),
	}, nil
}

// Render traces the full image and returns it with the render stats
func (r *Renderer) Render() (*image.RGBA, RenderStats, error) {
	start := time.Now()

	tiles := NewTileGrid(r.options.Width, r.options.Height, r.options.TileSize)
	pool := NewWorkerPool(r, len(tiles), r.options.NumWorkers)

	spp := r.scene.SamplingConfig().SamplesPerPixel
	r.logger.Infof("rendering %dx%d, %d samples/pixel, %d tiles, %d workers",
		r.options.Width, r.options.Height, spp, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: tile.ID})
	}

	stats := RenderStats{
		TotalPixels: r.options.Width * r.options.Height,
		TotalTiles:  len(tiles),
		Workers:     pool.GetNumWorkers(),
	}
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("renderer: worker pool closed unexpectedly")
		}
		stats.TotalSamples += result.Samples
		stats.DiscardedNaNs += result.DiscardedNaNs
	}

	stats.Tally = pool.Stop()
	stats.Duration = time.Since(start)

	r.logger.Infof("render finished in %v (%.0f rays/s)", stats.Duration.Round(time.Millisecond), stats.RaysPerSecond())
	if stats.DiscardedNaNs > 0 {
		r.logger.Warningf("discarded %d non-finite samples", stats.DiscardedNaNs)
	}

	return r.toImage(), stats, nil
}

// renderTile traces every pixel in the tile's bounds into the shared
// framebuffer. Returns the number of samples traced and the number of
// non-finite samples discarded.
func (r *Renderer) renderTile(tile *Tile, tally *core.Tally) (int, int64) {
	sampler := r.baseSampler.Fork(r.options.Seed + int64(tile.ID)*2654435761)
	spp := sampler.NumSamples()

	samples := 0
	var discarded int64

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			accum := core.Vec3{}
			valid := 0

			for s := 0; s < spp; s++ {
				jitter := sampler.Get2D()
				u := (float64(x) + jitter.X) / float64(r.options.Width)
				v := 1.0 - (float64(y)+jitter.Y)/float64(r.options.Height)

				ray := r.scene.Camera.GetRay(u, v)
				tally.PrimaryRays++

				sample := r.integrator.RayColor(ray, r.scene, sampler, tally)
				if !sample.IsFinite() {
					discarded++
					if r.options.IgnoreNaNs {
						continue
					}
				}
				accum = accum.Add(sample)
				valid++
			}

			denom := spp
			if r.options.IgnoreNaNs && valid > 0 {
				denom = valid
			}
			r.framebuffer[y*r.options.Width+x] = accum.Multiply(1.0 / float64(denom))
			samples += spp
		}
	}

	return samples, discarded
}

// toImage converts the linear framebuffer into a gamma-corrected RGBA image
func (r *Renderer) toImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.options.Width, r.options.Height))

	for y := 0; y < r.options.Height; y++ {
		for x := 0; x < r.options.Width; x++ {
			c := r.framebuffer[y*r.options.Width+x].
				Clamp(0, 1).
				GammaCorrect(2.2)

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(math.Round(c.X * 255)),
				G: uint8(math.Round(c.Y * 255)),
				B: uint8(math.Round(c.Z * 255)),
				A: 255,
			})
		}
	}

	return img
}

// Framebuffer exposes the linear accumulation buffer, row-major
func (r *Renderer) Framebuffer() []core.Vec3 {
	return r.framebuffer
}
