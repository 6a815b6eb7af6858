package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/integrator"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/renderer"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
	"github.com/urfave/cli"
)

// SceneNames lists the built-in demo scenes accepted by render
var SceneNames = []string{"cornell", "cornell-fog", "sdf-showcase"}

func buildScene(name string, aspect float64) (*scene.Scene, error) {
	switch name {
	case "cornell":
		return scene.NewCornellScene(aspect), nil
	case "cornell-fog":
		return scene.NewFoggyCornellScene(aspect), nil
	case "sdf-showcase":
		return scene.NewSDFShowcaseScene(aspect), nil
	}
	return nil, fmt.Errorf("unknown scene %q (available: %v)", name, SceneNames)
}

func buildIntegrator(name string, config core.SamplingConfig) (integrator.Integrator, error) {
	switch name {
	case "path":
		return integrator.NewPathTracer(config), nil
	case "path-bsdf":
		return integrator.NewBSDFPathTracer(config), nil
	case "path-naive":
		return integrator.NewNaivePathTracer(config), nil
	case "path-emitter":
		return integrator.NewEmitterPathTracer(config), nil
	case "volumetric":
		return integrator.NewVolumetricPathTracer(config), nil
	}
	return nil, fmt.Errorf("unknown integrator %q", name)
}

func buildSplitStrategy(name string) (geometry.SplitStrategy, error) {
	switch name {
	case "median":
		return geometry.SplitMedian, nil
	case "spatial":
		return geometry.SplitSpatial, nil
	case "sah":
		return geometry.SplitSAH, nil
	}
	return geometry.SplitSAH, fmt.Errorf("unknown split strategy %q", name)
}

// RenderFrame renders a still frame of a built-in scene to a PNG file
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	sc, err := buildScene(ctx.String("scene"), float64(width)/float64(height))
	if err != nil {
		return err
	}

	config := sc.SamplingConfig()
	if spp := ctx.Int("spp"); spp > 0 {
		config.SamplesPerPixel = spp
	}
	if depth := ctx.Int("max-depth"); depth > 0 {
		config.MaxDepth = depth
	}
	sc.SetSamplingConfig(config)

	strategy, err := buildSplitStrategy(ctx.String("split"))
	if err != nil {
		return err
	}
	sc.Build(strategy)

	integ, err := buildIntegrator(ctx.String("integrator"), config)
	if err != nil {
		return err
	}

	opts := renderer.Options{
		Width:      width,
		Height:     height,
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
		Seed:       int64(ctx.Int("seed")),
		IgnoreNaNs: !ctx.Bool("keep-nans"),
	}

	r, err := renderer.NewRenderer(sc, integ, opts)
	if err != nil {
		return err
	}

	img, stats, err := r.Render()
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)})
	table.Append([]string{"Samples", fmt.Sprintf("%d", stats.TotalSamples)})
	table.Append([]string{"Tiles", fmt.Sprintf("%d", stats.TotalTiles)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", stats.Workers)})
	table.Append([]string{"Primary rays", fmt.Sprintf("%d", stats.Tally.PrimaryRays)})
	table.Append([]string{"Scene rays", fmt.Sprintf("%d", stats.Tally.SceneRays)})
	table.Append([]string{"Shadow rays", fmt.Sprintf("%d", stats.Tally.ShadowRays)})
	table.Append([]string{"SDF marches", fmt.Sprintf("%d", stats.Tally.SDFMarches)})
	table.Append([]string{"SDF steps", fmt.Sprintf("%d", stats.Tally.SDFSteps)})
	table.Append([]string{"Discarded NaNs", fmt.Sprintf("%d", stats.DiscardedNaNs)})
	table.Append([]string{"Rays/second", fmt.Sprintf("%.0f", stats.RaysPerSecond())})
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%s", stats.Duration.Round(time.Millisecond))})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
