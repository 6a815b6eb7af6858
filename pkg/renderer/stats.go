package renderer

import (
	"time"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels   int
	TotalSamples  int
	TotalTiles    int
	Workers       int
	Duration      time.Duration
	DiscardedNaNs int64
	Tally         core.Tally
}

// RaysPerSecond returns the aggregate ray throughput over the render
func (rs *RenderStats) RaysPerSecond() float64 {
	secs := rs.Duration.Seconds()
	if secs <= 0 {
		return 0
	}
	total := rs.Tally.PrimaryRays + rs.Tally.SceneRays + rs.Tally.ShadowRays
	return float64(total) / secs
}

// AverageSamples returns the mean sample count per pixel
func (rs *RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}
