package core

// Tally accumulates per-worker diagnostic counters. Each render worker
// owns a private Tally; totals are merged single-threaded after all
// tiles complete, so no synchronization is needed on the hot path.
type Tally struct {
	PrimaryRays int64 // Camera rays traced
	SceneRays   int64 // Scene intersection queries (incl. secondary rays)
	ShadowRays  int64 // Visibility queries for next-event estimation
	SDFMarches  int64 // Sphere-tracing invocations
	SDFSteps    int64 // Total sphere-tracing steps taken
}

// Merge adds another tally's counters into this one
func (t *Tally) Merge(other Tally) {
	t.PrimaryRays += other.PrimaryRays
	t.SceneRays += other.SceneRays
	t.ShadowRays += other.ShadowRays
	t.SDFMarches += other.SDFMarches
	t.SDFSteps += other.SDFSteps
}
