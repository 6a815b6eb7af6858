package renderer

import (
	"runtime"
	"sync"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID        int
	Samples       int
	DiscardedNaNs int64
}

// WorkerPool manages parallel tile rendering. Each worker owns a
// private ray tally so the hot path takes no locks; tallies are merged
// after the pool drains.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	renderer    *Renderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	tally       core.Tally
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *Renderer, numTiles, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, numTiles),
		resultQueue: make(chan TileResult, numTiles),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop shuts down all workers and returns the merged ray tally
func (wp *WorkerPool) Stop() core.Tally {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)

	var tally core.Tally
	for _, worker := range wp.workers {
		tally.Merge(worker.tally)
	}
	return tally
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each tile writes to a disjoint region of the shared
		// framebuffer, so no synchronization is needed here
		samples, discarded := w.renderer.renderTile(task.Tile, &w.tally)

		w.resultQueue <- TileResult{
			TaskID:        task.TaskID,
			Samples:       samples,
			DiscardedNaNs: discarded,
		}
	}
}
