package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColumnTask asks a worker to render every pixel of one image column
type ColumnTask struct {
	Column int
	Frame  *Framebuffer // Shared framebuffer; each column owns its own cells
}

// ColumnResult reports a finished column
type ColumnResult struct {
	Column  int
	Samples int
}

// WorkerPool manages parallel column rendering
type WorkerPool struct {
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
	workers     []*Worker
	numWorkers  int
	completed   atomic.Int64 // Columns finished so far; only ever increases
	wg          sync.WaitGroup
}

// Worker renders columns with its own reseedable sampler
type Worker struct {
	ID          int
	raytracer   *Raytracer
	sampler     *core.RandomSampler
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
	pool        *WorkerPool
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, numColumns, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ColumnTask, numColumns),   // Buffer for every column
		resultQueue: make(chan ColumnResult, numColumns), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			sampler:     core.NewSeededSampler(0),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			pool:        wp,
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a column task to the worker pool
func (wp *WorkerPool) SubmitTask(task ColumnTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed column result
func (wp *WorkerPool) GetResult() (ColumnResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// Completed returns the number of columns finished so far
func (wp *WorkerPool) Completed() int {
	return int(wp.completed.Load())
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		samples := w.raytracer.RenderColumn(task.Column, task.Frame, w.sampler)
		w.pool.completed.Add(1)

		w.resultQueue <- ColumnResult{
			Column:  task.Column,
			Samples: samples,
		}
	}
}
