package solver

import (
	"sync"

	"github.com/arcdag/solver/arctask"
)

// SolveMany runs Solve over multiple tasks concurrently, one goroutine
// per task, and returns results in the same order as tasks. Each task
// is an independent solve: the only state shared across goroutines is
// the immutable, already-populated transform.Library, which is safe
// for concurrent reads.
func SolveMany(tasks []arctask.Task, cfg Config) ([][]arctask.Answer, []error) {
	results := make([][]arctask.Answer, len(tasks))
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(i int, task arctask.Task) {
			defer wg.Done()
			results[i], errs[i] = Solve(task.Training, task.Test, cfg)
		}(i, task)
	}
	wg.Wait()
	return results, errs
}
