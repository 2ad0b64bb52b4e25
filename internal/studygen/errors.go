package studygen

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"studydeck/constants"
)

var (
	// ErrProviderUnavailable reports a failed pre-flight probe: all three
	// tasks would fail for the same root cause, so none are attempted.
	ErrProviderUnavailable = errors.New("generation provider unavailable")

	// ErrGlobalTimeout reports that the fan-out as a whole hit its ceiling.
	ErrGlobalTimeout = errors.New("study set generation timed out")
)

// PartialFailureError reports which of the three generation tasks failed.
// No bundle exists when this is returned.
type PartialFailureError struct {
	Failures map[constants.GenerationTask]error
}

func (e *PartialFailureError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, task := range e.FailedTasks() {
		parts = append(parts, fmt.Sprintf("%s: %v", task, e.Failures[task]))
	}
	return "generation failed for task(s): " + strings.Join(parts, "; ")
}

// FailedTasks returns the failing task names in stable order.
func (e *PartialFailureError) FailedTasks() []constants.GenerationTask {
	tasks := make([]constants.GenerationTask, 0, len(e.Failures))
	for task := range e.Failures {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i] < tasks[j] })
	return tasks
}

// Unwrap exposes the first failure cause for errors.Is checks.
func (e *PartialFailureError) Unwrap() error {
	for _, task := range e.FailedTasks() {
		return e.Failures[task]
	}
	return nil
}
