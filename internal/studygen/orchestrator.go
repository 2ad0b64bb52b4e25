// Package studygen fans the three study-set generation tasks (summary,
// flashcards, quiz) out against the generation client, joins them under one
// global deadline, and merges their outcomes into a single bundle. The
// bundle is all-or-nothing: any sub-failure fails the whole operation.
package studygen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"studydeck/constants"
	"studydeck/internal/llm"
)

// StudySet is the merged artifact bundle of a fully successful fan-out.
type StudySet struct {
	Summary    string          `json:"summary"`
	Flashcards []llm.Flashcard `json:"flashcards"`
	Quiz       llm.Quiz        `json:"quiz"`
	Meta       BundleMeta      `json:"meta"`
}

// BundleMeta carries combined accounting for the three tasks.
type BundleMeta struct {
	Usage       llm.Usage                                  `json:"usage"`
	WallTime    time.Duration                              `json:"wall_time"`
	TaskTimings map[constants.GenerationTask]time.Duration `json:"task_timings"`
	Model       string                                     `json:"model"`
}

// Config for the orchestrator.
type Config struct {
	GlobalTimeout time.Duration // ceiling across the whole fan-out, default 120s
	Preflight     bool          // probe connectivity before fanning out
}

type Orchestrator struct {
	gen    llm.Generator
	cfg    Config
	logger *slog.Logger
}

func NewOrchestrator(gen llm.Generator, cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.GlobalTimeout <= 0 {
		cfg.GlobalTimeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{gen: gen, cfg: cfg, logger: logger}
}

type taskResult struct {
	task    constants.GenerationTask
	outcome llm.GenerationOutcome
	err     error

	summary    string
	flashcards []llm.Flashcard
	quiz       llm.Quiz
}

// GenerateAll runs the three generation tasks concurrently and returns the
// merged bundle. The three tasks share no mutable state: each owns its own
// request and outcome. On any sub-failure or on the global timeout no
// bundle is returned.
func (o *Orchestrator) GenerateAll(ctx context.Context, documentText string) (*StudySet, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, o.cfg.GlobalTimeout)
	defer cancel()

	if o.cfg.Preflight {
		if err := o.gen.Ping(ctx); err != nil {
			o.logger.Error("studygen.preflight.failed", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
	}

	o.logger.Info("studygen.fanout.start", "text_len", len(documentText))

	// Buffered so abandoned tasks can still send and exit after a timeout.
	results := make(chan taskResult, 3)

	go func() {
		summary, out, err := o.gen.GenerateSummary(ctx, documentText)
		results <- taskResult{task: constants.TaskSummary, outcome: out, err: err, summary: summary}
	}()
	go func() {
		cards, out, err := o.gen.GenerateFlashcards(ctx, documentText)
		results <- taskResult{task: constants.TaskFlashcards, outcome: out, err: err, flashcards: cards}
	}()
	go func() {
		quiz, out, err := o.gen.GenerateQuiz(ctx, documentText)
		results <- taskResult{task: constants.TaskQuiz, outcome: out, err: err, quiz: quiz}
	}()

	set := &StudySet{
		Meta: BundleMeta{TaskTimings: make(map[constants.GenerationTask]time.Duration, 3)},
	}
	failures := make(map[constants.GenerationTask]error)

	for i := 0; i < 3; i++ {
		select {
		case r := <-results:
			set.Meta.TaskTimings[r.task] = r.outcome.Elapsed
			if r.err != nil {
				o.logger.Error("studygen.task.failed", "task", r.task, "error", r.err)
				failures[r.task] = r.err
				continue
			}
			o.logger.Info("studygen.task.ok",
				"task", r.task,
				"total_tokens", r.outcome.Usage.TotalTokens,
				"elapsed_ms", r.outcome.Elapsed.Milliseconds(),
			)
			set.Meta.Usage = set.Meta.Usage.Add(r.outcome.Usage)
			if set.Meta.Model == "" {
				set.Meta.Model = r.outcome.Model
			}
			switch r.task {
			case constants.TaskSummary:
				set.Summary = r.summary
			case constants.TaskFlashcards:
				set.Flashcards = r.flashcards
			case constants.TaskQuiz:
				set.Quiz = r.quiz
			}
		case <-ctx.Done():
			// Outstanding tasks are abandoned: cancellation is signaled
			// through ctx, with no guarantee the backend stops working.
			o.logger.Error("studygen.fanout.timeout",
				"ceiling", o.cfg.GlobalTimeout, "settled", i)
			return nil, fmt.Errorf("%w after %s", ErrGlobalTimeout, o.cfg.GlobalTimeout)
		}
	}

	if len(failures) > 0 {
		if allDeadline(failures) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrGlobalTimeout, o.cfg.GlobalTimeout)
		}
		return nil, &PartialFailureError{Failures: failures}
	}

	if err := validateBundle(set); err != nil {
		return nil, err
	}

	set.Meta.WallTime = time.Since(start)
	o.logger.Info("studygen.fanout.ok",
		"total_tokens", set.Meta.Usage.TotalTokens,
		"flashcards", len(set.Flashcards),
		"quiz_questions", len(set.Quiz.Questions),
		"elapsed_ms", set.Meta.WallTime.Milliseconds(),
	)
	return set, nil
}

// validateBundle checks cross-field consistency before the bundle is
// handed to the caller.
func validateBundle(set *StudySet) error {
	failures := make(map[constants.GenerationTask]error)
	if set.Summary == "" {
		failures[constants.TaskSummary] = errors.New("empty summary")
	}
	if len(set.Flashcards) == 0 {
		failures[constants.TaskFlashcards] = errors.New("no flashcards generated")
	}
	if len(set.Quiz.Questions) == 0 {
		failures[constants.TaskQuiz] = errors.New("quiz has no questions")
	}
	if len(failures) > 0 {
		return &PartialFailureError{Failures: failures}
	}
	return nil
}

func allDeadline(failures map[constants.GenerationTask]error) bool {
	for _, err := range failures {
		if !errors.Is(err, context.DeadlineExceeded) {
			return false
		}
	}
	return true
}
