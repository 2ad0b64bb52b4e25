package studygen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydeck/constants"
	"studydeck/internal/llm"
)

// stubGenerator lets each test script the three task outcomes independently.
type stubGenerator struct {
	summaryFn    func(ctx context.Context) (string, llm.GenerationOutcome, error)
	flashcardsFn func(ctx context.Context) ([]llm.Flashcard, llm.GenerationOutcome, error)
	quizFn       func(ctx context.Context) (llm.Quiz, llm.GenerationOutcome, error)
	pingErr      error
	pings        int
}

func (s *stubGenerator) GenerateSummary(ctx context.Context, _ string) (string, llm.GenerationOutcome, error) {
	return s.summaryFn(ctx)
}

func (s *stubGenerator) GenerateFlashcards(ctx context.Context, _ string) ([]llm.Flashcard, llm.GenerationOutcome, error) {
	return s.flashcardsFn(ctx)
}

func (s *stubGenerator) GenerateQuiz(ctx context.Context, _ string) (llm.Quiz, llm.GenerationOutcome, error) {
	return s.quizFn(ctx)
}

func (s *stubGenerator) Complete(_ context.Context, _ llm.GenerationRequest) (llm.GenerationOutcome, error) {
	return llm.GenerationOutcome{}, errors.New("not used")
}

func (s *stubGenerator) Ping(_ context.Context) error {
	s.pings++
	return s.pingErr
}

func okOutcome() llm.GenerationOutcome {
	return llm.GenerationOutcome{
		Usage:   llm.Usage{PromptTokens: 40, CompletionTokens: 60, TotalTokens: 100},
		Elapsed: 5 * time.Millisecond,
		Model:   "test-model",
	}
}

func happyStub() *stubGenerator {
	return &stubGenerator{
		summaryFn: func(context.Context) (string, llm.GenerationOutcome, error) {
			return "a solid summary", okOutcome(), nil
		},
		flashcardsFn: func(context.Context) ([]llm.Flashcard, llm.GenerationOutcome, error) {
			return []llm.Flashcard{{Subject: "Topic", Definition: "Meaning"}}, okOutcome(), nil
		},
		quizFn: func(context.Context) (llm.Quiz, llm.GenerationOutcome, error) {
			return llm.Quiz{Title: "Quiz", Questions: []llm.QuizQuestion{{
				QuestionText: "q", Options: []string{"a", "b"}, CorrectOption: "a",
			}}}, okOutcome(), nil
		},
	}
}

func TestGenerateAllMergesBundle(t *testing.T) {
	o := NewOrchestrator(happyStub(), Config{}, nil)

	set, err := o.GenerateAll(context.Background(), "document text")
	require.NoError(t, err)

	assert.Equal(t, "a solid summary", set.Summary)
	assert.Len(t, set.Flashcards, 1)
	assert.Len(t, set.Quiz.Questions, 1)
	assert.Equal(t, 300, set.Meta.Usage.TotalTokens, "usage is summed per field across tasks")
	assert.Equal(t, 120, set.Meta.Usage.PromptTokens)
	assert.Equal(t, "test-model", set.Meta.Model)
	assert.Len(t, set.Meta.TaskTimings, 3)
	assert.Greater(t, set.Meta.WallTime, time.Duration(0))
}

func TestGenerateAllSingleTaskFailureFailsBundle(t *testing.T) {
	stub := happyStub()
	stub.quizFn = func(context.Context) (llm.Quiz, llm.GenerationOutcome, error) {
		return llm.Quiz{}, llm.GenerationOutcome{}, llm.ErrSchemaViolation
	}
	o := NewOrchestrator(stub, Config{}, nil)

	set, err := o.GenerateAll(context.Background(), "text")
	assert.Nil(t, set, "no partial bundle on failure")

	var pf *PartialFailureError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, []constants.GenerationTask{constants.TaskQuiz}, pf.FailedTasks())
	assert.ErrorIs(t, err, llm.ErrSchemaViolation)
}

func TestGenerateAllNamesEveryFailedTask(t *testing.T) {
	stub := happyStub()
	stub.summaryFn = func(context.Context) (string, llm.GenerationOutcome, error) {
		return "", llm.GenerationOutcome{}, llm.ErrMalformedResponse
	}
	stub.flashcardsFn = func(context.Context) ([]llm.Flashcard, llm.GenerationOutcome, error) {
		return nil, llm.GenerationOutcome{}, llm.ErrRateLimited
	}
	o := NewOrchestrator(stub, Config{}, nil)

	_, err := o.GenerateAll(context.Background(), "text")
	var pf *PartialFailureError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t,
		[]constants.GenerationTask{constants.TaskFlashcards, constants.TaskSummary},
		pf.FailedTasks())
	assert.Contains(t, err.Error(), "summary")
	assert.Contains(t, err.Error(), "flashcards")
}

func TestGenerateAllEmptyArtifactFailsValidation(t *testing.T) {
	stub := happyStub()
	stub.summaryFn = func(context.Context) (string, llm.GenerationOutcome, error) {
		return "", okOutcome(), nil
	}
	o := NewOrchestrator(stub, Config{}, nil)

	set, err := o.GenerateAll(context.Background(), "text")
	assert.Nil(t, set)

	var pf *PartialFailureError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, []constants.GenerationTask{constants.TaskSummary}, pf.FailedTasks())
}

func TestGenerateAllGlobalTimeout(t *testing.T) {
	stub := happyStub()
	stub.flashcardsFn = func(ctx context.Context) ([]llm.Flashcard, llm.GenerationOutcome, error) {
		<-ctx.Done()
		return nil, llm.GenerationOutcome{}, ctx.Err()
	}
	o := NewOrchestrator(stub, Config{GlobalTimeout: 50 * time.Millisecond}, nil)

	start := time.Now()
	set, err := o.GenerateAll(context.Background(), "text")
	assert.Nil(t, set)
	assert.ErrorIs(t, err, ErrGlobalTimeout)
	assert.Less(t, time.Since(start), 5*time.Second, "timeout must not wait for the slow task")
}

func TestGenerateAllPreflight(t *testing.T) {
	t.Run("failure aborts before fan-out", func(t *testing.T) {
		stub := happyStub()
		stub.pingErr = llm.ErrConnection
		var generated bool
		stub.summaryFn = func(context.Context) (string, llm.GenerationOutcome, error) {
			generated = true
			return "", llm.GenerationOutcome{}, nil
		}
		o := NewOrchestrator(stub, Config{Preflight: true}, nil)

		_, err := o.GenerateAll(context.Background(), "text")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
		assert.Equal(t, 1, stub.pings)
		assert.False(t, generated)
	})

	t.Run("success proceeds", func(t *testing.T) {
		stub := happyStub()
		o := NewOrchestrator(stub, Config{Preflight: true}, nil)

		set, err := o.GenerateAll(context.Background(), "text")
		require.NoError(t, err)
		assert.NotNil(t, set)
		assert.Equal(t, 1, stub.pings)
	})
}
