package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/Suhas010/Framelytics/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, audit *model.Audit) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, audit *model.Audit) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, audit)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
	})

	t.Run("applies WithContinueOnError option", func(t *testing.T) {
		t.Parallel()

		p := New(WithContinueOnError(true))

		if !p.continueOnError {
			t.Error("expected continueOnError to be true")
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("adds multiple steps with AddSteps", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(
			&mockStep{name: "step-1"},
			&mockStep{name: "step-2"},
			&mockStep{name: "step-3"},
		)

		if p.StepCount() != 3 {
			t.Errorf("expected 3 steps, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "first"})
		p.AddStep(&mockStep{name: "second"})
		p.AddStep(&mockStep{name: "third"})

		names := p.StepNames()

		expected := []string{"first", "second", "third"}
		for i, name := range names {
			if name != expected[i] {
				t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
			}
		}
	})
}

// TestPipelineExecute tests pipeline execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		executionOrder := make([]string, 0)

		p := New()
		p.AddStep(&mockStep{
			name: "step-1",
			doFunc: func(_ context.Context, _ *model.Audit) error {
				executionOrder = append(executionOrder, "step-1")
				return nil
			},
		})
		p.AddStep(&mockStep{
			name: "step-2",
			doFunc: func(_ context.Context, _ *model.Audit) error {
				executionOrder = append(executionOrder, "step-2")
				return nil
			},
		})

		audit := model.NewAudit("index.html")
		if err := p.Execute(context.Background(), audit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(executionOrder) != 2 || executionOrder[0] != "step-1" || executionOrder[1] != "step-2" {
			t.Errorf("unexpected execution order: %v", executionOrder)
		}
	})

	t.Run("sets the audit duration", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "noop"})

		audit := model.NewAudit("index.html")
		if err := p.Execute(context.Background(), audit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if audit.Duration <= 0 {
			t.Errorf("Duration = %v, want > 0", audit.Duration)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		stepErr := errors.New("extraction failed")
		second := &mockStep{name: "second"}

		p := New()
		p.AddStep(&mockStep{
			name: "failing",
			doFunc: func(_ context.Context, _ *model.Audit) error {
				return stepErr
			},
		})
		p.AddStep(second)

		audit := model.NewAudit("index.html")
		err := p.Execute(context.Background(), audit)

		if !errors.Is(err, stepErr) {
			t.Errorf("error = %v, want %v", err, stepErr)
		}
		if second.callCount != 0 {
			t.Error("steps after the failure should not run")
		}
		if audit.ErrorMessage != "extraction failed" {
			t.Errorf("ErrorMessage = %q", audit.ErrorMessage)
		}
	})

	t.Run("continues after error when configured", func(t *testing.T) {
		t.Parallel()

		second := &mockStep{name: "second"}

		p := New(WithContinueOnError(true))
		p.AddStep(&mockStep{
			name: "failing",
			doFunc: func(_ context.Context, _ *model.Audit) error {
				return errors.New("boom")
			},
		})
		p.AddStep(second)

		audit := model.NewAudit("index.html")
		if err := p.Execute(context.Background(), audit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if second.callCount != 1 {
			t.Error("subsequent step should still run with continueOnError")
		}
		if audit.ErrorMessage == "" {
			t.Error("step error should be recorded in the audit")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		step := &mockStep{name: "never-runs"}
		p := New()
		p.AddStep(step)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		audit := model.NewAudit("index.html")
		err := p.Execute(ctx, audit)

		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if step.callCount != 0 {
			t.Error("no step should run after cancellation")
		}
	})
}
