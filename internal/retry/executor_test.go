package retry

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"
)

var errBusy = &os.LinkError{Op: "rename", Old: "a.xlsx", New: "b.xlsx", Err: syscall.EBUSY}

// mockOperation fails with transientErr until failUntil, then returns fatalErr
// once (if set), then succeeds.
type mockOperation struct {
	invocations  int
	failUntil    int
	transientErr error
	fatalErr     error
}

func (m *mockOperation) execute(ctx context.Context) error {
	m.invocations++

	if m.invocations < m.failUntil {
		if m.transientErr != nil {
			return m.transientErr
		}
		return errBusy
	}
	if m.invocations == m.failUntil && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

func unixExecutor(maxAttempts int) *Executor {
	return NewExecutor(
		&FileSystemClassifier{goos: "linux"},
		NewExponentialBackoff(maxAttempts, WithInitialDelay(time.Millisecond), WithJitter(0)),
	)
}

func TestExecutor_SuccessOnFirstAttempt(t *testing.T) {
	op := &mockOperation{failUntil: 1}

	if err := unixExecutor(3).Execute(context.Background(), op.execute); err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_SuccessAfterRetries(t *testing.T) {
	op := &mockOperation{failUntil: 4}

	if err := unixExecutor(5).Execute(context.Background(), op.execute); err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}
	if op.invocations != 4 {
		t.Errorf("Expected 4 invocations, got %d", op.invocations)
	}
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	op := &mockOperation{failUntil: 100}

	err := unixExecutor(2).Execute(context.Background(), op.execute)
	if !errors.Is(err, syscall.EBUSY) {
		t.Fatalf("Expected last transient error, got %v", err)
	}
	if op.invocations != 3 {
		t.Errorf("Expected 1 try + 2 retries = 3 invocations, got %d", op.invocations)
	}
}

func TestExecutor_FatalErrorStopsImmediately(t *testing.T) {
	fatal := &os.PathError{Op: "rename", Path: "a.xlsx", Err: syscall.ENOENT}
	op := &mockOperation{failUntil: 1, fatalErr: fatal}

	err := unixExecutor(5).Execute(context.Background(), op.execute)
	if !errors.Is(err, syscall.ENOENT) {
		t.Fatalf("Expected fatal error, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_FatalErrorDuringRetries(t *testing.T) {
	op := &mockOperation{failUntil: 3, fatalErr: errors.New("disk gone")}

	err := unixExecutor(5).Execute(context.Background(), op.execute)
	if err == nil || err.Error() != "disk gone" {
		t.Fatalf("Expected fatal error from third attempt, got %v", err)
	}
	if op.invocations != 3 {
		t.Errorf("Expected 3 invocations, got %d", op.invocations)
	}
}

func TestExecutor_NoRetry(t *testing.T) {
	op := &mockOperation{failUntil: 2}

	if err := NoRetry().Execute(context.Background(), op.execute); err == nil {
		t.Fatal("Expected the transient error to surface")
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_ContextCancelledDuringWait(t *testing.T) {
	executor := NewExecutor(
		&FileSystemClassifier{goos: "linux"},
		NewExponentialBackoff(5, WithInitialDelay(time.Hour), WithMaxDelay(time.Hour), WithJitter(0)),
	)
	ctx, cancel := context.WithCancel(context.Background())
	op := &mockOperation{failUntil: 100}

	executor = executor.WithOnRetry(func(int, error, time.Duration) { cancel() })
	err := executor.Execute(ctx, op.execute)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_WithOnRetryDoesNotModifyReceiver(t *testing.T) {
	base := unixExecutor(2)
	var calls []int
	withCallback := base.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		calls = append(calls, attempt)
	})

	if base.onRetry != nil {
		t.Fatal("WithOnRetry modified the receiver")
	}

	op := &mockOperation{failUntil: 3}
	if err := withCallback.Execute(context.Background(), op.execute); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if len(calls) != 2 || calls[0] != 0 || calls[1] != 1 {
		t.Errorf("Expected callbacks for attempts [0 1], got %v", calls)
	}
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil classifier")
		}
	}()
	NewExecutor(nil, NewExponentialBackoff(1))
}
