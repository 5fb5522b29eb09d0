package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/example/face-login/internal/face"
	"github.com/example/face-login/internal/logging"
)

type transientTestError struct{}

func (transientTestError) Error() string   { return "transient" }
func (transientTestError) Timeout() bool   { return true }
func (transientTestError) Temporary() bool { return true }

func TestExecuteWithRetryRetriesTransientErrors(t *testing.T) {
	repo := &UserRepository{
		logger:         zap.NewNop(),
		retryAttempts:  3,
		initialBackoff: time.Millisecond,
		maxBackoff:     2 * time.Millisecond,
	}

	attempts := 0
	err := repo.executeWithRetry(context.Background(), "test.operation", "attempt-1", func() error {
		attempts++
		if attempts < 2 {
			return transientTestError{}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestExecuteWithRetryReturnsOperationError(t *testing.T) {
	repo := &UserRepository{
		logger:         zap.NewNop(),
		retryAttempts:  2,
		initialBackoff: time.Millisecond,
		maxBackoff:     2 * time.Millisecond,
	}

	attempts := 0
	err := repo.executeWithRetry(context.Background(), "test.operation", "attempt-2", func() error {
		attempts++
		return errors.New("boom")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}

	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "test.operation" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}
	if opErr.AttemptID != "attempt-2" {
		t.Fatalf("unexpected attempt id: %s", opErr.AttemptID)
	}
}

func TestEmbeddingVectorsRoundTrip(t *testing.T) {
	original := EmbeddingVectors{
		face.Embedding{0.1, 0.2, 0.3},
		face.Embedding{0.4, 0.5, 0.6},
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	serialized, ok := value.(string)
	if !ok {
		t.Fatalf("expected string column value, got %T", value)
	}
	if !json.Valid([]byte(serialized)) {
		t.Fatalf("expected valid JSON, got %q", serialized)
	}

	var decoded EmbeddingVectors
	if err := decoded.Scan(serialized); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(decoded) != 2 || len(decoded[0]) != 3 {
		t.Fatalf("unexpected decoded shape: %+v", decoded)
	}
	if decoded[1][2] != 0.6 {
		t.Fatalf("unexpected decoded value: %f", decoded[1][2])
	}
}

func TestEmbeddingVectorsScanRejectsUnknownType(t *testing.T) {
	var decoded EmbeddingVectors
	if err := decoded.Scan(42); err == nil {
		t.Fatal("expected error for unsupported column type")
	}
}
