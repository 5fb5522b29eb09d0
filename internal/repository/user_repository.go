package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/face-login/internal/face"
	"github.com/example/face-login/internal/logging"
)

// ErrDuplicateUsername is returned when an enrollment collides with an
// existing user. It originates from the unique index on the username column,
// so two concurrent enrollments for the same name cannot both succeed.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrUserNotFound is returned when no user is enrolled under the given
// username. Infrastructure failures are reported separately and must never
// collapse into this error.
var ErrUserNotFound = errors.New("user not found")

// EmbeddingVectors stores the enrolled face descriptors as a JSON column.
type EmbeddingVectors []face.Embedding

// Value implements driver.Valuer.
func (v EmbeddingVectors) Value() (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialize embeddings: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (v *EmbeddingVectors) Scan(src interface{}) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("unsupported embeddings column type %T", src)
	}
}

// User represents an enrolled user. The embedding list is written once at
// enrollment and never mutated afterwards.
type User struct {
	ID         uint             `gorm:"primaryKey"`
	Username   string           `gorm:"column:username;uniqueIndex;size:64;not null"`
	Embeddings EmbeddingVectors `gorm:"column:embeddings;type:text;not null"`
	CreatedAt  time.Time        `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (User) TableName() string {
	return "users"
}

// LoginAttempt is the audit record written for every resolved login decision.
type LoginAttempt struct {
	ID           uint      `gorm:"primaryKey"`
	AttemptID    string    `gorm:"column:attempt_id;index;size:64"`
	Username     string    `gorm:"column:username;size:64"`
	Outcome      string    `gorm:"column:outcome;size:16"`
	Message      string    `gorm:"column:message;type:text"`
	BestDistance float64   `gorm:"column:best_distance"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (LoginAttempt) TableName() string {
	return "login_attempts"
}

// MetricsAggregation holds raw aggregates computed over login attempts.
type MetricsAggregation struct {
	TotalCount          int64
	SuccessCount        int64
	FailCount           int64
	ErrorCount          int64
	AverageBestDistance float64
}

// UserRepository provides persistence APIs for users and login attempts.
type UserRepository struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *gorm.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:             db,
		logger:         logger.Named("user_repository"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (r *UserRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&User{}, &LoginAttempt{})
}

// CreateUser atomically persists a new user with the full embedding list.
// The duplicate check is enforced by the database unique index, not by a
// read-before-write.
func (r *UserRepository) CreateUser(ctx context.Context, username string, embeddings []face.Embedding) error {
	user := &User{
		Username:   username,
		Embeddings: EmbeddingVectors(embeddings),
		CreatedAt:  time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	return logging.NewOperationError("repository.create_user", "", err)
}

// FindByUsername retrieves the enrolled user record under the exact,
// case-sensitive username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, logging.NewOperationError("repository.find_by_username", "", err)
	}
	return &user, nil
}

// SaveAttempt persists a login audit record. Transient database errors are
// retried; the login decision itself has already been made by the caller.
func (r *UserRepository) SaveAttempt(ctx context.Context, attempt *LoginAttempt) error {
	return r.executeWithRetry(ctx, "repository.save_attempt", attempt.AttemptID, func() error {
		return r.db.WithContext(ctx).Create(attempt).Error
	})
}

// AggregateMetrics computes login statistics over all persisted attempts.
func (r *UserRepository) AggregateMetrics(ctx context.Context) (*MetricsAggregation, error) {
	var agg MetricsAggregation
	err := r.db.WithContext(ctx).
		Model(&LoginAttempt{}).
		Select(`COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN outcome = 'success' THEN 1 ELSE 0 END), 0) AS success_count,
			COALESCE(SUM(CASE WHEN outcome = 'fail' THEN 1 ELSE 0 END), 0) AS fail_count,
			COALESCE(SUM(CASE WHEN outcome = 'error' THEN 1 ELSE 0 END), 0) AS error_count,
			COALESCE(AVG(CASE WHEN outcome IN ('success', 'fail') THEN best_distance END), 0) AS average_best_distance`).
		Scan(&agg).Error
	if err != nil {
		return nil, logging.NewOperationError("repository.aggregate_metrics", "", err)
	}
	return &agg, nil
}

func (r *UserRepository) executeWithRetry(ctx context.Context, operation, attemptID string, fn func() error) error {
	if r.retryAttempts <= 1 {
		return logging.NewOperationError(operation, attemptID, fn())
	}

	backoff := r.initialBackoff
	opLogger := logging.WithOperation(r.logger, operation, attemptID)
	var err error
	for attempt := 0; attempt < r.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, attemptID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= r.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("database operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == r.retryAttempts-1 {
			opLogger.Error("database operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, attemptID, err)
		}

		opLogger.Warn("transient database error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, attemptID, err)
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
