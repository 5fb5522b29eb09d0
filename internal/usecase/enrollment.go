package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/face-login/internal/face"
	"github.com/example/face-login/internal/logging"
	"github.com/example/face-login/internal/repository"
)

// DefaultRequiredSamples is the minimum number of face images accepted at
// enrollment.
const DefaultRequiredSamples = 5

// ErrUsernameRequired is returned when the username is empty or
// whitespace-only.
var ErrUsernameRequired = errors.New("username is required")

// ErrInsufficientSamples is returned when fewer images than the required
// sample count are submitted.
var ErrInsufficientSamples = errors.New("not enough face samples")

// NoFaceError reports which enrollment sample the detector could not find a
// face in. The whole enrollment is rejected; no partial record is written.
type NoFaceError struct {
	Sample int
}

// Error implements the error interface.
func (e *NoFaceError) Error() string {
	return fmt.Sprintf("face not detected in sample %d", e.Sample+1)
}

// Unwrap ties the error to face.ErrNoFace for errors.Is.
func (e *NoFaceError) Unwrap() error {
	return face.ErrNoFace
}

// UserStore defines the persistence operations needed by the enrollment flow.
type UserStore interface {
	CreateUser(ctx context.Context, username string, embeddings []face.Embedding) error
	FindByUsername(ctx context.Context, username string) (*repository.User, error)
}

// EnrollmentService validates a batch of face images and persists the
// resulting embedding set under a unique username.
type EnrollmentService struct {
	users           UserStore
	encoder         face.Client
	logger          *zap.Logger
	requiredSamples int
}

// NewEnrollmentService constructs a new enrollment service.
func NewEnrollmentService(users UserStore, encoder face.Client, logger *zap.Logger, requiredSamples int) *EnrollmentService {
	if requiredSamples <= 0 {
		requiredSamples = DefaultRequiredSamples
	}
	return &EnrollmentService{
		users:           users,
		encoder:         encoder,
		logger:          logger.Named("enrollment"),
		requiredSamples: requiredSamples,
	}
}

// RequiredSamples returns the configured minimum sample count.
func (s *EnrollmentService) RequiredSamples() int {
	return s.requiredSamples
}

// Enroll extracts an embedding from every image and stores the full ordered
// list under the username. Extra images beyond the required minimum are all
// kept. Any sample without a detectable face aborts the enrollment with no
// record written.
func (s *EnrollmentService) Enroll(ctx context.Context, username string, images [][]byte) error {
	opLogger := logging.WithOperation(s.logger, "usecase.enroll", "")

	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if len(images) < s.requiredSamples {
		return fmt.Errorf("%w: need %d, got %d", ErrInsufficientSamples, s.requiredSamples, len(images))
	}

	// Duplicate usernames are rejected before any extractor work. The
	// database unique index still backstops the race between this check and
	// the insert.
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return repository.ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		opLogger.Error("duplicate pre-check failed", zap.Error(err))
		return err
	}

	embeddings := make([]face.Embedding, 0, len(images))
	for i, img := range images {
		emb, err := s.encoder.Extract(ctx, img)
		if err != nil {
			if errors.Is(err, face.ErrNoFace) {
				return &NoFaceError{Sample: i}
			}
			opLogger.Error("embedding extraction failed", zap.Error(err), zap.Int("sample", i))
			return err
		}
		if err := emb.Validate(); err != nil {
			opLogger.Error("invalid encoder output", zap.Error(err), zap.Int("sample", i))
			return logging.NewOperationError("usecase.enroll", "", err)
		}
		embeddings = append(embeddings, emb)
	}

	if err := s.users.CreateUser(ctx, username, embeddings); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return repository.ErrDuplicateUsername
		}
		opLogger.Error("failed to persist user", zap.Error(err))
		return err
	}

	opLogger.Info("user enrolled",
		zap.String("username", username),
		zap.Int("samples", len(embeddings)))
	return nil
}
