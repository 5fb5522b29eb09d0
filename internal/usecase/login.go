package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/face-login/internal/face"
	"github.com/example/face-login/internal/logging"
	"github.com/example/face-login/internal/repository"
)

// DefaultThreshold is the maximum Euclidean distance for a probe to count as
// a match against a stored sample. Tuned for the 128-dimension descriptor
// space of the default encoder; a different encoder needs its own value.
const DefaultThreshold = 0.38

// Outcome classifies a resolved login decision.
type Outcome string

const (
	// OutcomeSuccess means the probe matched within the threshold.
	OutcomeSuccess Outcome = "success"
	// OutcomeFail means a valid comparison (or the liveness gate) did not
	// authenticate. Security relevant: logged at warn level and audited.
	OutcomeFail Outcome = "fail"
	// OutcomeError means an operational or input problem the caller can
	// correct, e.g. an unknown username or an image with no face.
	OutcomeError Outcome = "error"
)

// Result is the structured decision of one authentication attempt. Both
// fail and error outcomes deny the session; they differ only in how the
// caller should present and meter them.
type Result struct {
	Outcome      Outcome
	Message      string
	BestDistance float64
}

// LoginRequest carries one authentication attempt.
type LoginRequest struct {
	// AttemptID scopes the pending challenge; issued by the challenge
	// endpoint.
	AttemptID string
	Username  string
	Image     []byte
	// Liveness is the client-reported challenge fulfillment.
	Liveness string
}

// AuditStore persists resolved login decisions.
type AuditStore interface {
	SaveAttempt(ctx context.Context, attempt *repository.LoginAttempt) error
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// MatchEngine decides authentication attempts: liveness gate first, then
// nearest-sample embedding comparison against the threshold.
type MatchEngine struct {
	users      UserStore
	audit      AuditStore
	challenges *ChallengeIssuer
	encoder    face.Client
	logger     *zap.Logger
	threshold  float64
}

// NewMatchEngine constructs a new match engine.
func NewMatchEngine(users UserStore, audit AuditStore, challenges *ChallengeIssuer, encoder face.Client, logger *zap.Logger, threshold float64) *MatchEngine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &MatchEngine{
		users:      users,
		audit:      audit,
		challenges: challenges,
		encoder:    encoder,
		logger:     logger.Named("match_engine"),
		threshold:  threshold,
	}
}

// Authenticate resolves one login attempt. Domain outcomes (success, fail,
// error) are returned as a Result; only infrastructure failures (store or
// cache unavailable) are returned as a Go error, and are never reported as
// "user not found".
func (e *MatchEngine) Authenticate(ctx context.Context, req LoginRequest) (*Result, error) {
	opLogger := logging.WithOperation(e.logger, "usecase.authenticate", req.AttemptID)

	if strings.TrimSpace(req.Username) == "" {
		return e.resolve(ctx, opLogger, req, &Result{Outcome: OutcomeError, Message: "Username is required"})
	}

	user, err := e.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return e.resolve(ctx, opLogger, req, &Result{Outcome: OutcomeError, Message: "User not found"})
		}
		opLogger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	// Liveness gate: strictly before any image processing. A missing,
	// expired, or mismatched challenge fails the attempt without touching
	// the encoder.
	pending, ok, err := e.challenges.Peek(ctx, req.AttemptID)
	if err != nil {
		return nil, err
	}
	if !ok || req.Liveness == "" || Challenge(req.Liveness) != pending {
		e.consumeChallenge(ctx, opLogger, req.AttemptID)
		return e.resolve(ctx, opLogger, req, &Result{Outcome: OutcomeFail, Message: "Liveness challenge failed"})
	}

	probe, err := e.encoder.Extract(ctx, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, face.ErrNoFace):
			return e.resolve(ctx, opLogger, req, &Result{Outcome: OutcomeError, Message: "No face detected"})
		case errors.Is(err, face.ErrDetectorTimeout):
			return e.resolve(ctx, opLogger, req, &Result{Outcome: OutcomeError, Message: "Detector timeout"})
		default:
			opLogger.Error("embedding extraction failed", zap.Error(err))
			return nil, err
		}
	}

	// A dimension mismatch between the probe and a stored record means the
	// encoder changed since enrollment. That is an infrastructure fault, not
	// a login decision: comparing across dimensions would either panic or
	// underestimate the distance.
	if err := probe.Validate(); err != nil {
		opLogger.Error("invalid probe embedding", zap.Error(err))
		return nil, logging.NewOperationError("usecase.authenticate", req.AttemptID, err)
	}
	for i, stored := range user.Embeddings {
		if err := stored.Validate(); err != nil {
			opLogger.Error("invalid stored embedding", zap.Error(err), zap.Int("sample", i))
			return nil, logging.NewOperationError("usecase.authenticate", req.AttemptID, err)
		}
	}

	bestDist := face.NearestDistance([]face.Embedding(user.Embeddings), probe)

	// The comparison completed, so the challenge is spent whether the probe
	// matched or not. Error outcomes above leave it pending for a retry.
	e.consumeChallenge(ctx, opLogger, req.AttemptID)

	if bestDist < e.threshold {
		return e.resolve(ctx, opLogger, req, &Result{Outcome: OutcomeSuccess, BestDistance: bestDist})
	}
	return e.resolve(ctx, opLogger, req, &Result{Outcome: OutcomeFail, Message: "Face does not match", BestDistance: bestDist})
}

func (e *MatchEngine) consumeChallenge(ctx context.Context, opLogger *zap.Logger, attemptID string) {
	if _, _, err := e.challenges.Consume(ctx, attemptID); err != nil {
		opLogger.Warn("failed to consume challenge", zap.Error(err))
	}
}

// resolve logs and audits a decided attempt. Fail outcomes are warnings
// (possible spoofing or impersonation); error outcomes are routine input
// problems. A failed audit write does not overturn the decision.
func (e *MatchEngine) resolve(ctx context.Context, opLogger *zap.Logger, req LoginRequest, result *Result) (*Result, error) {
	fields := []zap.Field{
		zap.String("username", req.Username),
		zap.String("outcome", string(result.Outcome)),
		zap.String("message", result.Message),
		zap.Float64("best_distance", result.BestDistance),
	}
	switch result.Outcome {
	case OutcomeFail:
		opLogger.Warn("login attempt denied", fields...)
	case OutcomeSuccess:
		opLogger.Info("login attempt accepted", fields...)
	default:
		opLogger.Info("login attempt errored", fields...)
	}

	attempt := &repository.LoginAttempt{
		AttemptID:    req.AttemptID,
		Username:     req.Username,
		Outcome:      string(result.Outcome),
		Message:      result.Message,
		BestDistance: result.BestDistance,
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.audit.SaveAttempt(ctx, attempt); err != nil {
		opLogger.Warn("failed to persist login attempt", zap.Error(err))
	}

	return result, nil
}
