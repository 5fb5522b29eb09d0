package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/face-login/internal/logging"
)

// Challenge is a liveness directive the user is asked to perform before the
// camera. Fulfillment is self-reported by the client and never verified
// against the video stream, so this gate only defeats naive photo replay,
// not a deliberate attacker. Kept as-is intentionally; a stronger scheme
// would verify the directive server-side from frames.
type Challenge string

// The fixed challenge set.
const (
	ChallengeBlink     Challenge = "blink"
	ChallengeTurnLeft  Challenge = "turn_left"
	ChallengeTurnRight Challenge = "turn_right"
)

// DefaultChallenges lists the directives issued to clients.
var DefaultChallenges = []Challenge{ChallengeBlink, ChallengeTurnLeft, ChallengeTurnRight}

// challengeTTL bounds how long an issued challenge stays pending. An attempt
// that takes longer must request a new challenge.
const challengeTTL = 2 * time.Minute

// ChallengeIssuer hands out a random liveness directive per login attempt
// and records it as the attempt's expected answer. State is keyed by the
// attempt ID, never global, so concurrent logins cannot observe each other's
// challenges.
type ChallengeIssuer struct {
	cache          Cache
	logger         *zap.Logger
	challenges     []Challenge
	pick           func(n int) int
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewChallengeIssuer constructs a challenge issuer over the given cache.
func NewChallengeIssuer(cache Cache, logger *zap.Logger) *ChallengeIssuer {
	return &ChallengeIssuer{
		cache:          cache,
		logger:         logger.Named("challenge"),
		challenges:     DefaultChallenges,
		pick:           rand.Intn,
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

func challengeKey(attemptID string) string {
	return fmt.Sprintf("challenge:%s", attemptID)
}

// Issue selects a challenge uniformly at random and stores it as the pending
// answer for the attempt, replacing any previously issued one. Only the most
// recently issued challenge is valid.
func (ci *ChallengeIssuer) Issue(ctx context.Context, attemptID string) (Challenge, error) {
	challenge := ci.challenges[ci.pick(len(ci.challenges))]

	err := ci.withRedisRetry(ctx, attemptID, "challenge.issue", func() error {
		return ci.cache.Set(ctx, challengeKey(attemptID), string(challenge), challengeTTL)
	})
	if err != nil {
		logging.WithOperation(ci.logger, "challenge.issue", attemptID).Error("failed to store challenge", zap.Error(err))
		return "", err
	}
	return challenge, nil
}

// Peek returns the pending challenge for the attempt without consuming it.
// The second return value is false when no challenge is pending (never
// issued, expired, or already consumed by an earlier decision).
func (ci *ChallengeIssuer) Peek(ctx context.Context, attemptID string) (Challenge, bool, error) {
	var value string
	err := ci.withRedisRetry(ctx, attemptID, "challenge.peek", func() error {
		v, err := ci.cache.Get(ctx, challengeKey(attemptID))
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		logging.WithOperation(ci.logger, "challenge.peek", attemptID).Error("failed to read challenge", zap.Error(err))
		return "", false, err
	}
	return Challenge(value), true, nil
}

// Consume removes and returns the pending challenge for the attempt. Called
// once a login attempt resolves to a pass or fail decision; error outcomes
// leave the challenge pending so the caller can retry with a fresh image.
func (ci *ChallengeIssuer) Consume(ctx context.Context, attemptID string) (Challenge, bool, error) {
	var value string
	err := ci.withRedisRetry(ctx, attemptID, "challenge.consume", func() error {
		v, err := ci.cache.GetDel(ctx, challengeKey(attemptID))
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		logging.WithOperation(ci.logger, "challenge.consume", attemptID).Error("failed to read challenge", zap.Error(err))
		return "", false, err
	}
	return Challenge(value), true, nil
}

func (ci *ChallengeIssuer) withRedisRetry(ctx context.Context, attemptID, operation string, fn func() error) error {
	if ci.retryAttempts <= 1 {
		return logging.NewOperationError(operation, attemptID, fn())
	}

	backoff := ci.initialBackoff
	opLogger := logging.WithOperation(ci.logger, operation, attemptID)
	var err error
	for attempt := 0; attempt < ci.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, attemptID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= ci.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == ci.retryAttempts-1 {
			return logging.NewOperationError(operation, attemptID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
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
