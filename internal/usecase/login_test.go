package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/example/face-login/internal/face"
	"github.com/example/face-login/internal/repository"
)

func newTestEngine(store *stubStore, cache *stubChallengeCache, encoder *stubEncoder, threshold float64) *MatchEngine {
	issuer := NewChallengeIssuer(cache, zap.NewNop())
	return NewMatchEngine(store, store, issuer, encoder, zap.NewNop(), threshold)
}

func enrollStub(store *stubStore, username string, embeddings ...face.Embedding) {
	store.users[username] = &repository.User{
		Username:   username,
		Embeddings: repository.EmbeddingVectors(embeddings),
	}
}

func pendChallenge(cache *stubChallengeCache, attemptID string, challenge Challenge) {
	cache.values["challenge:"+attemptID] = string(challenge)
}

func TestAuthenticateMatchesNearestSample(t *testing.T) {
	store := newStubStore()
	cache := newStubChallengeCache()
	// Probe within 0.2 of the third sample should authenticate even though
	// the other samples are far away.
	enrollStub(store, "alice",
		embeddingAt(5), embeddingAt(-5), embeddingAt(0.5), embeddingAt(9), embeddingAt(-9))
	encoder := &stubEncoder{embeddings: []face.Embedding{embeddingAt(0.45)}}
	engine := newTestEngine(store, cache, encoder, DefaultThreshold)

	pendChallenge(cache, "att-1", ChallengeBlink)
	result, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if result.Outcome != OutcomeSuccess {
		t.Fatalf("expected success, got %s (%s)", result.Outcome, result.Message)
	}
	if result.BestDistance > 0.06 {
		t.Fatalf("expected nearest distance ~0.05, got %f", result.BestDistance)
	}
}

func TestAuthenticateRejectsDifferentPerson(t *testing.T) {
	store := newStubStore()
	cache := newStubChallengeCache()
	enrollStub(store, "alice",
		embeddingAt(0), embeddingAt(0.01), embeddingAt(0.02), embeddingAt(0.03), embeddingAt(0.04))
	encoder := &stubEncoder{embeddings: []face.Embedding{embeddingAt(0.9)}}
	engine := newTestEngine(store, cache, encoder, DefaultThreshold)

	pendChallenge(cache, "att-1", ChallengeBlink)
	result, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if result.Outcome != OutcomeFail {
		t.Fatalf("expected fail, got %s", result.Outcome)
	}
	if result.Message != "Face does not match" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestAuthenticateThresholdIsStrict(t *testing.T) {
	// 0.5 is exactly representable, so the boundary can be hit precisely:
	// a probe at exactly the threshold distance must fail, anything below
	// must succeed.
	store := newStubStore()
	enrollStub(store, "alice", embeddingAt(0), embeddingAt(3), embeddingAt(4), embeddingAt(5), embeddingAt(6))

	cases := []struct {
		name  string
		probe float32
		want  Outcome
	}{
		{"at threshold", 0.5, OutcomeFail},
		{"just below threshold", 0.49999997, OutcomeSuccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cache := newStubChallengeCache()
			pendChallenge(cache, "att-1", ChallengeBlink)
			encoder := &stubEncoder{embeddings: []face.Embedding{embeddingAt(tc.probe)}}
			engine := newTestEngine(store, cache, encoder, 0.5)

			result, err := engine.Authenticate(context.Background(), LoginRequest{
				AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
			})
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if result.Outcome != tc.want {
				t.Fatalf("probe %v: expected %s, got %s (dist %f)", tc.probe, tc.want, result.Outcome, result.BestDistance)
			}
		})
	}
}

func TestAuthenticateLivenessGateShortCircuits(t *testing.T) {
	store := newStubStore()
	enrollStub(store, "alice", embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0))

	cases := []struct {
		name     string
		pending  bool
		liveness string
	}{
		{"wrong challenge", true, "turn_left"},
		{"no pending challenge", false, "blink"},
		{"empty claim", true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cache := newStubChallengeCache()
			if tc.pending {
				pendChallenge(cache, "att-1", ChallengeBlink)
			}
			encoder := &stubEncoder{}
			engine := newTestEngine(store, cache, encoder, DefaultThreshold)

			result, err := engine.Authenticate(context.Background(), LoginRequest{
				AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: tc.liveness,
			})
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if result.Outcome != OutcomeFail {
				t.Fatalf("expected fail, got %s", result.Outcome)
			}
			if result.Message != "Liveness challenge failed" {
				t.Fatalf("unexpected message: %q", result.Message)
			}
			if encoder.calls != 0 {
				t.Fatal("extractor must not be invoked when the liveness gate fails")
			}
		})
	}
}

func TestAuthenticateChallengeConsumedEvenOnFailure(t *testing.T) {
	store := newStubStore()
	enrollStub(store, "alice", embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0))
	cache := newStubChallengeCache()
	pendChallenge(cache, "att-1", ChallengeBlink)
	encoder := &stubEncoder{embeddings: []face.Embedding{embeddingAt(0.9)}}
	engine := newTestEngine(store, cache, encoder, DefaultThreshold)

	result, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if err != nil || result.Outcome != OutcomeFail {
		t.Fatalf("expected fail, got %v / %v", result, err)
	}

	// The failed attempt consumed the challenge: a replay of the same claim
	// is now gated out.
	result, err = engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if result.Outcome != OutcomeFail || result.Message != "Liveness challenge failed" {
		t.Fatalf("expected liveness fail on replay, got %s (%s)", result.Outcome, result.Message)
	}
}

func TestAuthenticateErrorOutcomeKeepsChallengePending(t *testing.T) {
	store := newStubStore()
	enrollStub(store, "alice", embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0))
	cache := newStubChallengeCache()
	pendChallenge(cache, "att-1", ChallengeBlink)
	// First probe has no detectable face; second one matches.
	encoder := &stubEncoder{
		errs:       []error{face.ErrNoFace},
		embeddings: []face.Embedding{nil, embeddingAt(0.1)},
	}
	engine := newTestEngine(store, cache, encoder, DefaultThreshold)

	result, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if err != nil || result.Outcome != OutcomeError {
		t.Fatalf("expected error outcome, got %v / %v", result, err)
	}

	// The error did not spend the challenge: a retry with a usable image
	// under the same attempt still authenticates.
	result, err = engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if result.Outcome != OutcomeSuccess {
		t.Fatalf("expected success on retry, got %s (%s)", result.Outcome, result.Message)
	}
}

func TestAuthenticateRejectsStoredDimensionMismatch(t *testing.T) {
	// Records enrolled under a previous encoder with a different descriptor
	// size must not be compared against the probe.
	store := newStubStore()
	short := make(face.Embedding, face.Dim/2)
	enrollStub(store, "alice", short, short, short, short, short)
	cache := newStubChallengeCache()
	pendChallenge(cache, "att-1", ChallengeBlink)
	encoder := &stubEncoder{embeddings: []face.Embedding{embeddingAt(0)}}
	engine := newTestEngine(store, cache, encoder, DefaultThreshold)

	result, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if !errors.Is(err, face.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no decision for a dimension mismatch, got %+v", result)
	}
}

func TestAuthenticateRejectsInvalidProbeDimension(t *testing.T) {
	store := newStubStore()
	enrollStub(store, "alice", embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0))
	cache := newStubChallengeCache()
	pendChallenge(cache, "att-1", ChallengeBlink)
	encoder := &stubEncoder{embeddings: []face.Embedding{make(face.Embedding, face.Dim*2)}}
	engine := newTestEngine(store, cache, encoder, DefaultThreshold)

	result, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if !errors.Is(err, face.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no decision for a dimension mismatch, got %+v", result)
	}
}

func TestAuthenticateInputErrors(t *testing.T) {
	store := newStubStore()
	enrollStub(store, "alice", embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0))

	cases := []struct {
		name     string
		username string
		encoder  *stubEncoder
		pending  bool
		wantMsg  string
	}{
		{"blank username", "   ", &stubEncoder{}, false, "Username is required"},
		{"unknown user", "bob", &stubEncoder{}, false, "User not found"},
		{"no face in probe", "alice", &stubEncoder{errs: []error{face.ErrNoFace}}, true, "No face detected"},
		{"detector timeout", "alice", &stubEncoder{errs: []error{face.ErrDetectorTimeout}}, true, "Detector timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cache := newStubChallengeCache()
			if tc.pending {
				pendChallenge(cache, "att-1", ChallengeBlink)
			}
			engine := newTestEngine(store, cache, tc.encoder, DefaultThreshold)

			result, err := engine.Authenticate(context.Background(), LoginRequest{
				AttemptID: "att-1", Username: tc.username, Image: []byte("img"), Liveness: "blink",
			})
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if result.Outcome != OutcomeError {
				t.Fatalf("expected error outcome, got %s", result.Outcome)
			}
			if result.Message != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, result.Message)
			}
		})
	}
}

func TestAuthenticateStoreFailureIsNotUserNotFound(t *testing.T) {
	store := newStubStore()
	store.findErr = errors.New("connection refused")
	cache := newStubChallengeCache()
	engine := newTestEngine(store, cache, &stubEncoder{}, DefaultThreshold)

	result, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	})
	if err == nil {
		t.Fatal("expected infrastructure error to propagate")
	}
	if result != nil {
		t.Fatalf("expected no result for infrastructure failure, got %+v", result)
	}
}

func TestAuthenticateAuditsEveryDecision(t *testing.T) {
	store := newStubStore()
	enrollStub(store, "alice", embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0), embeddingAt(0))
	cache := newStubChallengeCache()
	pendChallenge(cache, "att-1", ChallengeBlink)
	encoder := &stubEncoder{embeddings: []face.Embedding{embeddingAt(0.1)}}
	engine := newTestEngine(store, cache, encoder, DefaultThreshold)

	if _, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-1", Username: "alice", Image: []byte("img"), Liveness: "blink",
	}); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := engine.Authenticate(context.Background(), LoginRequest{
		AttemptID: "att-2", Username: "bob", Image: []byte("img"), Liveness: "blink",
	}); err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if len(store.attempts) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(store.attempts))
	}
	if store.attempts[0].Outcome != string(OutcomeSuccess) || store.attempts[0].Username != "alice" {
		t.Fatalf("unexpected first audit row: %+v", store.attempts[0])
	}
	if store.attempts[1].Outcome != string(OutcomeError) || store.attempts[1].Username != "bob" {
		t.Fatalf("unexpected second audit row: %+v", store.attempts[1])
	}
}

func TestGetMetricsSummaryComputesRate(t *testing.T) {
	store := newStubStore()
	store.agg = &repository.MetricsAggregation{
		TotalCount:          10,
		SuccessCount:        6,
		FailCount:           3,
		ErrorCount:          1,
		AverageBestDistance: 0.31,
	}
	engine := newTestEngine(store, newStubChallengeCache(), &stubEncoder{}, DefaultThreshold)

	summary, err := engine.GetMetricsSummary(context.Background())
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if summary.SuccessRate != 0.6 {
		t.Fatalf("expected success rate 0.6, got %f", summary.SuccessRate)
	}
	if summary.FailedLogins != 3 || summary.AverageBestDistance != 0.31 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
