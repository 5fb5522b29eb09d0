package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/example/face-login/internal/auth"
	"github.com/example/face-login/internal/face"
	"github.com/example/face-login/internal/repository"
	"github.com/example/face-login/internal/usecase"
)

// MaxImageBytes bounds a single decoded image. Webcam captures are far
// smaller; anything bigger is rejected at the boundary.
const MaxImageBytes = 10 << 20

// Config carries the collaborators the HTTP layer dispatches into.
type Config struct {
	Enrollment      *usecase.EnrollmentService
	Engine          *usecase.MatchEngine
	Challenges      *usecase.ChallengeIssuer
	Encoder         face.Client
	SessionSecret   string
	SessionAudience string
	SessionGuard    gin.HandlerFunc
}

type registerRequest struct {
	Username string   `json:"username"`
	Images   []string `json:"images"`
}

type loginRequest struct {
	AttemptID string `json:"attempt_id"`
	Username  string `json:"username"`
	Image     string `json:"image"`
	Liveness  string `json:"liveness"`
}

type landmarksRequest struct {
	Image string `json:"image"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, cfg Config) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/register", func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
			return
		}

		images := make([][]byte, 0, len(req.Images))
		for _, encoded := range req.Images {
			img, err := decodeImage(encoded)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
				return
			}
			images = append(images, img)
		}

		if err := cfg.Enrollment.Enroll(c.Request.Context(), req.Username, images); err != nil {
			status, message, ok := enrollFailure(err, cfg.Enrollment.RequiredSamples())
			if !ok {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "enrollment failed"})
				return
			}
			c.JSON(status, gin.H{"status": "error", "message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": fmt.Sprintf("Registered successfully with %d samples", cfg.Enrollment.RequiredSamples()),
		})
	})

	router.GET("/api/challenge", func(c *gin.Context) {
		attemptID := uuid.NewString()
		challenge, err := cfg.Challenges.Issue(c.Request.Context(), attemptID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "challenge unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"attempt_id": attemptID,
			"challenge":  string(challenge),
		})
	})

	router.POST("/api/login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
			return
		}

		img, err := decodeImage(req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}

		result, err := cfg.Engine.Authenticate(c.Request.Context(), usecase.LoginRequest{
			AttemptID: req.AttemptID,
			Username:  req.Username,
			Image:     img,
			Liveness:  req.Liveness,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "authentication unavailable"})
			return
		}

		if result.Outcome != usecase.OutcomeSuccess {
			c.JSON(http.StatusOK, gin.H{
				"status":  string(result.Outcome),
				"message": result.Message,
			})
			return
		}

		token, err := auth.IssueSession(req.Username, cfg.SessionSecret, cfg.SessionAudience, auth.DefaultSessionTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "session unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"token":  token,
		})
	})

	router.POST("/api/landmarks", func(c *gin.Context) {
		var req landmarksRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
			return
		}

		img, err := decodeImage(req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}

		landmarks, err := cfg.Encoder.Landmarks(c.Request.Context(), img)
		if err != nil {
			// The live preview degrades gracefully when no face is in frame.
			if errors.Is(err, face.ErrNoFace) || errors.Is(err, face.ErrDetectorTimeout) {
				c.JSON(http.StatusOK, gin.H{})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "landmarks unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"landmarks": landmarks})
	})

	session := router.Group("/api", cfg.SessionGuard)
	session.GET("/session", func(c *gin.Context) {
		username, ok := auth.Username(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": username})
	})
	session.GET("/metrics", func(c *gin.Context) {
		summary, err := cfg.Engine.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "metrics unavailable"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}

// enrollFailure maps domain enrollment errors onto the wire contract.
// Returns ok=false for infrastructure errors the client cannot correct.
func enrollFailure(err error, requiredSamples int) (int, string, bool) {
	var noFace *usecase.NoFaceError
	switch {
	case errors.Is(err, usecase.ErrUsernameRequired):
		return http.StatusOK, "Username is required", true
	case errors.Is(err, repository.ErrDuplicateUsername):
		return http.StatusOK, "Username already exists", true
	case errors.Is(err, usecase.ErrInsufficientSamples):
		return http.StatusOK, fmt.Sprintf("Provide %d face samples", requiredSamples), true
	case errors.As(err, &noFace):
		return http.StatusOK, fmt.Sprintf("Face not detected in sample %d", noFace.Sample+1), true
	case errors.Is(err, face.ErrDetectorTimeout):
		return http.StatusOK, "Detector timeout", true
	default:
		return 0, "", false
	}
}

// decodeImage accepts either a bare base64 payload or a browser data URL
// ("data:image/png;base64,....") and returns the raw image bytes.
func decodeImage(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.New("image is required")
	}
	if idx := strings.IndexByte(encoded, ','); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	if base64.StdEncoding.DecodedLen(len(encoded)) > MaxImageBytes {
		return nil, errors.New("image too large")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.New("invalid image encoding")
	}
	return data, nil
}
