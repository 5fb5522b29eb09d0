// Package face defines the boundary to the external face detection and
// embedding service. The service returns at most one face per image: when
// several faces are present it reports the first one by its own detection
// ordering, and callers must treat that as the face of record.
package face

import (
	"context"
	"errors"
	"fmt"
)

// Dim is the dimensionality of embeddings produced by the encoder.
const Dim = 128

// ErrDimensionMismatch is returned when an embedding does not have exactly
// Dim components. Seen when the encoder behind the service changes between
// enrollment and login.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Validate checks that the embedding has exactly Dim components. Distances
// are only meaningful between embeddings of the same dimensionality, so
// callers must validate before comparing.
func (e Embedding) Validate() error {
	if len(e) != Dim {
		return fmt.Errorf("%w: got %d components, want %d", ErrDimensionMismatch, len(e), Dim)
	}
	return nil
}

// Embedding is a fixed-dimension face descriptor comparable via Euclidean
// distance.
type Embedding []float32

// Landmark is a named facial feature with interleaved x,y coordinates.
type Landmark struct {
	Name   string    `json:"name"`
	Points []float32 `json:"points"`
}

// ErrNoFace is returned when the encoder finds no face in an image.
var ErrNoFace = errors.New("no face detected")

// ErrDetectorTimeout is returned when the encoder does not answer within
// the configured deadline.
var ErrDetectorTimeout = errors.New("detector timeout")

// Client exposes the subset of the encoder service used by enrollment and
// login flows.
type Client interface {
	// Extract returns the embedding of the first face in the image, or
	// ErrNoFace.
	Extract(ctx context.Context, imageBytes []byte) (Embedding, error)
	// Landmarks returns the facial landmarks of the first face in the
	// image, or ErrNoFace. Used only for the live preview; never part of
	// a match decision.
	Landmarks(ctx context.Context, imageBytes []byte) ([]Landmark, error)
}
