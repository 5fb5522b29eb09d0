package grpcclient

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/example/face-login/internal/face"
	"github.com/example/face-login/internal/logging"
	proto "github.com/example/face-login/proto"
)

// callTimeout bounds every encoder RPC so a stalled detector surfaces as
// face.ErrDetectorTimeout instead of hanging the login or enrollment flow.
const callTimeout = 10 * time.Second

// DialFaceEncoder returns a ready-to-use client for the face encoder service.
func DialFaceEncoder(ctx context.Context, addr string, logger *zap.Logger) (face.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_face_encoder", "", err)
		logger.Error("failed to dial face encoder", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewFaceEncoderClient(conn)
	return &grpcFaceEncoder{client: client, logger: logger}, conn, nil
}

type grpcFaceEncoder struct {
	client proto.FaceEncoderClient
	logger *zap.Logger
}

func (g *grpcFaceEncoder) Extract(ctx context.Context, imageBytes []byte) (face.Embedding, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := g.client.Encode(callCtx, &proto.EncodeRequest{ImageData: imageBytes})
	if err != nil {
		if mapped := mapTimeout(err); mapped != nil {
			return nil, mapped
		}
		wrapped := logging.NewOperationError("grpcclient.encode", "", err)
		g.logger.Error("face encoder call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	if !resp.GetFaceFound() {
		return nil, face.ErrNoFace
	}
	return face.Embedding(resp.GetEmbedding()), nil
}

func (g *grpcFaceEncoder) Landmarks(ctx context.Context, imageBytes []byte) ([]face.Landmark, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := g.client.Landmarks(callCtx, &proto.LandmarksRequest{ImageData: imageBytes})
	if err != nil {
		if mapped := mapTimeout(err); mapped != nil {
			return nil, mapped
		}
		wrapped := logging.NewOperationError("grpcclient.landmarks", "", err)
		g.logger.Error("face encoder call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	if !resp.GetFaceFound() {
		return nil, face.ErrNoFace
	}

	landmarks := make([]face.Landmark, 0, len(resp.GetGroups()))
	for _, group := range resp.GetGroups() {
		landmarks = append(landmarks, face.Landmark{
			Name:   group.GetName(),
			Points: group.GetPoints(),
		})
	}
	return landmarks, nil
}

func mapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return face.ErrDetectorTimeout
	}
	if st, ok := status.FromError(err); ok && st.Code() == codes.DeadlineExceeded {
		return face.ErrDetectorTimeout
	}
	return nil
}
